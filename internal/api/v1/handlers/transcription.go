package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoscribe/internal/api/errors"
	"autoscribe/internal/api/middleware"
	"autoscribe/internal/api/v1/dto"
	"autoscribe/internal/api/v1/services"
)

// TranscriptionHandler handles the upload and caption endpoints
type TranscriptionHandler struct {
	service        services.TranscriptionService
	maxUploadBytes int64
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, maxUploadBytes int64) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// TranscribeFile handles POST /api/transcribe/file
//
// @Summary Transcribe uploaded audio files
// @Description Transcribes each uploaded file in order with the chosen provider. With service=auto the provider is picked by file size.
// @Tags transcribe
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Audio or video files"
// @Param service formData string false "auto, elevateai, assemblyai or whisper" default(auto)
// @Param language formData string false "Language code" default(en)
// @Param outputFormat formData string false "txt, srt, vtt, json or csv" default(txt)
// @Success 200 {object} dto.JobResponse "All files transcribed"
// @Failure 400 {object} errors.APIError "No files or invalid options"
// @Failure 413 {object} errors.APIError "Upload too large"
// @Failure 502 {object} errors.APIError "Provider rejected the request or reported failure"
// @Failure 504 {object} errors.APIError "Provider did not finish in time"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcribe/file [post]
func (h *TranscriptionHandler) TranscribeFile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			middleware.HandleError(c, errors.NewPayloadTooLargeError(h.maxUploadBytes))
			return
		}
		middleware.HandleError(c, errors.NewBadRequestError("No files uploaded"))
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		middleware.HandleError(c, errors.NewBadRequestError("No files uploaded"))
		return
	}

	var req dto.FileTranscriptionRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	job, err := h.service.TranscribeFiles(c.Request.Context(), &req, uploads)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobResponse(job))
}

// TranscribeYouTube handles POST /api/transcribe/youtube
//
// @Summary Fetch YouTube captions as a transcript
// @Description Downloads the caption track of a video in the requested language and renders it.
// @Tags transcribe
// @Accept json
// @Produce json
// @Param request body dto.YouTubeTranscriptionRequest true "Video and output options"
// @Success 200 {object} dto.YouTubeTranscriptionResponse "Captions rendered"
// @Failure 400 {object} errors.APIError "Missing or invalid YouTube URL"
// @Failure 404 {object} errors.APIError "No captions for this video and language"
// @Failure 502 {object} errors.APIError "Caption service error"
// @Router /transcribe/youtube [post]
func (h *TranscriptionHandler) TranscribeYouTube(c *gin.Context) {
	var req dto.YouTubeTranscriptionRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		var apiErr *errors.APIError
		if stderrors.As(err, &apiErr) && apiErr.Details["url"] != "" {
			err = errors.NewBadRequestError("YouTube URL missing")
		}
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.TranscribeYouTube(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
