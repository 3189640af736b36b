package handlers

import (
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoscribe/internal/api/middleware"
	"autoscribe/internal/api/v1/services"
)

// DownloadHandler streams stored transcripts
type DownloadHandler struct {
	service services.DownloadService
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(service services.DownloadService) *DownloadHandler {
	return &DownloadHandler{service: service}
}

// Download handles GET /api/download/:jobId/:filename
//
// @Summary Download a transcript
// @Description Streams a rendered transcript produced by an earlier job as an attachment.
// @Tags download
// @Produce octet-stream
// @Param jobId path string true "Job ID"
// @Param filename path string true "Output file name"
// @Success 200 {file} file "Transcript file"
// @Failure 404 {object} errors.APIError "File not found"
// @Router /download/{jobId}/{filename} [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	artifact, err := h.service.Open(c.Request.Context(), c.Param("jobId"), c.Param("filename"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	defer artifact.Body.Close()

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	c.Header("Content-Type", artifact.ContentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, artifact.Body)
}
