package dto

import (
	"autoscribe/internal/app/model"
)

// FileTranscriptionRequest holds the form fields of a file upload.
// Files arrive separately in the multipart "files" field.
type FileTranscriptionRequest struct {
	Service      string `form:"service"`
	Language     string `form:"language"`
	OutputFormat string `form:"outputFormat"`
}

// Defaults fills unset fields
func (r *FileTranscriptionRequest) Defaults() {
	if r.Service == "" {
		r.Service = "auto"
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultOutputFormat
	}
}

// YouTubeTranscriptionRequest asks for the caption track of a video
type YouTubeTranscriptionRequest struct {
	URL          string `json:"url" binding:"required"`
	Language     string `json:"language,omitempty"`
	OutputFormat string `json:"outputFormat,omitempty"`
}

// Defaults fills unset fields
func (r *YouTubeTranscriptionRequest) Defaults() {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultOutputFormat
	}
}

const (
	DefaultLanguage     = "en"
	DefaultOutputFormat = "txt"
)

// JobResponse is returned for file batches
type JobResponse struct {
	JobID   string            `json:"jobId"`
	Results []model.JobResult `json:"results"`
}

// NewJobResponse converts a finished job
func NewJobResponse(job *model.Job) JobResponse {
	results := job.Results
	if results == nil {
		results = []model.JobResult{}
	}
	return JobResponse{JobID: job.ID, Results: results}
}

// YouTubeTranscriptionResponse is returned for caption jobs
type YouTubeTranscriptionResponse struct {
	JobID       string `json:"jobId"`
	DownloadURL string `json:"downloadUrl"`
}
