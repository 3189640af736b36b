package services

import (
	"context"
	"io"
	"mime/multipart"

	"autoscribe/internal/api/v1/dto"
	"autoscribe/internal/app/model"
)

// TranscriptionService runs upload and caption jobs
type TranscriptionService interface {
	TranscribeFiles(ctx context.Context, req *dto.FileTranscriptionRequest, uploads []*multipart.FileHeader) (*model.Job, error)
	TranscribeYouTube(ctx context.Context, req *dto.YouTubeTranscriptionRequest) (*dto.YouTubeTranscriptionResponse, error)
}

// DownloadService serves stored transcript artifacts
type DownloadService interface {
	Open(ctx context.Context, jobID, filename string) (*Artifact, error)
}

// Artifact is an opened transcript output
type Artifact struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
}
