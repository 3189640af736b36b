package services

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autoscribe/internal/api/v1/dto"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/job"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
	"autoscribe/internal/app/render"
	"autoscribe/internal/app/util/files"
)

// transcriptionService stages uploads and hands them to the orchestrator
type transcriptionService struct {
	orchestrator *job.Orchestrator
	uploadDir    string
	logger       *zap.Logger
}

// NewTranscriptionService creates a transcription service writing uploads to uploadDir
func NewTranscriptionService(orchestrator *job.Orchestrator, uploadDir string, logger *zap.Logger) TranscriptionService {
	return &transcriptionService{
		orchestrator: orchestrator,
		uploadDir:    uploadDir,
		logger:       logging.OrNop(logger).Named("http"),
	}
}

// TranscribeFiles stores each upload, runs the batch, and removes whatever
// staged input is left once the batch ends.
func (s *transcriptionService) TranscribeFiles(ctx context.Context, req *dto.FileTranscriptionRequest, uploads []*multipart.FileHeader) (*model.Job, error) {
	if len(uploads) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}
	req.Defaults()

	choice, err := provider.ParseChoice(req.Service)
	if err != nil {
		return nil, err
	}

	if err := files.EnsureDir(s.uploadDir); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "prepare upload directory")
	}

	staged := make([]model.FileDescriptor, 0, len(uploads))
	defer func() {
		for _, fd := range staged {
			if err := files.Release(fd.Path); err != nil {
				s.logger.Warn("failed to remove upload", zap.String("path", fd.Path), zap.Error(err))
			}
		}
	}()

	for _, fh := range uploads {
		fd, err := s.stage(fh)
		if err != nil {
			return nil, err
		}
		staged = append(staged, fd)
	}

	return s.orchestrator.ProcessFiles(ctx, job.FileBatch{
		Files:         staged,
		Service:       choice,
		Language:      req.Language,
		Format:        render.ParseFormat(req.OutputFormat),
		ReleaseInputs: true,
	})
}

func (s *transcriptionService) stage(fh *multipart.FileHeader) (model.FileDescriptor, error) {
	src, err := fh.Open()
	if err != nil {
		return model.FileDescriptor{}, apperrors.Wrapf(err, apperrors.KindInvalidInput, "read upload %s", fh.Filename)
	}
	defer src.Close()

	path := filepath.Join(s.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return model.FileDescriptor{}, apperrors.Wrap(err, apperrors.KindInternal, "stage upload")
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return model.FileDescriptor{}, apperrors.Wrapf(err, apperrors.KindInternal, "stage upload %s", fh.Filename)
	}

	return model.FileDescriptor{Path: path, OriginalName: fh.Filename, SizeBytes: n}, nil
}

// TranscribeYouTube runs a caption job for one video
func (s *transcriptionService) TranscribeYouTube(ctx context.Context, req *dto.YouTubeTranscriptionRequest) (*dto.YouTubeTranscriptionResponse, error) {
	req.Defaults()

	j, err := s.orchestrator.ProcessYouTube(ctx, req.URL, req.Language, render.ParseFormat(req.OutputFormat))
	if err != nil {
		return nil, err
	}
	return &dto.YouTubeTranscriptionResponse{JobID: j.ID, DownloadURL: j.Results[0].DownloadURL}, nil
}
