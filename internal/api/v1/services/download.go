package services

import (
	"context"
	"path/filepath"
	"strings"

	"autoscribe/internal/app/storage"
)

type downloadService struct {
	store storage.Store
}

// NewDownloadService creates a download service over the artifact store
func NewDownloadService(store storage.Store) DownloadService {
	return &downloadService{store: store}
}

// Open returns the stored artifact. Names that cannot be a stored key are
// reported as not found.
func (s *downloadService) Open(ctx context.Context, jobID, filename string) (*Artifact, error) {
	key, err := storage.Key(jobID, filename)
	if err != nil {
		return nil, storage.ErrArtifactNotFound
	}

	body, err := s.store.Open(ctx, key)
	if err != nil {
		return nil, err
	}

	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	return &Artifact{Body: body, Filename: filename, ContentType: storage.ContentType(format)}, nil
}
