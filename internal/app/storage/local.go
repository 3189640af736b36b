package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "autoscribe/internal/app/errors"
)

// LocalStore stores artifacts on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates a filesystem store rooted at dir
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(ctx context.Context, key string, data []byte, contentType string) error {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrapf(err, apperrors.KindInternal, "mkdir %s", dir)
	}

	// Atomic write: temp file + rename
	tmp, err := os.CreateTemp(dir, ".output-*.tmp")
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "create temp")
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.Wrap(err, apperrors.KindInternal, "write")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.Wrap(err, apperrors.KindInternal, "close")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.Wrap(err, apperrors.KindInternal, "rename")
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, fmt.Sprintf("open %s", key))
	}
	return f, nil
}

func (s *LocalStore) Type() string { return "local" }

// Dir returns the root directory
func (s *LocalStore) Dir() string { return s.dir }
