// Package storage persists rendered transcripts under job-scoped keys.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	apperrors "autoscribe/internal/app/errors"
)

// Store saves and retrieves rendered output artifacts
type Store interface {
	// Save writes data under key, replacing any existing object
	Save(ctx context.Context, key string, data []byte, contentType string) error

	// Open returns the object under key. A missing object is a NotFound error.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Type names the backend for logs
	Type() string
}

// ErrArtifactNotFound is returned when a requested output does not exist
var ErrArtifactNotFound = apperrors.NotFound("file not found")

// Key returns the storage key for an artifact of a job. Both parts must be
// single path elements.
func Key(jobID, filename string) (string, error) {
	for _, part := range []string{jobID, filename} {
		if !validElement(part) {
			return "", ErrArtifactNotFound
		}
	}
	return path.Join(jobID, filename), nil
}

func validElement(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// ContentType returns the MIME type served for an output format
func ContentType(format string) string {
	switch format {
	case "json":
		return "application/json; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	case "vtt":
		return "text/vtt; charset=utf-8"
	case "srt":
		return "application/x-subrip; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
