package model

import (
	"path/filepath"
	"strings"
)

// FileDescriptor describes an uploaded input owned by the upload layer.
type FileDescriptor struct {
	Path         string
	OriginalName string
	SizeBytes    int64
}

// BaseName returns the original name without its extension.
func (f FileDescriptor) BaseName() string {
	name := filepath.Base(f.OriginalName)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
