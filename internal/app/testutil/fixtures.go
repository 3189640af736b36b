package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"autoscribe/internal/app/model"
)

const megabyte = 1024 * 1024

// SampleTranscript returns a two-segment transcript
func SampleTranscript() *model.Transcript {
	return model.NewTranscript("Hello there. General Kenobi.", []model.Segment{
		{Start: 0, End: 1.5, Text: "Hello there."},
		{Start: 1.5, End: 3.25, Text: "General Kenobi."},
	})
}

// TextOnlyTranscript returns a transcript without timed segments
func TextOnlyTranscript(text string) *model.Transcript {
	return model.NewTranscript(text, nil)
}

// CreateTempAudio writes a small file into a test temp dir. sizeBytes is
// reported on the descriptor without allocating a file that large.
func CreateTempAudio(t *testing.T, name string, sizeBytes int64) model.FileDescriptor {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake audio"), 0o644); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return model.FileDescriptor{Path: path, OriginalName: name, SizeBytes: sizeBytes}
}

// MB converts megabytes to bytes
func MB(n int64) int64 {
	return n * megabyte
}
