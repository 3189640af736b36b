package provider

import (
	"context"

	"autoscribe/internal/app/model"
)

// Transcriber is the contract every speech-to-text adapter implements. It
// hides the provider's upload, submit and poll protocol and returns the
// canonical transcript with all timestamps in seconds.
type Transcriber interface {
	// Name identifies the adapter in results, logs and metrics
	Name() Choice

	// Transcribe produces a canonical transcript for the input. Failures are
	// classified with the kinds from internal/app/errors.
	Transcribe(ctx context.Context, in Input, language string) (*model.Transcript, error)
}

// Input is what an adapter transcribes: an uploaded file or a video URL.
type Input struct {
	File *model.FileDescriptor
	URL  string
}

// FileInput wraps a file descriptor as an Input
func FileInput(fd model.FileDescriptor) Input {
	return Input{File: &fd}
}

// URLInput wraps a video URL as an Input
func URLInput(url string) Input {
	return Input{URL: url}
}

// Size returns the file size in bytes, or 0 for URL inputs
func (in Input) Size() int64 {
	if in.File == nil {
		return 0
	}
	return in.File.SizeBytes
}
