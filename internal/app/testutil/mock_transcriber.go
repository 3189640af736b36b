package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"autoscribe/internal/app/api/provider"
	"autoscribe/internal/app/model"
)

// MockTranscriber is a testify mock of provider.Transcriber
type MockTranscriber struct {
	mock.Mock
	name provider.Choice
}

// NewMockTranscriber creates a mock registered under name
func NewMockTranscriber(name provider.Choice) *MockTranscriber {
	return &MockTranscriber{name: name}
}

// Name returns the choice given at construction
func (m *MockTranscriber) Name() provider.Choice {
	return m.name
}

// Transcribe records the call and returns the configured transcript and error
func (m *MockTranscriber) Transcribe(ctx context.Context, in provider.Input, language string) (*model.Transcript, error) {
	args := m.Called(ctx, in, language)
	var t *model.Transcript
	if v := args.Get(0); v != nil {
		t = v.(*model.Transcript)
	}
	return t, args.Error(1)
}

// ForFile matches an Input carrying the file with the given original name
func ForFile(originalName string) interface{} {
	return mock.MatchedBy(func(in provider.Input) bool {
		return in.File != nil && in.File.OriginalName == originalName
	})
}

// ForURL matches an Input carrying the given URL
func ForURL(url string) interface{} {
	return mock.MatchedBy(func(in provider.Input) bool {
		return in.URL == url
	})
}
