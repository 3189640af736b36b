// Package whisper transcribes small files with the OpenAI Whisper API in a
// single synchronous request.
package whisper

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	openaiclient "autoscribe/internal/app/api/openai"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
)

const (
	DefaultModel   = openai.Whisper1
	DefaultTimeout = 10 * time.Minute

	credentialEnv = "OPENAI_API_KEY"
)

// Config holds the settings for the Whisper adapter
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultConfig returns the production settings without a credential
func DefaultConfig() Config {
	return Config{Model: DefaultModel, Timeout: DefaultTimeout}
}

// RemoteTranscriber implements provider.Transcriber using the OpenAI API
type RemoteTranscriber struct {
	client *openai.Client
	config Config
	logger *zap.Logger
}

// NewRemoteTranscriber creates a Whisper adapter from explicit settings
func NewRemoteTranscriber(config Config, logger *zap.Logger) *RemoteTranscriber {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	client := openaiclient.NewClient(openaiclient.ClientConfig{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
	})
	return &RemoteTranscriber{
		client: client,
		config: config,
		logger: logging.OrNop(logger).Named("whisper"),
	}
}

// Name returns the provider choice served by this adapter
func (rt *RemoteTranscriber) Name() provider.Choice {
	return provider.ChoiceWhisper
}

// Transcribe sends the file with a verbose response format and passes the
// returned segments through. Size limits are left to the API.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, in provider.Input, language string) (*model.Transcript, error) {
	if rt.config.APIKey == "" {
		return nil, apperrors.MissingCredential(credentialEnv)
	}
	if in.File == nil {
		return nil, apperrors.InvalidInput("Whisper requires an uploaded file")
	}

	req := openai.AudioRequest{
		Model:    rt.config.Model,
		FilePath: in.File.Path,
		Language: language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	rt.logger.Debug("transcription received",
		zap.String("file", in.File.OriginalName),
		zap.Int("segments", len(resp.Segments)),
	)

	segments := make([]model.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, model.Segment{Start: s.Start, End: s.End, Text: s.Text})
	}
	return model.NewTranscript(resp.Text, segments), nil
}

// classify maps client errors onto UpstreamRequest, keeping the HTTP status
// when the API returned one.
func classify(err error) error {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		return apperrors.UpstreamStatus("Whisper", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return apperrors.Wrapf(reqErr.Err, apperrors.KindUpstreamRequest, "Whisper API error (status %d)", reqErr.HTTPStatusCode)
	}
	return apperrors.Wrap(err, apperrors.KindUpstreamRequest, "createTranscription failed")
}
