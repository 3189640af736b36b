// Package elevateai transcribes uploaded files with ElevateAI, which answers
// either synchronously or with a job id that has to be polled.
package elevateai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"autoscribe/internal/app/api/custom_http"
	"autoscribe/internal/app/api/poll"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
)

const (
	DefaultEndpoint     = "https://api.elevate.ai/v1/transcribe"
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 60
	DefaultTimeout      = 5 * time.Minute

	credentialEnv = "ELEVATEAI_API_KEY"
)

// Config holds the settings for the ElevateAI adapter
type Config struct {
	APIKey       string
	Endpoint     string
	PollInterval time.Duration
	MaxAttempts  int
	Timeout      time.Duration
}

// DefaultConfig returns the production settings without a credential
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		PollInterval: DefaultPollInterval,
		MaxAttempts:  DefaultMaxAttempts,
		Timeout:      DefaultTimeout,
	}
}

// transcribeResponse covers both the synchronous and the job-id reply
type transcribeResponse struct {
	ID       string          `json:"id"`
	Text     string          `json:"text"`
	Segments []model.Segment `json:"segments"`
}

type statusResponse struct {
	Status   string          `json:"status"`
	Text     string          `json:"text"`
	Segments []model.Segment `json:"segments"`
	Error    string          `json:"error"`
}

// Provider implements provider.Transcriber for ElevateAI
type Provider struct {
	config Config
	client *custom_http.Client
	logger *zap.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

// NewProvider creates an ElevateAI adapter. A missing key is reported when
// Transcribe is called.
func NewProvider(config Config, logger *zap.Logger) *Provider {
	defaults := DefaultConfig()
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}

	logger = logging.OrNop(logger).Named("elevateai")
	return &Provider{
		config: config,
		client: custom_http.NewClient("ElevateAI", "Authorization", "Bearer "+config.APIKey, config.Timeout, logger),
		logger: logger,
	}
}

// Name returns the provider choice served by this adapter
func (p *Provider) Name() provider.Choice {
	return provider.ChoiceElevateAI
}

// Transcribe uploads the file and returns the synchronous result or polls
// the job until it reaches a terminal status.
func (p *Provider) Transcribe(ctx context.Context, in provider.Input, language string) (*model.Transcript, error) {
	if p.config.APIKey == "" {
		return nil, apperrors.MissingCredential(credentialEnv)
	}
	if in.File == nil {
		return nil, apperrors.InvalidInput("ElevateAI requires an uploaded file")
	}

	var resp transcribeResponse
	fields := map[string]string{"language": language}
	if err := p.client.PostMultipart(ctx, p.config.Endpoint, "file", in.File.Path, fields, &resp); err != nil {
		return nil, err
	}

	if resp.Text != "" {
		p.logger.Debug("synchronous result", zap.String("file", in.File.OriginalName))
		return model.NewTranscript(resp.Text, resp.Segments), nil
	}
	if resp.ID == "" {
		return nil, apperrors.ErrUnexpectedResponse
	}

	p.logger.Info("transcription queued", zap.String("job_id", resp.ID), zap.String("file", in.File.OriginalName))
	return poll.Await(ctx, poll.Config{
		Provider:    "ElevateAI",
		Interval:    p.config.PollInterval,
		MaxAttempts: p.config.MaxAttempts,
		Logger:      p.logger,
		Wait:        p.wait,
	}, p.checkStatus(resp.ID))
}

func (p *Provider) checkStatus(id string) poll.CheckFunc[*model.Transcript] {
	url := fmt.Sprintf("%s/%s", strings.TrimRight(p.config.Endpoint, "/"), id)
	return func(ctx context.Context) (poll.Status[*model.Transcript], error) {
		var status statusResponse
		if err := p.client.GetJSON(ctx, url, &status); err != nil {
			return poll.Status[*model.Transcript]{}, err
		}

		switch status.Status {
		case "completed":
			return poll.CompletedStatus(model.NewTranscript(status.Text, status.Segments)), nil
		case "failed":
			return poll.FailedStatus[*model.Transcript](status.Error), nil
		default:
			return poll.PendingStatus[*model.Transcript](), nil
		}
	}
}
