// Package assemblyai transcribes large uploads with AssemblyAI: upload,
// submit, then poll for word-level results.
package assemblyai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"autoscribe/internal/app/api/custom_http"
	"autoscribe/internal/app/api/poll"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
)

const (
	DefaultBaseURL      = "https://api.assemblyai.com/v2"
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 120
	DefaultTimeout      = 30 * time.Minute

	credentialEnv = "ASSEMBLYAI_API_KEY"
)

// Config holds the settings for the AssemblyAI adapter
type Config struct {
	APIKey       string
	BaseURL      string
	PollInterval time.Duration
	MaxAttempts  int
	Timeout      time.Duration
}

// DefaultConfig returns the production settings without a credential
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		PollInterval: DefaultPollInterval,
		MaxAttempts:  DefaultMaxAttempts,
		Timeout:      DefaultTimeout,
	}
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type submitRequest struct {
	AudioURL      string `json:"audio_url"`
	LanguageCode  string `json:"language_code"`
	SpeakerLabels bool   `json:"speaker_labels"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// word timestamps are in milliseconds
type word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type transcriptResponse struct {
	Status string `json:"status"`
	Text   string `json:"text"`
	Words  []word `json:"words"`
	Error  string `json:"error"`
}

// Provider implements provider.Transcriber for AssemblyAI
type Provider struct {
	config Config
	client *custom_http.Client
	logger *zap.Logger
	wait   func(ctx context.Context, d time.Duration) error
}

// NewProvider creates an AssemblyAI adapter
func NewProvider(config Config, logger *zap.Logger) *Provider {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}

	logger = logging.OrNop(logger).Named("assemblyai")
	return &Provider{
		config: config,
		client: custom_http.NewClient("AssemblyAI", "authorization", config.APIKey, config.Timeout, logger),
		logger: logger,
	}
}

// Name returns the provider choice served by this adapter
func (p *Provider) Name() provider.Choice {
	return provider.ChoiceAssemblyAI
}

// Transcribe uploads the raw file, submits it with diarization enabled and
// polls until the transcript is terminal.
func (p *Provider) Transcribe(ctx context.Context, in provider.Input, language string) (*model.Transcript, error) {
	if p.config.APIKey == "" {
		return nil, apperrors.MissingCredential(credentialEnv)
	}
	if in.File == nil {
		return nil, apperrors.InvalidInput("AssemblyAI requires an uploaded file")
	}

	var upload uploadResponse
	if err := p.client.PostFile(ctx, p.config.BaseURL+"/upload", in.File.Path, &upload); err != nil {
		return nil, err
	}
	if upload.UploadURL == "" {
		return nil, apperrors.Upstream("Failed to obtain upload URL from AssemblyAI")
	}

	var submitted submitResponse
	req := submitRequest{AudioURL: upload.UploadURL, LanguageCode: language, SpeakerLabels: true}
	if err := p.client.PostJSON(ctx, p.config.BaseURL+"/transcript", req, &submitted); err != nil {
		return nil, err
	}
	if submitted.ID == "" {
		return nil, apperrors.Upstream("Failed to start AssemblyAI transcription")
	}

	p.logger.Info("transcription submitted",
		zap.String("transcript_id", submitted.ID),
		zap.String("file", in.File.OriginalName),
		zap.String("language", language),
	)

	return poll.Await(ctx, poll.Config{
		Provider:    "AssemblyAI",
		Interval:    p.config.PollInterval,
		MaxAttempts: p.config.MaxAttempts,
		Logger:      p.logger,
		Wait:        p.wait,
	}, p.checkStatus(submitted.ID))
}

func (p *Provider) checkStatus(id string) poll.CheckFunc[*model.Transcript] {
	url := fmt.Sprintf("%s/transcript/%s", p.config.BaseURL, id)
	return func(ctx context.Context) (poll.Status[*model.Transcript], error) {
		var resp transcriptResponse
		if err := p.client.GetJSON(ctx, url, &resp); err != nil {
			return poll.Status[*model.Transcript]{}, err
		}

		switch resp.Status {
		case "completed":
			return poll.CompletedStatus(model.NewTranscript(resp.Text, wordSegments(resp.Words))), nil
		case "error":
			return poll.FailedStatus[*model.Transcript](resp.Error), nil
		default:
			return poll.PendingStatus[*model.Transcript](), nil
		}
	}
}

// wordSegments emits one segment per word, converting milliseconds to seconds
func wordSegments(words []word) []model.Segment {
	return lo.Map(words, func(w word, _ int) model.Segment {
		return model.Segment{Start: w.Start / 1000, End: w.End / 1000, Text: w.Text}
	})
}
