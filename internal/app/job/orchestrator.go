// Package job runs transcription batches: resolve a provider per input,
// transcribe, render and persist, reporting results in input order.
package job

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/metrics"
	"autoscribe/internal/app/model"
	"autoscribe/internal/app/render"
	"autoscribe/internal/app/storage"
	"autoscribe/internal/app/util/files"
)

// DownloadPrefix is the route prefix artifacts are served under
const DownloadPrefix = "/api/download"

// FileBatch is one upload request: files sharing provider, language and format
type FileBatch struct {
	Files    []model.FileDescriptor
	Service  provider.Choice
	Language string
	Format   render.Format

	// ReleaseInputs removes each input file after it has been processed
	ReleaseInputs bool

	// OnResult is called after each input succeeds
	OnResult func(index int, result model.JobResult)
}

// Orchestrator sequences selector, adapter, renderer and storage
type Orchestrator struct {
	registry *provider.Registry
	store    storage.Store
	logger   *zap.Logger
	newID    func() string
}

// NewOrchestrator creates an orchestrator over the registered adapters
func NewOrchestrator(registry *provider.Registry, store storage.Store, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		store:    store,
		logger:   logging.OrNop(logger).Named("orchestrator"),
		newID:    uuid.NewString,
	}
}

// ProcessFiles transcribes every file of the batch in order. The first
// failure aborts the batch and is returned alone; outputs already written for
// earlier files stay in storage but are not reported.
func (o *Orchestrator) ProcessFiles(ctx context.Context, batch FileBatch) (*model.Job, error) {
	if len(batch.Files) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}
	if err := validateFormat(batch.Format); err != nil {
		return nil, err
	}

	// Provider work runs to a terminal state even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	job := &model.Job{ID: o.newID(), Results: make([]model.JobResult, 0, len(batch.Files))}
	logger := o.logger.With(zap.String("job_id", job.ID), zap.Int("inputs", len(batch.Files)))
	logger.Info("batch started",
		zap.String("service", batch.Service.String()),
		zap.String("language", batch.Language),
		zap.String("format", string(batch.Format)),
	)

	for i, fd := range batch.Files {
		result, err := o.processFile(ctx, job.ID, fd, batch)
		if err != nil {
			logger.Error("batch aborted",
				zap.Int("index", i),
				zap.String("file", fd.OriginalName),
				zap.String("kind", string(apperrors.KindOf(err))),
				zap.Error(err),
			)
			metrics.JobsTotal.WithLabelValues("error").Inc()
			return nil, err
		}

		job.Results = append(job.Results, result)
		if batch.OnResult != nil {
			batch.OnResult(i, result)
		}
	}

	metrics.JobsTotal.WithLabelValues("success").Inc()
	logger.Info("batch completed")
	return job, nil
}

func (o *Orchestrator) processFile(ctx context.Context, jobID string, fd model.FileDescriptor, batch FileBatch) (model.JobResult, error) {
	choice, transcriber, err := o.registry.Resolve(batch.Service, fd.SizeBytes)
	if err != nil {
		return model.JobResult{}, err
	}

	transcript, err := o.transcribe(ctx, transcriber, provider.FileInput(fd), batch.Language)
	if err != nil {
		return model.JobResult{}, err
	}

	filename := fmt.Sprintf("%s.%s", fd.BaseName(), batch.Format)
	locator, err := o.persist(ctx, jobID, filename, transcript, batch.Format)
	if err != nil {
		return model.JobResult{}, err
	}

	if batch.ReleaseInputs {
		if err := files.Release(fd.Path); err != nil {
			o.logger.Warn("failed to release input", zap.String("path", fd.Path), zap.Error(err))
		}
	}

	return model.JobResult{
		OriginalFile: fd.OriginalName,
		Service:      choice.String(),
		Format:       string(batch.Format),
		DownloadURL:  locator,
	}, nil
}

// ProcessYouTube builds a one-item job from a video's caption track
func (o *Orchestrator) ProcessYouTube(ctx context.Context, videoURL, language string, format render.Format) (*model.Job, error) {
	if strings.TrimSpace(videoURL) == "" {
		return nil, apperrors.InvalidInput("YouTube URL is required")
	}
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	transcriber, err := o.registry.Get(provider.ChoiceYouTube)
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	jobID := o.newID()
	logger := o.logger.With(zap.String("job_id", jobID), zap.String("url", videoURL))

	transcript, err := o.transcribe(ctx, transcriber, provider.URLInput(videoURL), language)
	if err != nil {
		logger.Error("caption job failed", zap.String("kind", string(apperrors.KindOf(err))), zap.Error(err))
		metrics.JobsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	locator, err := o.persist(ctx, jobID, fmt.Sprintf("youtube.%s", format), transcript, format)
	if err != nil {
		metrics.JobsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.JobsTotal.WithLabelValues("success").Inc()
	logger.Info("caption job completed", zap.Int("segments", len(transcript.Segments)))

	return &model.Job{
		ID: jobID,
		Results: []model.JobResult{{
			OriginalFile: videoURL,
			Service:      provider.ChoiceYouTube.String(),
			Format:       string(format),
			DownloadURL:  locator,
		}},
	}, nil
}

func (o *Orchestrator) transcribe(ctx context.Context, t provider.Transcriber, in provider.Input, language string) (*model.Transcript, error) {
	name := t.Name().String()
	start := time.Now()

	transcript, err := t.Transcribe(ctx, in, language)
	metrics.TranscriptionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues(name, string(apperrors.KindOf(err))).Inc()
		return nil, err
	}
	metrics.TranscriptionsTotal.WithLabelValues(name, "success").Inc()

	if transcript == nil {
		transcript = model.NewTranscript("", nil)
	}
	o.logger.Debug("transcribed",
		zap.String("provider", name),
		zap.Int("segments", len(transcript.Segments)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return transcript, nil
}

func (o *Orchestrator) persist(ctx context.Context, jobID, filename string, t *model.Transcript, format render.Format) (string, error) {
	key, err := storage.Key(jobID, filename)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.KindInvalidInput, "invalid output name %q", filename)
	}
	output := render.Render(t, format)
	if err := o.store.Save(ctx, key, []byte(output), storage.ContentType(string(format))); err != nil {
		return "", err
	}
	return Locator(jobID, filename), nil
}

// Locator returns the retrieval path for an artifact
func Locator(jobID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", DownloadPrefix, jobID, url.PathEscape(filename))
}

// ParseLocator splits a locator returned by Locator into its job id and file name
func ParseLocator(locator string) (jobID, filename string, ok bool) {
	rest, found := strings.CutPrefix(locator, DownloadPrefix+"/")
	if !found {
		return "", "", false
	}
	jobID, escaped, found := strings.Cut(rest, "/")
	if !found || jobID == "" || escaped == "" {
		return "", "", false
	}
	filename, err := url.PathUnescape(escaped)
	if err != nil {
		return "", "", false
	}
	return jobID, filename, true
}

func validateFormat(f render.Format) error {
	if f == "" || strings.ContainsAny(string(f), `/\`) || strings.Contains(string(f), "..") {
		return apperrors.Newf(apperrors.KindInvalidInput, "invalid output format: %q", f)
	}
	return nil
}
