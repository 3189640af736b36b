// Package converter drives transcription batches from the command line.
package converter

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/job"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
	"autoscribe/internal/app/render"
	"autoscribe/internal/app/util/files"
)

// Options are the per-batch settings chosen on the command line
type Options struct {
	Service  provider.Choice
	Language string
	Format   render.Format
}

// Converter turns local media files into stored transcripts
type Converter struct {
	orchestrator *job.Orchestrator
	logger       *zap.Logger
}

func NewConverter(orchestrator *job.Orchestrator, logger *zap.Logger) *Converter {
	return &Converter{
		orchestrator: orchestrator,
		logger:       logging.OrNop(logger).Named("converter"),
	}
}

// ConvertFiles transcribes the given paths as one batch. Inputs are left in place.
func (c *Converter) ConvertFiles(ctx context.Context, paths []string, opts Options, onResult func(int, model.JobResult)) (*model.Job, error) {
	descriptors, err := describeAll(paths)
	if err != nil {
		return nil, err
	}
	return c.run(ctx, descriptors, opts, onResult)
}

// ConvertDir transcribes up to count files with the given extension from dir,
// oldest first. A count of 0 means all of them.
func (c *Converter) ConvertDir(ctx context.Context, dir, extension string, count int, opts Options, onResult func(int, model.JobResult)) (*model.Job, error) {
	descriptors, err := c.listDir(dir, extension, count)
	if err != nil {
		return nil, err
	}
	return c.run(ctx, descriptors, opts, onResult)
}

func (c *Converter) listDir(dir, extension string, count int) ([]model.FileDescriptor, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.KindInvalidInput, "resolve %s", dir)
	}

	descriptors, err := files.GetAllFiles(absDir, extension)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.KindInvalidInput, "list %s", absDir)
	}
	if count > 0 && len(descriptors) > count {
		descriptors = descriptors[:count]
	}

	c.logger.Info("found files to convert", zap.String("dir", absDir), zap.Int("count", len(descriptors)))
	return descriptors, nil
}

// ConvertYouTube fetches and stores the caption track of one video
func (c *Converter) ConvertYouTube(ctx context.Context, url string, opts Options) (*model.Job, error) {
	return c.orchestrator.ProcessYouTube(ctx, url, opts.Language, opts.Format)
}

func (c *Converter) run(ctx context.Context, descriptors []model.FileDescriptor, opts Options, onResult func(int, model.JobResult)) (*model.Job, error) {
	return c.orchestrator.ProcessFiles(ctx, job.FileBatch{
		Files:    descriptors,
		Service:  opts.Service,
		Language: opts.Language,
		Format:   opts.Format,
		OnResult: onResult,
	})
}

func describeAll(paths []string) ([]model.FileDescriptor, error) {
	descriptors := make([]model.FileDescriptor, 0, len(paths))
	for _, p := range paths {
		fd, err := files.Describe(p)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.KindInvalidInput, "input %s", p)
		}
		descriptors = append(descriptors, fd)
	}
	return descriptors, nil
}

// FormatProgressDescription labels a progress bar
func FormatProgressDescription(action string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%s (1 file)", action)
	}
	return fmt.Sprintf("%s (%d files)", action, count)
}
