// Package poll implements the bounded wait-and-recheck loop used by providers
// that finish transcription asynchronously.
package poll

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/metrics"
)

// State is the lifecycle of a provider job as seen by the poller
type State int

const (
	Pending State = iota
	Completed
	Failed
	TimedOut
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status is what a single status check observed
type Status[T any] struct {
	State   State
	Payload T
	Reason  string
}

// PendingStatus reports a job that is still running
func PendingStatus[T any]() Status[T] { return Status[T]{State: Pending} }

// CompletedStatus reports a finished job with its payload
func CompletedStatus[T any](payload T) Status[T] {
	return Status[T]{State: Completed, Payload: payload}
}

// FailedStatus reports a job the provider gave up on
func FailedStatus[T any](reason string) Status[T] {
	return Status[T]{State: Failed, Reason: reason}
}

// CheckFunc issues one status check against the provider
type CheckFunc[T any] func(ctx context.Context) (Status[T], error)

// Config is the poll budget for one provider
type Config struct {
	// Provider names the job in errors, logs and metrics
	Provider string
	// Interval is the fixed wait between checks
	Interval time.Duration
	// MaxAttempts bounds the number of checks
	MaxAttempts int

	Logger *zap.Logger

	// Wait suspends between checks; defaults to a timer honoring ctx
	Wait func(ctx context.Context, d time.Duration) error
}

// Outcome is the terminal state reached by Run
type Outcome[T any] struct {
	State    State
	Payload  T
	Reason   string
	Attempts int
}

// Run checks until the job completes, fails, or the attempt budget runs out.
// There is no backoff. An error from check aborts the loop and is returned as is.
func Run[T any](ctx context.Context, cfg Config, check CheckFunc[T]) (Outcome[T], error) {
	log := logging.OrNop(cfg.Logger)
	wait := cfg.Wait
	if wait == nil {
		wait = sleep
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		metrics.PollAttemptsTotal.WithLabelValues(cfg.Provider).Inc()

		status, err := check(ctx)
		if err != nil {
			return Outcome[T]{State: Pending, Attempts: attempt}, err
		}

		switch status.State {
		case Completed:
			log.Debug("poll completed", zap.String("provider", cfg.Provider), zap.Int("attempts", attempt))
			return Outcome[T]{State: Completed, Payload: status.Payload, Attempts: attempt}, nil
		case Failed:
			log.Warn("provider reported failure",
				zap.String("provider", cfg.Provider),
				zap.Int("attempts", attempt),
				zap.String("reason", status.Reason),
			)
			return Outcome[T]{State: Failed, Reason: status.Reason, Attempts: attempt}, nil
		}

		if attempt == cfg.MaxAttempts {
			break
		}
		if err := wait(ctx, cfg.Interval); err != nil {
			return Outcome[T]{State: Pending, Attempts: attempt}, err
		}
	}

	log.Warn("poll budget exhausted",
		zap.String("provider", cfg.Provider),
		zap.Int("max_attempts", cfg.MaxAttempts),
		zap.Duration("interval", cfg.Interval),
	)
	return Outcome[T]{State: TimedOut, Attempts: cfg.MaxAttempts}, nil
}

// Await runs the loop and converts Failed and TimedOut into classified errors
func Await[T any](ctx context.Context, cfg Config, check CheckFunc[T]) (T, error) {
	var zero T

	out, err := Run(ctx, cfg, check)
	if err != nil {
		return zero, err
	}

	switch out.State {
	case Completed:
		return out.Payload, nil
	case Failed:
		if out.Reason == "" {
			return zero, apperrors.Newf(apperrors.KindProviderFailure, "%s transcription failed", cfg.Provider)
		}
		return zero, apperrors.Newf(apperrors.KindProviderFailure, "%s error: %s", cfg.Provider, out.Reason)
	default:
		return zero, apperrors.Newf(apperrors.KindTimeout, "%s transcription timeout", cfg.Provider)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
