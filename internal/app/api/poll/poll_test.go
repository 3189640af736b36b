package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "autoscribe/internal/app/errors"
)

// recorder counts checks and records every wait the loop asks for
type recorder struct {
	checks int
	waits  []time.Duration
}

func (r *recorder) wait(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func TestRun_CompletesOnThirdCheck(t *testing.T) {
	rec := &recorder{}
	cfg := Config{Provider: "test", Interval: 5 * time.Second, MaxAttempts: 60, Wait: rec.wait}

	out, err := Run(context.Background(), cfg, func(ctx context.Context) (Status[string], error) {
		rec.checks++
		if rec.checks < 3 {
			return PendingStatus[string](), nil
		}
		return CompletedStatus("done"), nil
	})

	require.NoError(t, err)
	assert.Equal(t, Completed, out.State)
	assert.Equal(t, "done", out.Payload)
	assert.Equal(t, 3, out.Attempts)
	assert.Equal(t, 3, rec.checks)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, rec.waits)
}

func TestRun_TimesOutWithoutExtraChecks(t *testing.T) {
	rec := &recorder{}
	cfg := Config{Provider: "test", Interval: time.Second, MaxAttempts: 4, Wait: rec.wait}

	out, err := Run(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
		rec.checks++
		return PendingStatus[int](), nil
	})

	require.NoError(t, err)
	assert.Equal(t, TimedOut, out.State)
	assert.Equal(t, 4, rec.checks)
	assert.Len(t, rec.waits, 3)
}

func TestRun_Failed(t *testing.T) {
	rec := &recorder{}
	cfg := Config{Provider: "test", Interval: time.Second, MaxAttempts: 10, Wait: rec.wait}

	out, err := Run(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
		rec.checks++
		if rec.checks == 2 {
			return FailedStatus[int]("audio unreadable"), nil
		}
		return PendingStatus[int](), nil
	})

	require.NoError(t, err)
	assert.Equal(t, Failed, out.State)
	assert.Equal(t, "audio unreadable", out.Reason)
	assert.Equal(t, 2, rec.checks)
}

func TestRun_CheckErrorAborts(t *testing.T) {
	rec := &recorder{}
	boom := errors.New("connection reset")
	cfg := Config{Provider: "test", Interval: time.Second, MaxAttempts: 10, Wait: rec.wait}

	_, err := Run(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
		rec.checks++
		return Status[int]{}, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rec.checks)
	assert.Empty(t, rec.waits)
}

func TestAwait_ClassifiesTerminalStates(t *testing.T) {
	noWait := func(ctx context.Context, d time.Duration) error { return nil }

	t.Run("failed with reason", func(t *testing.T) {
		cfg := Config{Provider: "AssemblyAI", MaxAttempts: 3, Wait: noWait}
		_, err := Await(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
			return FailedStatus[int]("bad audio"), nil
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindProviderFailure, apperrors.KindOf(err))
		assert.Equal(t, "AssemblyAI error: bad audio", err.Error())
	})

	t.Run("failed without reason", func(t *testing.T) {
		cfg := Config{Provider: "ElevateAI", MaxAttempts: 3, Wait: noWait}
		_, err := Await(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
			return FailedStatus[int](""), nil
		})
		assert.Equal(t, "ElevateAI transcription failed", err.Error())
	})

	t.Run("timeout", func(t *testing.T) {
		cfg := Config{Provider: "ElevateAI", MaxAttempts: 2, Wait: noWait}
		_, err := Await(context.Background(), cfg, func(ctx context.Context) (Status[int], error) {
			return PendingStatus[int](), nil
		})
		assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
		assert.Equal(t, "ElevateAI transcription timeout", err.Error())
	})
}

func TestRun_RealIntervalSeparatesChecks(t *testing.T) {
	interval := 20 * time.Millisecond
	var stamps []time.Time
	cfg := Config{Provider: "test", Interval: interval, MaxAttempts: 5}

	out, err := Run(context.Background(), cfg, func(ctx context.Context) (Status[bool], error) {
		stamps = append(stamps, time.Now())
		if len(stamps) == 3 {
			return CompletedStatus(true), nil
		}
		return PendingStatus[bool](), nil
	})

	require.NoError(t, err)
	assert.Equal(t, Completed, out.State)
	require.Len(t, stamps, 3)
	for i := 1; i < len(stamps); i++ {
		assert.GreaterOrEqual(t, stamps[i].Sub(stamps[i-1]), interval)
	}
}
