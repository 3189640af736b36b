package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/model"
)

type stubTranscriber struct {
	name Choice
}

func (s stubTranscriber) Name() Choice { return s.name }

func (s stubTranscriber) Transcribe(ctx context.Context, in Input, language string) (*model.Transcript, error) {
	return model.NewTranscript(string(s.name), nil), nil
}

func TestRegistry_Register(t *testing.T) {
	r, err := NewRegistry(stubTranscriber{ChoiceWhisper})
	require.NoError(t, err)

	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(stubTranscriber{ChoiceWhisper}), "duplicate registration")
	assert.Error(t, r.Register(stubTranscriber{ChoiceAuto}), "auto is not a provider")
	assert.NoError(t, r.Register(stubTranscriber{ChoiceElevateAI}))

	assert.Equal(t, []Choice{ChoiceElevateAI, ChoiceWhisper}, r.List())
}

func TestRegistry_Resolve(t *testing.T) {
	r, err := NewRegistry(
		stubTranscriber{ChoiceWhisper},
		stubTranscriber{ChoiceElevateAI},
		stubTranscriber{ChoiceAssemblyAI},
	)
	require.NoError(t, err)

	tests := []struct {
		name   string
		choice Choice
		size   int64
		want   Choice
	}{
		{"auto small", ChoiceAuto, 1024, ChoiceWhisper},
		{"auto medium", ChoiceAuto, 100 * megabyte, ChoiceElevateAI},
		{"empty means auto", "", 3000 * megabyte, ChoiceAssemblyAI},
		{"explicit overrides size", ChoiceAssemblyAI, 1024, ChoiceAssemblyAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tr, err := r.Resolve(tt.choice, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tr.Name())
		})
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Get(ChoiceYouTube)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}
