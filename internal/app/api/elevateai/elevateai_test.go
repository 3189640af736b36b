package elevateai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/model"
)

func noWait(ctx context.Context, d time.Duration) error { return nil }

func audioInput(t *testing.T) provider.Input {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o644))
	return provider.FileInput(model.FileDescriptor{Path: path, OriginalName: "meeting.wav", SizeBytes: 4})
}

func newTestProvider(url string, maxAttempts int) *Provider {
	p := NewProvider(Config{APIKey: "test-key", Endpoint: url + "/v1/transcribe", MaxAttempts: maxAttempts}, nil)
	p.wait = noWait
	return p
}

func TestProvider_SynchronousResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transcribe", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "fr", r.FormValue("language"))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "meeting.wav", header.Filename)

		w.Write([]byte(`{"text":"bonjour","segments":[{"start":0,"end":1.2,"text":"bonjour"}]}`))
	}))
	defer server.Close()

	got, err := newTestProvider(server.URL, 60).Transcribe(context.Background(), audioInput(t), "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", got.Text)
	assert.Equal(t, []model.Segment{{Start: 0, End: 1.2, Text: "bonjour"}}, got.Segments)
}

func TestProvider_AsyncPolling(t *testing.T) {
	var polls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":"job-42"}`))
			return
		}
		assert.Equal(t, "/v1/transcribe/job-42", r.URL.Path)
		if atomic.AddInt32(&polls, 1) < 3 {
			w.Write([]byte(`{"status":"processing"}`))
			return
		}
		w.Write([]byte(`{"status":"completed","text":"done","segments":[{"start":1,"end":2,"text":"done"}]}`))
	}))
	defer server.Close()

	got, err := newTestProvider(server.URL, 60).Transcribe(context.Background(), audioInput(t), "en")
	require.NoError(t, err)
	assert.Equal(t, "done", got.Text)
	assert.Len(t, got.Segments, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&polls))
}

func TestProvider_Failures(t *testing.T) {
	tests := []struct {
		name        string
		postBody    string
		pollBody    string
		wantKind    apperrors.Kind
		wantMessage string
	}{
		{
			name:        "provider reports failure",
			postBody:    `{"id":"job-1"}`,
			pollBody:    `{"status":"failed"}`,
			wantKind:    apperrors.KindProviderFailure,
			wantMessage: "ElevateAI transcription failed",
		},
		{
			name:        "poll budget exhausted",
			postBody:    `{"id":"job-1"}`,
			pollBody:    `{"status":"queued"}`,
			wantKind:    apperrors.KindTimeout,
			wantMessage: "ElevateAI transcription timeout",
		},
		{
			name:        "neither text nor id",
			postBody:    `{}`,
			wantKind:    apperrors.KindUpstreamRequest,
			wantMessage: "unexpected provider response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					w.Write([]byte(tt.postBody))
					return
				}
				w.Write([]byte(tt.pollBody))
			}))
			defer server.Close()

			_, err := newTestProvider(server.URL, 3).Transcribe(context.Background(), audioInput(t), "en")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestProvider_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("forbidden"))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL, 3).Transcribe(context.Background(), audioInput(t), "en")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUpstreamRequest, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "status 403")
}

func TestProvider_MissingCredential(t *testing.T) {
	p := NewProvider(Config{}, nil)
	_, err := p.Transcribe(context.Background(), audioInput(t), "en")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
	assert.Equal(t, "ELEVATEAI_API_KEY not set", err.Error())
	assert.Equal(t, provider.ChoiceElevateAI, p.Name())
}
