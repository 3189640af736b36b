package custom_http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "autoscribe/internal/app/errors"
)

func writeTempAudio(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClient_PostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "en", r.FormValue("language"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "clip.mp3", header.Filename)
		assert.Equal(t, "fake audio", string(data))

		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer server.Close()

	c := NewClient("ElevateAI", "Authorization", "Bearer secret", 5*time.Second, nil)

	var out struct {
		Text string `json:"text"`
	}
	err := c.PostMultipart(context.Background(), server.URL, "file", writeTempAudio(t, "fake audio"),
		map[string]string{"language": "en"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Text)
}

func TestClient_PostFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("authorization"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "raw bytes", string(body))
		w.Write([]byte(`{"upload_url":"https://cdn/1"}`))
	}))
	defer server.Close()

	c := NewClient("AssemblyAI", "authorization", "key", 0, nil)
	var out map[string]string
	require.NoError(t, c.PostFile(context.Background(), server.URL, writeTempAudio(t, "raw bytes"), &out))
	assert.Equal(t, "https://cdn/1", out["upload_url"])
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind apperrors.Kind
		contains string
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"bad key"}`))
			},
			wantKind: apperrors.KindUpstreamRequest,
			contains: "status 401",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"text": `))
			},
			wantKind: apperrors.KindUpstreamRequest,
			contains: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClient("test", "", "", time.Second, nil)
			var out map[string]interface{}
			err := c.GetJSON(context.Background(), server.URL, &out)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient("test", "", "", time.Second, nil)
	err := c.PostJSON(context.Background(), url, map[string]string{"a": "b"}, nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUpstreamRequest, apperrors.KindOf(err))
}

func TestClient_MissingFile(t *testing.T) {
	c := NewClient("test", "", "", time.Second, nil)
	err := c.PostFile(context.Background(), "http://127.0.0.1:1", "/no/such/file.mp3", nil)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}
