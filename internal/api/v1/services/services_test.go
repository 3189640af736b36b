package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autoscribe/internal/api/v1/dto"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/job"
	"autoscribe/internal/app/storage"
	"autoscribe/internal/app/testutil"
)

// uploads builds multipart file headers the way gin hands them to handlers
func uploads(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func setup(t *testing.T) (TranscriptionService, *testutil.MockTranscriber, *testutil.MockTranscriber, string, storage.Store) {
	t.Helper()
	whisper := testutil.NewMockTranscriber(provider.ChoiceWhisper)
	yt := testutil.NewMockTranscriber(provider.ChoiceYouTube)
	registry, err := provider.NewRegistry(whisper, yt)
	require.NoError(t, err)

	store := storage.NewLocalStore(t.TempDir())
	uploadDir := t.TempDir()
	svc := NewTranscriptionService(job.NewOrchestrator(registry, store, nil), uploadDir, nil)
	return svc, whisper, yt, uploadDir, store
}

func remaining(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestTranscribeFiles(t *testing.T) {
	svc, whisper, _, uploadDir, store := setup(t)
	whisper.On("Transcribe", mock.Anything, testutil.ForFile("talk.mp3"), "de").
		Return(testutil.SampleTranscript(), nil).Once()

	req := &dto.FileTranscriptionRequest{Language: "de", OutputFormat: "srt"}
	j, err := svc.TranscribeFiles(context.Background(), req, uploads(t, map[string]string{"talk.mp3": "audio"}))
	require.NoError(t, err)

	require.Len(t, j.Results, 1)
	assert.Equal(t, "talk.mp3", j.Results[0].OriginalFile)
	assert.Equal(t, "whisper", j.Results[0].Service)
	assert.Equal(t, "srt", j.Results[0].Format)
	assert.Equal(t, job.Locator(j.ID, "talk.srt"), j.Results[0].DownloadURL)

	rc, err := store.Open(context.Background(), j.ID+"/talk.srt")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "00:00:01,500 --> 00:00:03,250")

	assert.Empty(t, remaining(t, uploadDir), "staged uploads are removed")
	whisper.AssertExpectations(t)
}

func TestTranscribeFiles_Defaults(t *testing.T) {
	svc, whisper, _, _, _ := setup(t)
	whisper.On("Transcribe", mock.Anything, mock.Anything, "en").
		Return(testutil.TextOnlyTranscript("hi"), nil).Once()

	j, err := svc.TranscribeFiles(context.Background(), &dto.FileTranscriptionRequest{}, uploads(t, map[string]string{"a.wav": "x"}))
	require.NoError(t, err)
	assert.Equal(t, "txt", j.Results[0].Format)
}

func TestTranscribeFiles_FailureCleansUploads(t *testing.T) {
	svc, whisper, _, uploadDir, _ := setup(t)
	whisper.On("Transcribe", mock.Anything, mock.Anything, "en").
		Return(nil, apperrors.UpstreamStatus("Whisper", 413, "too large")).Once()

	_, err := svc.TranscribeFiles(context.Background(), &dto.FileTranscriptionRequest{}, uploads(t, map[string]string{"a.wav": "x"}))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUpstreamRequest, apperrors.KindOf(err))
	assert.Empty(t, remaining(t, uploadDir))
}

func TestTranscribeFiles_InvalidRequests(t *testing.T) {
	svc, _, _, _, _ := setup(t)

	_, err := svc.TranscribeFiles(context.Background(), &dto.FileTranscriptionRequest{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyBatch)

	_, err = svc.TranscribeFiles(context.Background(), &dto.FileTranscriptionRequest{Service: "deepgram"}, uploads(t, map[string]string{"a.wav": "x"}))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "unsupported service")
}

func TestTranscribeYouTube(t *testing.T) {
	svc, _, yt, _, _ := setup(t)
	url := "https://youtu.be/dQw4w9WgXcQ"
	yt.On("Transcribe", mock.Anything, testutil.ForURL(url), "en").
		Return(testutil.SampleTranscript(), nil).Once()

	resp, err := svc.TranscribeYouTube(context.Background(), &dto.YouTubeTranscriptionRequest{URL: url, OutputFormat: "vtt"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, job.Locator(resp.JobID, "youtube.vtt"), resp.DownloadURL)
}

func TestDownloadService(t *testing.T) {
	store := storage.NewLocalStore(t.TempDir())
	require.NoError(t, store.Save(context.Background(), "job-1/talk.json", []byte(`{}`), "application/json"))
	svc := NewDownloadService(store)

	a, err := svc.Open(context.Background(), "job-1", "talk.json")
	require.NoError(t, err)
	defer a.Body.Close()
	assert.Equal(t, "application/json; charset=utf-8", a.ContentType)
	assert.Equal(t, "talk.json", a.Filename)

	_, err = svc.Open(context.Background(), "job-1", "missing.txt")
	assert.ErrorIs(t, err, storage.ErrArtifactNotFound)

	_, err = svc.Open(context.Background(), "..", "passwd")
	assert.ErrorIs(t, err, storage.ErrArtifactNotFound)
}
