package bootstrap

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"autoscribe/internal/app/job"
	"autoscribe/internal/app/model"
	"autoscribe/internal/config"
)

func TestPrintJob(t *testing.T) {
	j := &model.Job{ID: "job-1", Results: []model.JobResult{
		{OriginalFile: "talk.mp3", Service: "whisper", DownloadURL: job.Locator("job-1", "talk.txt")},
	}}

	var out bytes.Buffer
	PrintJob(&out, &config.Config{StorageBackend: "local", TranscriptsDir: "/data/transcripts"}, j)
	assert.Equal(t, "job job-1\n  talk.mp3 [whisper] -> "+filepath.Join("/data/transcripts", "job-1", "talk.txt")+"\n", out.String())

	out.Reset()
	PrintJob(&out, &config.Config{StorageBackend: "minio"}, j)
	assert.Contains(t, out.String(), "-> /api/download/job-1/talk.txt")
}
