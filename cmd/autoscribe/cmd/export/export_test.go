package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoscribe/internal/app/render"
	"autoscribe/internal/app/testutil"
)

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "talk.json")
	out := filepath.Join(dir, "talk.xlsx")
	require.NoError(t, os.WriteFile(in, []byte(render.Render(testutil.SampleTranscript(), render.FormatJSON)), 0o644))

	var stdout bytes.Buffer
	Cmd.SetOut(&stdout)
	Cmd.SetArgs([]string{in, out})
	require.NoError(t, Cmd.Execute())

	assert.Contains(t, stdout.String(), out)
	_, err := os.Stat(out)
	assert.NoError(t, err)
}
