package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvidersConfig(t *testing.T) {
	t.Setenv("TEST_ASSEMBLY_KEY", "from-env")

	cfg, err := ParseProvidersConfig([]byte(`
providers:
  elevateai:
    endpoint: https://elevate.example.com/v1/transcribe
    poll_interval_sec: 2
    max_attempts: 10
  assemblyai:
    api_key: ${TEST_ASSEMBLY_KEY}
    timeout_sec: 90
  whisper:
    model: whisper-large
`))
	require.NoError(t, err)

	elevate := cfg.Get("elevateai")
	assert.Equal(t, "https://elevate.example.com/v1/transcribe", elevate.Endpoint)
	assert.Equal(t, 2*time.Second, elevate.PollInterval())
	assert.Equal(t, 10, elevate.MaxAttempts)

	assert.Equal(t, "from-env", cfg.Get("assemblyai").APIKey)
	assert.Equal(t, 90*time.Second, cfg.Get("assemblyai").Timeout())
	assert.Equal(t, "whisper-large", cfg.Get("whisper").Model)
	assert.Equal(t, ProviderConfig{}, cfg.Get("youtube"))
}

func TestParseProvidersConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown provider", yaml: "providers:\n  deepgram:\n    model: nova\n"},
		{name: "bad endpoint", yaml: "providers:\n  elevateai:\n    endpoint: not-a-url\n"},
		{name: "negative attempts", yaml: "providers:\n  assemblyai:\n    max_attempts: -1\n"},
		{name: "malformed yaml", yaml: "providers: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProvidersConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSaveAndLoadProvidersConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "providers.yaml")
	original := &ProvidersConfig{Providers: map[string]ProviderConfig{
		"youtube": {Endpoint: "https://captions.example.com/timedtext", TimeoutSec: 15},
	}}

	require.NoError(t, SaveProvidersConfig(original, path))
	loaded, err := LoadProvidersConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	_, err = LoadProvidersConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("PROVIDERS_CONFIG", "/etc/autoscribe/providers.yaml")
	assert.Equal(t, "/etc/autoscribe/providers.yaml", GetDefaultConfigPath())

	t.Setenv("PROVIDERS_CONFIG", "")
	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, ".autoscribe", "providers.yaml"), GetDefaultConfigPath())
	}
}

func TestProvidersConfig_NilGet(t *testing.T) {
	var cfg *ProvidersConfig
	assert.Equal(t, ProviderConfig{}, cfg.Get("whisper"))
}
