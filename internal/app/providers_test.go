package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autoscribe/internal/app/api/provider"
	"autoscribe/internal/app/storage"
	"autoscribe/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORAGE_BACKEND", "local")
	t.Setenv("TRANSCRIPTS_DIR", t.TempDir())
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("PROVIDERS_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}

func TestProvideRegistry(t *testing.T) {
	registry, err := provideRegistry(testConfig(t), zap.NewNop())
	require.NoError(t, err)
	assert.ElementsMatch(t, []provider.Choice{
		provider.ChoiceAssemblyAI, provider.ChoiceElevateAI, provider.ChoiceWhisper, provider.ChoiceYouTube,
	}, registry.List())
}

func TestProvideStore_Local(t *testing.T) {
	cfg := testConfig(t)
	store, err := provideStore(cfg, zap.NewNop())
	require.NoError(t, err)
	require.IsType(t, &storage.LocalStore{}, store)
	assert.Equal(t, cfg.TranscriptsDir, store.(*storage.LocalStore).Dir())
}

func TestInitializeServer(t *testing.T) {
	srv, err := InitializeServer(testConfig(t), zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/capabilities", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitializeConverter(t *testing.T) {
	c, err := InitializeConverter(testConfig(t), zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, c)
}
