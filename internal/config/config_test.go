package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"General", "Tech Talk", "Random"}, cfg.SeedRooms)
	assert.FileExists(t, path)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("RELAYCHAT_ADDR", ":9100")
	t.Setenv("RELAYCHAT_LOG_LEVEL", "debug")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFallsBackToProviderEnvName(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, _, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestUpdateFromSkipsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":8081"})

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)

	cfg.UpdateFrom(Config{})
	assert.Equal(t, ":8081", cfg.Addr)
}
