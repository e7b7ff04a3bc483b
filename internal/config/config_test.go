package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "es", cfg.TMDB.Language)
	assert.Equal(t, "moonshot-v1-8k", cfg.Commentary.Model)
	assert.InDelta(t, 0.7, cfg.Commentary.Temperature, 0.001)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.News.Enabled)
	assert.Equal(t, "0 */6 * * *", cfg.News.Cron)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
telegram:
  token: "file-token"
  owner_id: 42
  group_id: -100
  mention: "@skeletor_bot"
tmdb:
  api_key: "file-key"
news:
  enabled: true
  url: "https://example.com/noticias"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-token", cfg.Telegram.Token)
	assert.Equal(t, int64(42), cfg.Telegram.OwnerID)
	assert.Equal(t, int64(-100), cfg.Telegram.GroupID)
	assert.Equal(t, "@skeletor_bot", cfg.Telegram.Mention)
	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.True(t, cfg.News.Enabled)
	// Untouched sections keep their defaults.
	assert.Equal(t, "es", cfg.TMDB.Language)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tmdb:\n  api_key: \"file-key\"\n"), 0644))

	t.Setenv("SKELETOR_TMDB_API_KEY", "env-key")
	t.Setenv("SKELETOR_TELEGRAM_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8081}
	assert.Equal(t, "127.0.0.1:8081", s.Address())
}
