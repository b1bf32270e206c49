package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "")
	t.Setenv("BINANCE_API_SECRET", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "bot.log", cfg.LogFile)
	assert.Equal(t, 3, cfg.NotificationRetries)
	assert.Equal(t, 5*time.Second, cfg.NotificationDelay)
	assert.Error(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("api_key: from-file\napi_secret: file-secret\nlog_file: custom.log\n"), 0o644))

	t.Setenv("BINANCE_API_KEY", "from-env")
	t.Setenv("BINANCE_API_SECRET", "")
	t.Setenv("LOG_FILE", "")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "file-secret", cfg.APISecret)
	assert.Equal(t, "custom.log", cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
