package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := NewConfig("")
		require.NoError(t, err)

		assert.Equal(t, Dev, cfg.Env)
		assert.Equal(t, "Local", cfg.Storage.Kind)
		assert.False(t, cfg.Storage.DisableEncoding)
		assert.Empty(t, cfg.Storage.EncryptKey)
		assert.Equal(t, ".", cfg.Storage.Delimiter)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "stderr", cfg.Logging.Output)
		assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
		assert.Equal(t, 168*time.Hour, cfg.Logging.MaxAge)
	})

	t.Run("YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
env: prod
storage:
  kind: Cookie
  disable_encoding: true
  encrypt_key: secret
  delimiter: "::"
logging:
  level: debug
  output: /tmp/webstore.log
  max_size: 512KB
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := NewConfig(path)
		require.NoError(t, err)

		assert.Equal(t, Prod, cfg.Env)
		assert.Equal(t, "Cookie", cfg.Storage.Kind)
		assert.True(t, cfg.Storage.DisableEncoding)
		assert.Equal(t, "secret", cfg.Storage.EncryptKey)
		assert.Equal(t, "::", cfg.Storage.Delimiter)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 1, cfg.Logging.MaxSizeMB)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("STORAGE_KIND", "Memory")
		t.Setenv("STORAGE_DELIMITER", "/")

		cfg, err := NewConfig("")
		require.NoError(t, err)
		assert.Equal(t, "Memory", cfg.Storage.Kind)
		assert.Equal(t, "/", cfg.Storage.Delimiter)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid max size", func(t *testing.T) {
		t.Setenv("LOG_MAX_SIZE", "lots")

		_, err := NewConfig("")
		assert.ErrorIs(t, err, ErrInvalidSize)
	})
}
