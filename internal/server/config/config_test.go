package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "medkeeper-server.db", cfg.DBPath)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow.Duration)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout.Duration)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
addr = "127.0.0.1:9090"
db_path = "/var/lib/medkeeper/records.db"
jwt_secret = "s3cret"
log_format = "json"
rate_limit = 5
rate_window = "30s"
shutdown_timeout = "2s"
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "/var/lib/medkeeper/records.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel, "keys absent in the file keep defaults")
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow.Duration)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout.Duration)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
addr = ":9090"
rate_limit = 5
`)

	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--addr", ":7000", "--jwt-secret", "x"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "x", cfg.JWTSecret)
	assert.Equal(t, 5, cfg.RateLimit, "flag default must not override the file")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		require.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, `listen = ":80"`), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listen")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := Load(writeConfig(t, `rate_window = "soon"`), nil)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
rate_limit = -1
log_format = "xml"
`), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate_limit")
		assert.Contains(t, err.Error(), "log_format")
	})
}
