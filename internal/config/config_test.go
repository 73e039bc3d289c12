package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMustLoadPath_Yaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
bind_addr: ":8081"
log_level: "debug"
http:
  read_timeout: 2s
  max_body_bytes: 512
cors:
  allow_origin: "https://example.com"
  max_age: 600
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := MustLoadPath(path)

	require.Equal(t, ":8081", cfg.BindAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	require.Equal(t, int64(512), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "https://example.com", cfg.CORS.AllowOrigin)
	require.Equal(t, 600, cfg.CORS.MaxAge)
}

func TestMustLoadPath_MissingFile(t *testing.T) {
	require.Panics(t, func() {
		MustLoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}

func TestMustLoadEnv_Defaults(t *testing.T) {
	cfg := MustLoadEnv()

	require.Equal(t, ":3000", cfg.BindAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, int64(1<<20), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "*", cfg.CORS.AllowOrigin)
	require.Equal(t, 10, cfg.CORS.MaxAge)
}

func TestMustLoadEnv_Overrides(t *testing.T) {
	t.Setenv("BIND_ADDR", ":9000")
	t.Setenv("CORS_MAX_AGE", "30")

	cfg := MustLoadEnv()

	require.Equal(t, ":9000", cfg.BindAddr)
	require.Equal(t, 30, cfg.CORS.MaxAge)
}
