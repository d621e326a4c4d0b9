package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	data := `
console:
  port: 9100
  request_timeout: 15s
backend:
  base_url: http://backend:8080
  timeout: 3s
  token: secret-token
polling:
  interval: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Console.Port)
	require.Equal(t, 15*time.Second, cfg.Console.RequestTimeout)
	require.Equal(t, "http://backend:8080", cfg.Backend.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	require.Equal(t, "secret-token", cfg.Backend.Token)
	require.Equal(t, time.Second, cfg.Polling.Interval)
}

func TestLoadConfig_PartialFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("console:\n  port: 9100\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Console.Port)
	require.Equal(t, "http://localhost:8080", cfg.Backend.BaseURL)
	require.Equal(t, 2*time.Second, cfg.Polling.Interval)
}

func TestLoadConfig_ExplicitMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadConfig_InvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("console: [not a map"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Console.Port = 70000
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.Backend.BaseURL = ""
	require.Error(t, bad.Validate())

	bad = *cfg
	bad.Polling.Interval = -time.Second
	require.Error(t, bad.Validate())
}
