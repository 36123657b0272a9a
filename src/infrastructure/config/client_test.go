package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"slack-delay-sender/src/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearClientEnv(t *testing.T) {
	for _, key := range []string{"RELAY_URL", "RELAY_TIMEOUT", "SENDER_LABEL", "TICK_INTERVAL", "SLACK_WEBHOOK_URL", "DEBUG", "CLIENT_CONFIG", "DEFAULT_UNIT"} {
		t.Setenv(key, "")
	}
}

func TestLoadClientConfigFrom_MissingFile(t *testing.T) {
	clearClientEnv(t)
	cfg, err := LoadClientConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultClientConfig(), cfg)
}

func TestLoadClientConfigFrom_File(t *testing.T) {
	clearClientEnv(t)
	path := filepath.Join(t.TempDir(), "client.yaml")
	content := `relay_url: http://relay.internal/send-message
relay_timeout_seconds: 3
sender_label: Release Bot
tick_interval_ms: 500
default_unit: Minutes
webhook_url: https://hooks.example/abc
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadClientConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ClientConfig{
		RelayURL:     "http://relay.internal/send-message",
		RelayTimeout: 3 * time.Second,
		SenderLabel:  "Release Bot",
		TickInterval: 500 * time.Millisecond,
		DefaultUnit:  schedule.UnitMinutes,
		WebhookURL:   "https://hooks.example/abc",
		Debug:        true,
	}, cfg)
}

func TestLoadClientConfigFrom_EnvOverridesFile(t *testing.T) {
	clearClientEnv(t)
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sender_label: From File\n"), 0o600))

	t.Setenv("SENDER_LABEL", "From Env")
	t.Setenv("TICK_INTERVAL", "250ms")

	cfg, err := LoadClientConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.SenderLabel)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
}

func TestLoadClientConfigFrom_InvalidYaml(t *testing.T) {
	clearClientEnv(t)
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("relay_url: [unterminated\n"), 0o600))

	cfg, err := LoadClientConfigFrom(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultClientConfig().RelayURL, cfg.RelayURL, "defaults still usable")
}

func TestSaveClientConfig_RoundTrip(t *testing.T) {
	clearClientEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "client.yaml")
	want := DefaultClientConfig()
	want.SenderLabel = "Ops"
	want.WebhookURL = "https://hooks.example/xyz"

	require.NoError(t, SaveClientConfig(path, want))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadClientConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientConfigPath_EnvOverride(t *testing.T) {
	t.Setenv("CLIENT_CONFIG", "/tmp/custom.yaml")
	path, err := ClientConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestLoadClientConfigFrom_DefaultUnit(t *testing.T) {
	clearClientEnv(t)
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_unit: fortnights\n"), 0o600))

	cfg, err := LoadClientConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, schedule.UnitSeconds, cfg.DefaultUnit, "unknown units are ignored")

	t.Setenv("DEFAULT_UNIT", "hours")
	cfg, err = LoadClientConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, schedule.UnitHours, cfg.DefaultUnit)
}
