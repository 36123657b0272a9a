package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"slack-delay-sender/src/domain/schedule"
	relayClient "slack-delay-sender/src/infrastructure/repository/relay-client"
	"slack-delay-sender/src/infrastructure/utils"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "slack-delay-sender"
	clientFileName = "client.yaml"

	defaultTickInterval = time.Second
	defaultRelayTimeout = 15 * time.Second
	defaultSenderLabel  = "Slack Delay Sender"
)

// ClientConfig holds the terminal client settings.
type ClientConfig struct {
	RelayURL     string
	RelayTimeout time.Duration
	SenderLabel  string
	TickInterval time.Duration
	// DefaultUnit is selected when the client opens.
	DefaultUnit schedule.Unit
	// WebhookURL pre-fills the webhook field.
	WebhookURL string
	Debug      bool
}

type yamlClient struct {
	RelayURL            string `yaml:"relay_url"`
	RelayTimeoutSeconds int    `yaml:"relay_timeout_seconds"`
	SenderLabel         string `yaml:"sender_label"`
	TickIntervalMillis  int    `yaml:"tick_interval_ms"`
	DefaultUnit         string `yaml:"default_unit"`
	WebhookURL          string `yaml:"webhook_url"`
	Debug               bool   `yaml:"debug"`
}

// DefaultClientConfig returns the settings used when nothing is configured.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RelayURL:     relayClient.DefaultRelayURL,
		RelayTimeout: defaultRelayTimeout,
		SenderLabel:  defaultSenderLabel,
		TickInterval: defaultTickInterval,
		DefaultUnit:  schedule.UnitSeconds,
	}
}

// LoadClientConfig reads the YAML file under the user config dir and then
// applies environment overrides. A missing file is not an error.
func LoadClientConfig() (ClientConfig, error) {
	path, err := ClientConfigPath()
	if err != nil {
		cfg := DefaultClientConfig()
		applyClientEnv(&cfg)
		return cfg, err
	}
	return LoadClientConfigFrom(path)
}

// LoadClientConfigFrom is LoadClientConfig with an explicit file path.
func LoadClientConfigFrom(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()

	rawData, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileData yamlClient
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			applyClientEnv(&cfg)
			return cfg, fmt.Errorf("parse client yaml: %w", err)
		}
		applyClientYaml(&cfg, fileData)
	case errors.Is(err, os.ErrNotExist):
	default:
		applyClientEnv(&cfg)
		return cfg, fmt.Errorf("read client config: %w", err)
	}

	applyClientEnv(&cfg)
	return cfg, nil
}

// SaveClientConfig writes cfg to path, creating the directory if needed.
func SaveClientConfig(path string, cfg ClientConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlClient{
		RelayURL:            cfg.RelayURL,
		RelayTimeoutSeconds: int(cfg.RelayTimeout / time.Second),
		SenderLabel:         cfg.SenderLabel,
		TickIntervalMillis:  int(cfg.TickInterval / time.Millisecond),
		DefaultUnit:         string(cfg.DefaultUnit),
		WebhookURL:          cfg.WebhookURL,
		Debug:               cfg.Debug,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal client yaml: %w", err)
	}
	// The webhook URL is a credential.
	if err := os.WriteFile(path, serialized, 0o600); err != nil {
		return fmt.Errorf("write client config: %w", err)
	}
	return nil
}

// ClientConfigPath is <user config dir>/slack-delay-sender/client.yaml,
// unless CLIENT_CONFIG points elsewhere.
func ClientConfigPath() (string, error) {
	if path := utils.GetEnv("CLIENT_CONFIG", ""); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, clientFileName), nil
}

func applyClientYaml(cfg *ClientConfig, fileData yamlClient) {
	if fileData.RelayURL != "" {
		cfg.RelayURL = fileData.RelayURL
	}
	if fileData.RelayTimeoutSeconds > 0 {
		cfg.RelayTimeout = time.Duration(fileData.RelayTimeoutSeconds) * time.Second
	}
	if fileData.SenderLabel != "" {
		cfg.SenderLabel = fileData.SenderLabel
	}
	if fileData.TickIntervalMillis > 0 {
		cfg.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if unit, err := schedule.ParseUnit(fileData.DefaultUnit); err == nil {
		cfg.DefaultUnit = unit
	}
	cfg.WebhookURL = fileData.WebhookURL
	cfg.Debug = fileData.Debug
}

func applyClientEnv(cfg *ClientConfig) {
	cfg.RelayURL = utils.GetEnv("RELAY_URL", cfg.RelayURL)
	cfg.RelayTimeout = utils.GetEnvDuration("RELAY_TIMEOUT", cfg.RelayTimeout)
	cfg.SenderLabel = utils.GetEnv("SENDER_LABEL", cfg.SenderLabel)
	cfg.TickInterval = utils.GetEnvDuration("TICK_INTERVAL", cfg.TickInterval)
	if unit, err := schedule.ParseUnit(utils.GetEnv("DEFAULT_UNIT", "")); err == nil {
		cfg.DefaultUnit = unit
	}
	cfg.WebhookURL = utils.GetEnv("SLACK_WEBHOOK_URL", cfg.WebhookURL)
	cfg.Debug = utils.GetEnvBool("DEBUG", cfg.Debug)
}
