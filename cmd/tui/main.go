package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"slack-delay-sender/src/application/usecases/scheduler"
	"slack-delay-sender/src/domain/schedule"
	"slack-delay-sender/src/infrastructure/config"
	logger "slack-delay-sender/src/infrastructure/logger"
	relayClient "slack-delay-sender/src/infrastructure/repository/relay-client"
	"slack-delay-sender/src/infrastructure/tui"

	"go.uber.org/zap"
)

func main() {
	cfg, cfgErr := config.LoadClientConfig()

	loggerInstance := setupLogger(cfg)
	defer func() {
		_ = loggerInstance.Log.Sync()
	}()

	if cfgErr != nil {
		// Defaults plus env are still usable.
		loggerInstance.Warn("Client config not loaded", zap.Error(cfgErr))
	}
	loggerInstance.Info("Starting slack-delay-sender client",
		zap.String("relayURL", cfg.RelayURL),
		zap.Duration("tickInterval", cfg.TickInterval))

	dispatcher := relayClient.NewClient(cfg.RelayURL, cfg.RelayTimeout, loggerInstance)
	sched := scheduler.New(dispatcher, scheduler.Config{
		TickInterval: cfg.TickInterval,
		SenderLabel:  cfg.SenderLabel,
	}, loggerInstance)
	defer sched.Close()
	sched.SetUnit(cfg.DefaultUnit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, sched, "Slack Delay Sender", cfg.WebhookURL, saveDefaults(cfg, loggerInstance)); err != nil && ctx.Err() == nil {
		loggerInstance.Error("Terminal UI stopped", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		sched.Close()
		os.Exit(1)
	}
}

// saveDefaults writes the webhook URL and unit back to the client config file.
func saveDefaults(cfg config.ClientConfig, loggerInstance *logger.Logger) tui.SaveFunc {
	return func(webhookURL string, unit schedule.Unit) error {
		path, err := config.ClientConfigPath()
		if err != nil {
			return err
		}
		cfg.WebhookURL = webhookURL
		cfg.DefaultUnit = unit
		if err := config.SaveClientConfig(path, cfg); err != nil {
			loggerInstance.Error("Saving client defaults failed", zap.Error(err))
			return err
		}
		loggerInstance.Info("Client defaults saved", zap.String("path", path), zap.String("unit", string(unit)))
		return nil
	}
}

// setupLogger logs to a file next to the config when debugging; the UI owns the terminal otherwise.
func setupLogger(cfg config.ClientConfig) *logger.Logger {
	if !cfg.Debug {
		return logger.NewNopLogger()
	}
	path := "slack-delay-sender.log"
	if cfgPath, err := config.ClientConfigPath(); err == nil {
		path = filepath.Join(filepath.Dir(cfgPath), "client.log")
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	l, err := logger.NewFileLogger(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log disabled:", err)
		return logger.NewNopLogger()
	}
	return l
}
