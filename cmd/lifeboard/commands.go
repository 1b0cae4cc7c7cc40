package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terraincognita07/lifeboard/internal/cli"
	"github.com/terraincognita07/lifeboard/internal/config"
	"github.com/terraincognita07/lifeboard/internal/db"
	"github.com/terraincognita07/lifeboard/internal/logging"
	"github.com/terraincognita07/lifeboard/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct{}

func (cmd *ServeCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog.Close()

	location, ok := cfg.Location()
	if !ok {
		logger.Warn("invalid TZ, falling back to UTC", "tz", cfg.Timezone)
	}
	time.Local = location
	if cfg.SecretKeyGenerated {
		logger.Warn("SECRET_KEY is not set, using a temporary key; sessions end when the process exits")
	}

	database, err := db.OpenSQLite(cfg.DBPath, logging.Gorm(logger))
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	var registry *metrics.Metrics
	if cfg.MetricsEnabled {
		registry = metrics.New()
	}

	app, err := newApp(cfg, database, location, logger, registry)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "err", err)
		}
	}()

	logger.Info("lifeboard listening", "addr", cfg.ListenAddress(), "db", cfg.DBPath, "tz", location.String())
	if err := app.Listen(cfg.ListenAddress()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

type ResetPasswordCmd struct {
	Username string `help:"Account to reset." required:""`
	Prompt   bool   `help:"Ask for the new password instead of issuing a temporary one."`
}

func (cmd *ResetPasswordCmd) Run(globals *Globals) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}
	return cli.RunResetPasswordCommand(cli.ResetPasswordOptions{
		DBPath:   cfg.DBPath,
		Username: cmd.Username,
		Prompt:   cmd.Prompt,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	})
}

func loadConfig(globals *Globals) (config.Config, error) {
	if globals.DBPath != "" {
		if err := os.Setenv("DB_PATH", globals.DBPath); err != nil {
			return config.Config{}, fmt.Errorf("apply --db-path: %w", err)
		}
	}
	cfg, err := config.Load(globals.EnvFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
