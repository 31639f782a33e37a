package main

import (
	"fmt"
	"log/slog"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/config"
	"github.com/garrettladley/lumi/internal/session"
)

func newClient(cfg config.Config, logger *slog.Logger) *lumi.Client {
	return lumi.New(cfg.DeviceURL,
		lumi.WithSessionID(session.NewID()),
		lumi.WithTimeout(cfg.RequestTimeout),
		lumi.WithLogger(logger),
	)
}

func readConfig() (config.Config, error) {
	cfg, err := config.Read()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
