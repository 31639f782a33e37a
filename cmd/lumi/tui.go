package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/lumi/internal/config"
	"github.com/garrettladley/lumi/internal/palette"
	"github.com/garrettladley/lumi/internal/paths"
	"github.com/garrettladley/lumi/internal/tui"
	"github.com/garrettladley/lumi/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := readConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	pal, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	ctx = xslog.WithLogger(ctx, logger)

	client := newClient(cfg, logger)
	logger.InfoContext(ctx, "starting tui", xslog.DeviceURL(client.BaseURL()), xslog.Version())

	model := tui.New(tui.Deps{
		Ctx:      ctx,
		Cancel:   cancel,
		Logger:   logger,
		Faces:    client.Faces,
		Patterns: client.Patterns,
		Status:   client.Status,
		Palette:  pal,
		Color:    cfg.Color(),
		Timing: tui.Timing{
			PollInterval:  cfg.PollInterval,
			RetryInterval: cfg.RetryInterval,
			ToastDuration: cfg.ToastDuration,
		},
	})

	p := tea.NewProgram(&model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// openLog sends logs to the log file; the terminal belongs to the UI.
func openLog() (*slog.Logger, func(), error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, nil, err
	}
	path, err := paths.LogFile()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return xslog.NewLoggerFromEnv(f), func() { _ = f.Close() }, nil
}

func loadPalette(cfg config.Config) (palette.Palette, error) {
	path := cfg.Palette
	if path == "" {
		p, err := paths.Palette()
		if err != nil {
			return palette.Palette{}, err
		}
		path = p
	}
	return palette.Load(path)
}
