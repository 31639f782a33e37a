package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/palette"
)

type Deps struct {
	Ctx      context.Context
	Cancel   context.CancelFunc
	Logger   *slog.Logger
	Faces    lumi.FaceService
	Patterns lumi.PatternService
	Status   lumi.StatusService
	Palette  palette.Palette
	Color    color.RGB
	Timing   Timing
}

type Timing struct {
	PollInterval  time.Duration
	RetryInterval time.Duration
	ToastDuration time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		PollInterval:  10 * time.Second,
		RetryInterval: 5 * time.Second,
		ToastDuration: 3 * time.Second,
	}
}
