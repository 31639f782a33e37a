package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelEnvKey  = "LOG_LEVEL"
	FormatEnvKey = "LOG_FORMAT"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
}

// LevelFromEnv falls back to info when LOG_LEVEL is unset or invalid.
func LevelFromEnv() slog.Level {
	level, _ := ParseLevel(os.Getenv(LevelEnvKey))
	return level
}

func FormatFromEnv() Format {
	if Format(strings.ToLower(os.Getenv(FormatEnvKey))) == FormatText {
		return FormatText
	}
	return FormatJSON
}

func NewLogger(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	return NewLogger(w, LevelFromEnv(), FormatFromEnv())
}
