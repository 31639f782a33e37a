package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/lumi/internal/color"
)

type Config struct {
	DeviceURL      string        `env:"LUMI_DEVICE_URL" envDefault:"http://lumi.local"`
	DefaultColor   string        `env:"LUMI_DEFAULT_COLOR" envDefault:"#ffff00"`
	RequestTimeout time.Duration `env:"LUMI_REQUEST_TIMEOUT" envDefault:"5s"`
	PollInterval   time.Duration `env:"LUMI_POLL_INTERVAL" envDefault:"10s"`
	RetryInterval  time.Duration `env:"LUMI_RETRY_INTERVAL" envDefault:"5s"`
	ToastDuration  time.Duration `env:"LUMI_TOAST_DURATION" envDefault:"3s"`
	// Palette overrides the palette file location.
	Palette string `env:"LUMI_PALETTE"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if _, err := color.ParseHex(cfg.DefaultColor); err != nil {
		return Config{}, fmt.Errorf("LUMI_DEFAULT_COLOR: %w", err)
	}
	return cfg, nil
}

// Color is the parsed session colour. Read has already validated it.
func (c Config) Color() color.RGB {
	rgb, err := color.ParseHex(c.DefaultColor)
	if err != nil {
		return color.Default
	}
	return rgb
}

// SimulatorConfig configures cmd/lumisim.
type SimulatorConfig struct {
	Env       Environment `env:"ENV" envDefault:"development"`
	Port      string      `env:"PORT" envDefault:"8080"`
	Device    string      `env:"SIM_DEVICE_NAME" envDefault:"Lumi"`
	Backend   string      `env:"SIM_BACKEND" envDefault:"memory"`
	RedisURL  string      `env:"REDIS_URL"`
	DBPath    string      `env:"SIM_DB_PATH"`
	RateLimit float64     `env:"SIM_RATE_LIMIT" envDefault:"50"`
	RateBurst int         `env:"SIM_RATE_BURST" envDefault:"100"`
}

func ReadSimulator() (SimulatorConfig, error) {
	return env.ParseAs[SimulatorConfig]()
}
