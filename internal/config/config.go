package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment.
type Config struct {
	RecordingPath string `env:"TICKREPLAY_RECORDING_PATH" envDefault:"fuzz-recording.bin"`
	LogLevel      string `env:"TICKREPLAY_LOG_LEVEL"      envDefault:"info"`
	WindowWidth   int32  `env:"TICKREPLAY_WINDOW_WIDTH"   envDefault:"1366"`
	WindowHeight  int32  `env:"TICKREPLAY_WINDOW_HEIGHT"  envDefault:"768"`
	TargetFPS     int32  `env:"TICKREPLAY_TARGET_FPS"     envDefault:"60"`
	WindowTitle   string `env:"TICKREPLAY_WINDOW_TITLE"   envDefault:"tickreplay"`
	// Seed feeds simulations that draw random numbers. Replays are only
	// reproducible under the seed they were recorded with.
	Seed int64 `env:"TICKREPLAY_SEED" envDefault:"1"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config and checks the window geometry.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TargetFPS <= 0 {
		return Config{}, fmt.Errorf("target fps must be positive, got %d", cfg.TargetFPS)
	}
	return cfg, nil
}
