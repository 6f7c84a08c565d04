package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/weather-fireworks/internal/fireworks"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// DefaultPath is read when neither -config nor FIREWORKS_CONFIG is set.
	DefaultPath = "config/fireworks.toml"
	EnvPath     = "FIREWORKS_CONFIG"
)

type Config struct {
	Window    WindowConfig     `toml:"window"`
	Fireworks fireworks.Config `toml:"fireworks"`
	Audio     AudioConfig      `toml:"audio"`
	Logging   LoggingConfig    `toml:"logging"`
	Notify    NotifyConfig     `toml:"notify"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
	HUD    bool   `toml:"hud"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type NotifyConfig struct {
	Every int `toml:"every"` // desktop notification every N bursts, 0 disables
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Fireworks - Space: pause, B: burst, R: reset, O: open config, Esc/Q: quit",
			Width:  WindowWidth,
			Height: WindowHeight,
			TPS:    60,
			HUD:    true,
		},
		Fireworks: fireworks.DefaultConfig(),
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load overlays the TOML file at path on Default. A missing file at
// DefaultPath is not an error; any other missing path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the config path: flag value, then environment, then default.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) Validate() error {
	if err := c.Fireworks.Validate(); err != nil {
		return fmt.Errorf("fireworks: %w", err)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window: tps must be positive, got %d", c.Window.TPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio: volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio: sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Notify.Every < 0 {
		return fmt.Errorf("notify: every must not be negative, got %d", c.Notify.Every)
	}
	return nil
}
