// Package config loads runtime settings from a YAML file, a .env file and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-countdown/parameter/visual"
	"github.com/lixenwraith/vi-countdown/schedule"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "COUNTDOWN_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Color modes accepted by ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Theme holds widget colors as hex strings
type Theme struct {
	Ring       string `yaml:"ring" env:"RING"`
	Revealed   string `yaml:"revealed" env:"REVEALED"`
	Highlight  string `yaml:"highlight" env:"HIGHLIGHT"`
	Marker     string `yaml:"marker" env:"MARKER"`
	Stroke     string `yaml:"stroke" env:"STROKE"`
	Text       string `yaml:"text" env:"TEXT"`
	Background string `yaml:"background" env:"BACKGROUND"`
}

// Config is the merged runtime configuration
type Config struct {
	Debug     bool   `yaml:"debug" env:"DEBUG"`
	LogDir    string `yaml:"log_dir" env:"LOG_DIR"`
	ColorMode string `yaml:"color_mode" env:"COLOR_MODE"`
	Sound     bool   `yaml:"sound" env:"SOUND"`

	// Meeting is a cron expression for the meeting start, the countdown ends on it
	Meeting string `yaml:"meeting" env:"MEETING"`

	Theme Theme `yaml:"theme" envPrefix:"THEME_"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogDir:    "logs",
		ColorMode: ColorAuto,
		Sound:     true,
		Theme: Theme{
			Ring:       visual.HexRing,
			Revealed:   visual.HexRevealed,
			Highlight:  visual.HexHighlight,
			Marker:     visual.HexMarker,
			Stroke:     visual.HexStroke,
			Text:       visual.HexText,
			Background: visual.HexBackground,
		},
	}
}

// Load merges defaults, the YAML file at path and the environment, then validates
// An empty path or a missing file leaves the defaults in place
// Variables already in the environment take precedence over the .env file
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile)
}

func load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	vars, err := environment(envFile)
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environment returns the process environment layered over the .env file
func environment(envFile string) (map[string]string, error) {
	vars := env.ToMap(os.Environ())
	if envFile == "" {
		return vars, nil
	}

	dotenv, err := godotenv.Read(envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return vars, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	for k, v := range dotenv {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// Validate checks the color mode, every theme color and the meeting expression
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("invalid color_mode %q: want %s, %s or %s", c.ColorMode, ColorAuto, ColorTrueColor, Color256)
	}

	colors := []struct {
		name, hex string
	}{
		{"ring", c.Theme.Ring},
		{"revealed", c.Theme.Revealed},
		{"highlight", c.Theme.Highlight},
		{"marker", c.Theme.Marker},
		{"stroke", c.Theme.Stroke},
		{"text", c.Theme.Text},
		{"background", c.Theme.Background},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.hex); err != nil {
			return fmt.Errorf("invalid theme.%s %q: %w", col.name, col.hex, err)
		}
	}

	if c.Meeting != "" {
		if err := schedule.Validate(c.Meeting); err != nil {
			return fmt.Errorf("invalid meeting: %w", err)
		}
	}
	return nil
}
