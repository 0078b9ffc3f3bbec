package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/tiptime/internal/tip"
)

// Config represents the tiptime configuration document.
type Config struct {
	Locale     string  `yaml:"locale,omitempty" validate:"omitempty,bcp47_language_tag"`
	Currency   string  `yaml:"currency,omitempty" validate:"omitempty,iso4217"`
	TipPercent float64 `yaml:"tip_percent" validate:"gte=0"`
	RoundUp    bool    `yaml:"round_up,omitempty"`
	Log        Log     `yaml:"log,omitempty"`
}

// Log controls diagnostic output.
type Log struct {
	Level         string `yaml:"level" validate:"required,log_level"`
	HumanReadable bool   `yaml:"human_readable"`
	File          string `yaml:"file,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists. Values
// read from a file are layered on top of it.
func DefaultConfig() *Config {
	return &Config{
		TipPercent: tip.DefaultTipPercent,
		Log: Log{
			Level:         "warn",
			HumanReadable: true,
		},
	}
}

// DefaultPath returns ~/.tiptime/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".tiptime", "config.yaml"), nil
}
