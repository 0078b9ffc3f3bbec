package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/tiptime/internal/config"
	"github.com/alexisbeaulieu97/tiptime/internal/logger"
	"github.com/alexisbeaulieu97/tiptime/internal/money"
	"github.com/alexisbeaulieu97/tiptime/internal/tip"
	tiperrors "github.com/alexisbeaulieu97/tiptime/pkg/errors"
)

// AppContext bundles the services a command needs. Config is loaded on first
// use so commands like version never touch the filesystem.
type AppContext struct {
	flags  *rootFlags
	getenv func(string) string

	Config *config.Config
}

func newAppContext(flags *rootFlags) *AppContext {
	return &AppContext{flags: flags, getenv: os.Getenv}
}

// LoadConfig reads the config file named by --config, or the default file
// when present.
func (a *AppContext) LoadConfig() (*config.Config, error) {
	if a.Config != nil {
		return a.Config, nil
	}

	path, explicit, err := resolveConfigPath(a.flags.configPath)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if explicit {
		cfg, err = config.ParseConfig(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a.Config = cfg
	return cfg, nil
}

// NewLogger builds a logger honouring the config and --verbose.
func (a *AppContext) NewLogger(w io.Writer) (*logger.Logger, error) {
	cfg, err := a.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if a.flags.verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.HumanReadable, Writer: w})
}

// Calculator builds a tip calculator. Non-empty arguments take precedence
// over the config file, which takes precedence over the environment.
func (a *AppContext) Calculator(locale, currencyCode string) (*tip.Calculator, error) {
	cfg, err := a.LoadConfig()
	if err != nil {
		return nil, err
	}

	tag := money.DetectLocale(a.getenv)
	if name := firstNonEmpty(locale, cfg.Locale); name != "" {
		tag, err = language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			return nil, tiperrors.NewValidationError("locale", fmt.Sprintf("%q is not a BCP 47 language tag", name), err)
		}
	}

	formatter, err := money.NewFormatter(tag, money.WithCurrency(firstNonEmpty(currencyCode, cfg.Currency)))
	if err != nil {
		return nil, err
	}

	return tip.NewCalculator(formatter), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
