package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/tiptime/internal/config"
)

func validateCalcOptions(opts calcOptions) error {
	if strings.TrimSpace(opts.Amount) == "" {
		return fmt.Errorf("bill amount is required (--amount)")
	}
	return nil
}

// resolveConfigPath returns the config file to read and whether the user
// named it explicitly.
func resolveConfigPath(flagValue string) (string, bool, error) {
	if strings.TrimSpace(flagValue) != "" {
		abs, err := filepath.Abs(flagValue)
		if err != nil {
			return "", true, fmt.Errorf("resolve config path: %w", err)
		}
		return abs, true, nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return "", false, fmt.Errorf("resolve default config path: %w", err)
	}
	return path, false, nil
}
