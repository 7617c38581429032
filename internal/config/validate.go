package config

import (
	"errors"
	"fmt"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.SettingsPath == "" {
		errs = append(errs, ErrSettingsPathEmpty)
	}
	if err := cfg.Redis.Validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.PCO == nil || cfg.PCO.BaseURL == "" {
		errs = append(errs, ErrPCOBaseURLMissing)
	}
	if cfg.OSC == nil || cfg.OSC.MaxAttempts < 1 {
		errs = append(errs, ErrInvalidMaxAttempts)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
