package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yndnr/cribcrack/internal/cli/output"
	"github.com/yndnr/cribcrack/internal/telemetry/logger"
	"github.com/yndnr/cribcrack/pkg/alphabet"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifySearch(&cfg.Search); err != nil {
		return err
	}
	if err := verifyVigenere(&cfg.Vigenere); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	if !slices.Contains(output.Formats(), cfg.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", output.Formats(), cfg.Output.Format)
	}
	return nil
}

func verifySearch(cfg *SearchSection) error {
	if cfg.Workers < 1 {
		return errors.New("search.workers must be at least 1")
	}
	if cfg.BatchSize < 1 {
		return errors.New("search.batch_size must be at least 1")
	}
	if cfg.Budget < 0 {
		return errors.New("search.budget must not be negative")
	}
	if cfg.Timeout < 0 {
		return errors.New("search.timeout must not be negative")
	}
	return nil
}

func verifyVigenere(cfg *VigenereSection) error {
	if cfg.KeyLength < 1 {
		return errors.New("vigenere.key_length must be at least 1")
	}
	if _, err := alphabet.ParsePolicy(cfg.Policy); err != nil {
		return fmt.Errorf("vigenere.policy: %w", err)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Level)
	}
	switch cfg.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.Format)
	}
	switch cfg.Backend {
	case logger.BackendSlog, logger.BackendZap:
	default:
		return fmt.Errorf("log.backend must be slog or zap, got %q", cfg.Backend)
	}
	return nil
}
