package config

import (
	"errors"
	"fmt"

	"reltag/internal/filter"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateParser(); err != nil {
		return err
	}
	if err := c.validateClassify(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateParser() error {
	if c.Parser.MaxSortPatterns <= 0 {
		return errors.New("parser.max_sort_patterns must be positive")
	}
	if c.Parser.MatchTimeoutMillis < 0 {
		return errors.New("parser.match_timeout_ms must be >= 0")
	}
	if err := filter.Validate("include", c.Parser.IncludePattern); err != nil {
		return fmt.Errorf("parser.include_pattern: %w", err)
	}
	if err := filter.Validate("exclude", c.Parser.ExcludePattern); err != nil {
		return fmt.Errorf("parser.exclude_pattern: %w", err)
	}
	return nil
}

func (c *Config) validateClassify() error {
	if c.Classify.Workers <= 0 {
		return errors.New("classify.workers must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB <= 0 {
		return errors.New("logging.max_size_mb must be positive")
	}
	if c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_backups must be >= 0")
	}
	return nil
}
