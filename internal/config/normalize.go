package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeParser(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeParser() error {
	if value, ok := os.LookupEnv("MAX_REGEX_SORT_PATTERNS"); ok && strings.TrimSpace(value) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("MAX_REGEX_SORT_PATTERNS: %q is not an integer", value)
		}
		c.Parser.MaxSortPatterns = n
	}
	c.Parser.SortPatterns = strings.TrimSpace(c.Parser.SortPatterns)
	if c.Parser.SortPatterns == "" {
		if value, ok := os.LookupEnv("DEFAULT_REGEX_SORT_PATTERNS"); ok {
			c.Parser.SortPatterns = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Parser.IncludePattern) == "" {
		if value, ok := os.LookupEnv("DEFAULT_REGEX_INCLUDE_PATTERN"); ok {
			c.Parser.IncludePattern = value
		}
	}
	if strings.TrimSpace(c.Parser.ExcludePattern) == "" {
		if value, ok := os.LookupEnv("DEFAULT_REGEX_EXCLUDE_PATTERN"); ok {
			c.Parser.ExcludePattern = value
		}
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		if value, ok := os.LookupEnv("LOG_FORMAT"); ok {
			c.Logging.Format = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("LOG_LEVEL"); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = ExpandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
