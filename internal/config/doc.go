// Package config loads, normalizes, and validates reltag configuration data.
//
// It supplies defaults, reads TOML files, expands user paths, and honours the
// environment variables older deployments set (MAX_REGEX_SORT_PATTERNS,
// DEFAULT_REGEX_SORT_PATTERNS, DEFAULT_REGEX_INCLUDE_PATTERN,
// DEFAULT_REGEX_EXCLUDE_PATTERN, LOG_FORMAT, LOG_LEVEL).
//
// Validation covers bounds and the include/exclude expressions. Sort patterns
// are only parsed and compiled when the engine merges them, so their errors
// name the offending token and position.
package config
