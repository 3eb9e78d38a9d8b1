// Package logging assembles structured slog loggers used across reltag.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes helpers so code can tag lines with a component and
// the run identifier carried in a context. File outputs rotate through
// lumberjack. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging
