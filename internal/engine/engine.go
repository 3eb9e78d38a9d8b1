package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"reltag/internal/catalog"
	"reltag/internal/classify"
	"reltag/internal/config"
	"reltag/internal/filter"
	"reltag/internal/logging"
	"reltag/internal/override"
	"reltag/internal/pattern"
	"reltag/internal/releasegroup"
)

// Engine bundles the components a classification run needs.
type Engine struct {
	Tables     *catalog.Tables
	Classifier *classify.Classifier
	Filter     *filter.Filter
	// Overrides is the number of accepted sort patterns.
	Overrides int
	// OverrideErr holds the reason the configured sort patterns were
	// rejected, if they were.
	OverrideErr error
}

// Build constructs an Engine from cfg.
func Build(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("engine: config is required")
	}
	log := logging.NewComponentLogger(logger, "engine")
	timeout := cfg.MatchTimeout()

	base, err := catalog.New(pattern.WithMatchTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("build tables: %w", err)
	}

	eng := &Engine{Tables: base}
	tokens := override.Parse(cfg.Parser.SortPatterns)
	if len(tokens) > 0 {
		merged, err := override.Merge(base, tokens, cfg.Parser.MaxSortPatterns, pattern.WithMatchTimeout(timeout))
		if err != nil {
			eng.OverrideErr = err
			log.Warn("sort patterns rejected; using built-in tiers",
				append(rejectionAttrs(err), logging.Int("count", len(tokens)))...)
		} else {
			eng.Tables = merged
			eng.Overrides = len(tokens)
			log.Info("sort patterns applied", logging.Int("count", len(tokens)))
		}
	}

	flt, err := filter.New(cfg.Parser.IncludePattern, cfg.Parser.ExcludePattern, timeout)
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}
	eng.Filter = flt
	if flt.Active() {
		log.Debug("name filter enabled",
			logging.String("include", cfg.Parser.IncludePattern),
			logging.String("exclude", cfg.Parser.ExcludePattern))
	}

	classifier, err := classify.New(eng.Tables,
		classify.WithLogger(logger),
		classify.WithReleaseGroups(releasegroup.New(timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	eng.Classifier = classifier
	return eng, nil
}

func rejectionAttrs(err error) []any {
	attrs := []any{logging.Error(err)}
	var invalid *override.InvalidPatternError
	var dup *override.DuplicateLabelError
	switch {
	case errors.As(err, &invalid):
		attrs = append(attrs, logging.String("label", invalid.Label), logging.Int("position", invalid.Position+1))
	case errors.As(err, &dup):
		attrs = append(attrs, logging.String("label", dup.Label))
	}
	return attrs
}
