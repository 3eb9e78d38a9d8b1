package override

import (
	"fmt"
	"strings"

	"reltag/internal/catalog"
	"reltag/internal/pattern"
)

const (
	// Delimiter separates a label from its pattern inside one token.
	Delimiter = "<::>"
	// DefaultMaxPatterns bounds the number of tokens when no limit is set.
	DefaultMaxPatterns = 30
)

// Token is one parsed override token.
type Token struct {
	// Position is the zero-based index of the token in the raw input.
	Position int
	Label    string
	Pattern  string
}

// Name returns the label, or a positional name for unlabeled tokens.
func (t Token) Name() string {
	if t.Label != "" {
		return t.Label
	}
	return fmt.Sprintf("pattern_%d", t.Position+1)
}

// Parse splits raw into override tokens. It does not compile anything.
func Parse(raw string) []Token {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(fields))
	for i, field := range fields {
		tok := Token{Position: i, Pattern: field}
		if label, expr, found := strings.Cut(field, Delimiter); found {
			tok.Label = strings.TrimSpace(label)
			tok.Pattern = expr
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// LimitExceededError reports a batch larger than the configured maximum.
type LimitExceededError struct {
	Count int
	Max   int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("too many sort patterns: %d exceeds maximum of %d", e.Count, e.Max)
}

// InvalidPatternError reports the override that failed to compile.
type InvalidPatternError struct {
	Position int
	Label    string
	Pattern  string
	Err      error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("sort pattern %d (%s) %q: %v", e.Position+1, e.Label, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// DuplicateLabelError reports a label used by more than one override.
type DuplicateLabelError struct {
	Label  string
	First  int
	Second int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("sort pattern label %q used at positions %d and %d", e.Label, e.First+1, e.Second+1)
}

// Merge returns base with tokens applied to the language category. A max of
// zero or less selects DefaultMaxPatterns. The count is checked before any
// pattern is compiled. On error base is returned untouched alongside it, so
// callers can keep classifying with the built-in tables.
func Merge(base *catalog.Tables, tokens []Token, max int, opts ...pattern.Option) (*catalog.Tables, error) {
	if len(tokens) == 0 {
		return base, nil
	}
	if max <= 0 {
		max = DefaultMaxPatterns
	}
	if len(tokens) > max {
		return base, &LimitExceededError{Count: len(tokens), Max: max}
	}

	languages, ok := base.Category(catalog.Languages)
	if !ok {
		return base, fmt.Errorf("merge sort patterns: %s: %w", catalog.Languages, catalog.ErrUnknownCategory)
	}

	kind, _ := catalog.KindOf(catalog.Languages)
	compiled := make([]catalog.Entry, 0, len(tokens))
	seen := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		name := tok.Name()
		if first, dup := seen[name]; dup {
			return base, &DuplicateLabelError{Label: name, First: first, Second: tok.Position}
		}
		seen[name] = tok.Position
		p, err := pattern.Compile(tok.Pattern, kind, opts...)
		if err != nil {
			return base, &InvalidPatternError{Position: tok.Position, Label: name, Pattern: tok.Pattern, Err: err}
		}
		compiled = append(compiled, catalog.Entry{Label: name, Pattern: p})
	}

	entries := languages.Entries()
	for _, entry := range compiled {
		if pos, shadow := languages.Position(entry.Label); shadow {
			entry.Suppresses = entries[pos].Suppresses
			entries[pos] = entry
			continue
		}
		entries = append(entries, entry)
	}

	merged, err := catalog.NewCategory(catalog.Languages, languages.Cardinality(), entries)
	if err != nil {
		return base, fmt.Errorf("merge sort patterns: %w", err)
	}
	next, err := base.WithCategory(merged)
	if err != nil {
		return base, fmt.Errorf("merge sort patterns: %w", err)
	}
	return next, nil
}
