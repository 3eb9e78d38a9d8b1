package pattern

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Kind selects how a fragment is wrapped before compilation.
type Kind int

const (
	// KindGeneric applies the boundary rule only.
	KindGeneric Kind = iota
	// KindLanguage applies the boundary rule and the subtitle guard.
	KindLanguage
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindLanguage:
		return "language"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	boundaryPrefix = `(?<![^\s\[(_\-.,])(?:`
	boundarySuffix = `)(?=[\s\)\]_.\-,]|$)`
	subtitleGuard  = `(?![ .\-_]?sub(?:title)?s?)`
)

// ErrEmptyFragment is reported when a blank fragment is compiled.
var ErrEmptyFragment = errors.New("empty fragment")

// CompileError reports a fragment that is not a well-formed expression.
type CompileError struct {
	Fragment string
	Kind     Kind
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s pattern %q: %v", e.Kind, e.Fragment, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Option customizes compilation.
type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithMatchTimeout bounds the time a single match may take. Zero or negative
// values leave matching unbounded.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Pattern is a compiled fragment.
type Pattern struct {
	fragment string
	kind     Kind
	expr     string
	re       *regexp2.Regexp
}

// Compile wraps fragment according to kind and compiles it.
func Compile(fragment string, kind Kind, opts ...Option) (*Pattern, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, &CompileError{Fragment: fragment, Kind: kind, Err: ErrEmptyFragment}
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	expr, err := wrap(fragment, kind)
	if err != nil {
		return nil, &CompileError{Fragment: fragment, Kind: kind, Err: err}
	}

	// The fragment must compile on its own so it cannot close the boundary
	// group early (e.g. "a)|(b").
	if _, err := regexp2.Compile(fragment, regexp2.IgnoreCase); err != nil {
		return nil, &CompileError{Fragment: fragment, Kind: kind, Err: err}
	}
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		return nil, &CompileError{Fragment: fragment, Kind: kind, Err: err}
	}
	if cfg.timeout > 0 {
		re.MatchTimeout = cfg.timeout
	}
	return &Pattern{fragment: fragment, kind: kind, expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(fragment string, kind Kind, opts ...Option) *Pattern {
	p, err := Compile(fragment, kind, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func wrap(fragment string, kind Kind) (string, error) {
	switch kind {
	case KindGeneric:
		return boundaryPrefix + fragment + boundarySuffix, nil
	case KindLanguage:
		return boundaryPrefix + "(?:" + fragment + ")" + subtitleGuard + boundarySuffix, nil
	default:
		return "", fmt.Errorf("unknown kind %d", int(kind))
	}
}

// MatchString reports whether the pattern matches s. A non-nil error means
// the match timed out.
func (p *Pattern) MatchString(s string) (bool, error) {
	return p.re.MatchString(s)
}

// Match reports whether the pattern matches s, treating a timeout as no match.
func (p *Pattern) Match(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// Fragment returns the fragment as authored.
func (p *Pattern) Fragment() string { return p.fragment }

// Kind returns the wrapping applied to the fragment.
func (p *Pattern) Kind() Kind { return p.kind }

// String returns the full compiled expression.
func (p *Pattern) String() string { return p.expr }
