package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Error reports an include or exclude expression that does not compile.
type Error struct {
	Field   string
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s pattern %q: %v", e.Field, e.Pattern, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Filter decides whether a name passes the configured expressions.
type Filter struct {
	include *regexp2.Regexp
	exclude *regexp2.Regexp
}

// New compiles include and exclude. Blank expressions are disabled.
func New(include, exclude string, timeout time.Duration) (*Filter, error) {
	in, err := compile("include", include, timeout)
	if err != nil {
		return nil, err
	}
	ex, err := compile("exclude", exclude, timeout)
	if err != nil {
		return nil, err
	}
	return &Filter{include: in, exclude: ex}, nil
}

// Validate reports whether expr compiles as a filter expression.
func Validate(field, expr string) error {
	_, err := compile(field, expr, 0)
	return err
}

func compile(field, expr string, timeout time.Duration) (*regexp2.Regexp, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		return nil, &Error{Field: field, Pattern: expr, Err: err}
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}

// Active reports whether any expression is configured.
func (f *Filter) Active() bool {
	return f != nil && (f.include != nil || f.exclude != nil)
}

// Allow reports whether name passes. A name must match the include
// expression, when set, and must not match the exclude expression. An
// include match that times out rejects the name; an exclude match that times
// out does not.
func (f *Filter) Allow(name string) bool {
	if f == nil {
		return true
	}
	if f.include != nil {
		ok, err := f.include.MatchString(name)
		if err != nil || !ok {
			return false
		}
	}
	if f.exclude != nil {
		ok, err := f.exclude.MatchString(name)
		if err == nil && ok {
			return false
		}
	}
	return true
}
