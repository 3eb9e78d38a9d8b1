package releasegroup

import (
	"time"

	"github.com/dlclark/regexp2"
)

const expr = `- ?(?!\d+$|S\d+|\d+x|ep?\d+|[^\[]+\]$)([^\-. \[]+[^\-. \[)\]\d][^\-. \[)\]]*)(?:\[[\w.\-]+\])?(?=\.\w{2,4}$|$)`

// Extractor finds release groups. It is safe for concurrent use.
type Extractor struct {
	re *regexp2.Regexp
}

// New returns an Extractor. A positive timeout bounds each match.
func New(timeout time.Duration) *Extractor {
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase)
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Extractor{re: re}
}

// Extract returns the release group of name. ok is false when name carries
// no plausible group or the match timed out.
func (e *Extractor) Extract(name string) (group string, ok bool) {
	m, err := e.re.FindStringMatch(name)
	if err != nil || m == nil {
		return "", false
	}
	g := m.GroupByNumber(1)
	if g == nil || g.Length == 0 {
		return "", false
	}
	return g.String(), true
}
