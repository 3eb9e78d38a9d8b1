package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Normalize folds full-width and half-width runes to their canonical width
// and trims surrounding whitespace. Control characters become spaces.
func Normalize(name string) string {
	folded := width.Fold.String(name)
	folded = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, folded)
	return strings.TrimSpace(folded)
}
