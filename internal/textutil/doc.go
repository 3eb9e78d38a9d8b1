// Package textutil normalizes release names before they are matched.
//
// Names scraped from indexers often carry full-width forms ("１０８０ｐ") or
// stray control characters. Normalize folds them so the category patterns
// only ever see canonical ASCII-width text. The display helpers render empty
// labels for tables.
package textutil
