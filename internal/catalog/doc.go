// Package catalog holds the ordered category tables used to classify release
// names.
//
// A Category is an ordered list of (label, pattern) entries with a
// cardinality policy: SingleBest categories stop at the first matching entry,
// CollectAll categories report every match. Entry order is precedence.
// Entries may name labels they suppress; the classifier drops a suppressed
// label whenever the suppressing one matched, which keeps overlapping tags
// such as HDR, HDR10 and HDR10+ mutually exclusive.
//
// Tables values are immutable. New compiles the built-in data; WithCategory
// returns a modified copy, so tests and override merges never touch a shared
// instance.
package catalog
