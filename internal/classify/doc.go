// Package classify turns release names into structured tags.
//
// A Classifier walks the category tables in evaluation order. SingleBest
// categories record the first matching label and stop; CollectAll categories
// test every label, then drop labels suppressed by a more specific match.
// The release group is extracted separately and never interacts with the
// tables.
//
// Classifiers hold no mutable state and may be shared across goroutines.
// Batch fans a list of names out over a bounded worker pool.
package classify
