// Package engine assembles the classification pipeline from configuration.
//
// Build compiles the built-in category tables with the configured match
// timeout, merges the user sort patterns into the language category, and
// constructs the include/exclude filter and the classifier. A rejected
// sort-pattern batch never fails the build: the built-in tables stay in
// effect and the rejection is logged and exposed on the Engine.
package engine
