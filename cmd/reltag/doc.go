// Package main hosts the reltag CLI entrypoint and command graph.
//
// The Cobra command tree loads configuration once, builds the classification
// engine from it, and exposes classification of release names, listing of
// the active category tables, and configuration scaffolding. Classification
// logic lives in the internal packages; commands here only read input and
// render output.
package main
