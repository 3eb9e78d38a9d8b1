// Package pattern compiles release-name fragments into boundary-aware,
// case-insensitive matchers.
//
// Every fragment is wrapped so a match can only start at the beginning of the
// input or after a separator (whitespace, '[', '(', '_', '-', '.', ',') and can
// only end before whitespace, ')', ']', '_', '.', '-', ',' or the end of the
// input. Language fragments additionally refuse matches that are directly
// followed by a subtitle marker ("Japanese.Subs" is a subtitle track, not
// spoken audio).
//
// Patterns use github.com/dlclark/regexp2 because the boundary rule and most
// curated fragments rely on lookbehind and lookahead, which the standard
// library engine does not support. Compiled patterns are immutable and safe
// for concurrent use.
package pattern
