// Package releasegroup extracts the uploading release group from a release
// name.
//
// The group is the trailing "-GROUP" token, optionally followed by a
// bracketed tag such as "[rarbg]" and a file extension. Season and episode
// markers, bare numbers and bracket-only remainders never count as a group.
package releasegroup
