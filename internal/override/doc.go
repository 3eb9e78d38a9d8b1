// Package override merges user-supplied sort patterns into the language
// category.
//
// Overrides arrive as whitespace-separated "label<::>pattern" tokens. A token
// without the delimiter is unlabeled and is named after its 1-based position
// ("pattern_3"). Merge is all or nothing: any rejected token, or a batch
// larger than the configured maximum, leaves the base tables in effect.
//
// An override whose label matches a built-in entry replaces that entry's
// pattern in place, so the tier keeps its precedence slot. New labels are
// appended after the built-ins.
package override
