// Package filter screens release names with the optional include and exclude
// expressions from configuration.
//
// Expressions are raw and case-insensitive; they are not wrapped with the
// boundary rule the category tables use.
package filter
