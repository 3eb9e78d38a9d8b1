package textutil

import "strings"

// Placeholder is shown in place of an empty label.
const Placeholder = "-"

// OrPlaceholder returns value, or Placeholder when value is blank.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// JoinLabels joins labels with ", ", or returns Placeholder when there are none.
func JoinLabels(labels []string) string {
	if len(labels) == 0 {
		return Placeholder
	}
	return strings.Join(labels, ", ")
}
