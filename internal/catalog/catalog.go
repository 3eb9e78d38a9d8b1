package catalog

import (
	"errors"
	"fmt"
	"strings"

	"reltag/internal/pattern"
)

// Cardinality controls how many labels a category reports.
type Cardinality int

const (
	// SingleBest reports the first matching label in table order.
	SingleBest Cardinality = iota
	// CollectAll reports every matching label in table order.
	CollectAll
)

func (c Cardinality) String() string {
	switch c {
	case SingleBest:
		return "single"
	case CollectAll:
		return "multi"
	default:
		return fmt.Sprintf("cardinality(%d)", int(c))
	}
}

// Name identifies a category.
type Name string

// Built-in categories.
const (
	Resolution Name = "resolution"
	Quality    Name = "quality"
	VisualTags Name = "visual_tags"
	AudioTags  Name = "audio_tags"
	Encodes    Name = "encodes"
	Languages  Name = "languages"
)

var (
	ErrEmptyLabel         = errors.New("empty label")
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrMissingPattern     = errors.New("missing pattern")
	ErrUnknownSuppression = errors.New("suppresses unknown label")
	ErrUnknownCategory    = errors.New("unknown category")
)

// Entry is one labelled pattern in a category.
type Entry struct {
	Label   string
	Pattern *pattern.Pattern
	// Suppresses lists labels dropped from the result when this entry matches.
	Suppresses []string
}

// Category is an ordered, immutable list of entries.
type Category struct {
	name        Name
	cardinality Cardinality
	entries     []Entry
	index       map[string]int
}

// NewCategory validates entries and builds a category. Labels must be unique
// and every suppression target must be a label of the same category.
func NewCategory(name Name, cardinality Cardinality, entries []Entry) (*Category, error) {
	c := &Category{
		name:        name,
		cardinality: cardinality,
		entries:     make([]Entry, len(entries)),
		index:       make(map[string]int, len(entries)),
	}
	for i, entry := range entries {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			return nil, fmt.Errorf("category %s entry %d: %w", name, i, ErrEmptyLabel)
		}
		if entry.Pattern == nil {
			return nil, fmt.Errorf("category %s label %q: %w", name, label, ErrMissingPattern)
		}
		if _, ok := c.index[label]; ok {
			return nil, fmt.Errorf("category %s label %q: %w", name, label, ErrDuplicateLabel)
		}
		c.index[label] = i
		c.entries[i] = Entry{
			Label:      label,
			Pattern:    entry.Pattern,
			Suppresses: append([]string(nil), entry.Suppresses...),
		}
	}
	for _, entry := range c.entries {
		for _, target := range entry.Suppresses {
			if _, ok := c.index[target]; !ok || target == entry.Label {
				return nil, fmt.Errorf("category %s label %q suppresses %q: %w", name, entry.Label, target, ErrUnknownSuppression)
			}
		}
	}
	return c, nil
}

// Name returns the category name.
func (c *Category) Name() Name { return c.name }

// Cardinality returns the category's cardinality policy.
func (c *Category) Cardinality() Cardinality { return c.cardinality }

// Len returns the number of entries.
func (c *Category) Len() int { return len(c.entries) }

// Entry returns the entry at position i.
func (c *Category) Entry(i int) Entry { return c.entries[i] }

// Entries returns a copy of the entries in precedence order.
func (c *Category) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Labels returns the labels in precedence order.
func (c *Category) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, entry := range c.entries {
		labels[i] = entry.Label
	}
	return labels
}

// Position returns the zero-based precedence position of label.
func (c *Category) Position(label string) (int, bool) {
	i, ok := c.index[label]
	return i, ok
}

// Tables is the immutable set of categories in evaluation order.
type Tables struct {
	categories []*Category
}

// NewTables groups categories. Names must be unique.
func NewTables(categories ...*Category) (*Tables, error) {
	seen := make(map[Name]struct{}, len(categories))
	for _, c := range categories {
		if c == nil {
			return nil, errors.New("nil category")
		}
		if _, ok := seen[c.name]; ok {
			return nil, fmt.Errorf("category %s registered twice", c.name)
		}
		seen[c.name] = struct{}{}
	}
	return &Tables{categories: append([]*Category(nil), categories...)}, nil
}

// Category returns the category named name.
func (t *Tables) Category(name Name) (*Category, bool) {
	for _, c := range t.categories {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Categories returns the categories in evaluation order.
func (t *Tables) Categories() []*Category {
	return append([]*Category(nil), t.categories...)
}

// WithCategory returns a copy of t with the same-named category replaced.
// The receiver is left untouched.
func (t *Tables) WithCategory(c *Category) (*Tables, error) {
	if c == nil {
		return nil, errors.New("nil category")
	}
	next := make([]*Category, len(t.categories))
	copy(next, t.categories)
	for i, existing := range next {
		if existing.name == c.name {
			next[i] = c
			return &Tables{categories: next}, nil
		}
	}
	return nil, fmt.Errorf("category %s: %w", c.name, ErrUnknownCategory)
}
