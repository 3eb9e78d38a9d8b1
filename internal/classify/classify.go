package classify

import (
	"errors"
	"log/slog"

	"reltag/internal/catalog"
	"reltag/internal/logging"
	"reltag/internal/releasegroup"
	"reltag/internal/textutil"
)

// Result is the classification of one release name. Empty fields mean no
// label matched.
type Result struct {
	Resolution   string   `json:"resolution,omitempty"`
	Quality      string   `json:"quality,omitempty"`
	VisualTags   []string `json:"visual_tags,omitempty"`
	AudioTags    []string `json:"audio_tags,omitempty"`
	Encodes      []string `json:"encodes,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	ReleaseGroup string   `json:"release_group,omitempty"`
}

// Labels returns the labels recorded for the named category.
func (r Result) Labels(name catalog.Name) []string {
	switch name {
	case catalog.Resolution:
		return single(r.Resolution)
	case catalog.Quality:
		return single(r.Quality)
	case catalog.VisualTags:
		return r.VisualTags
	case catalog.AudioTags:
		return r.AudioTags
	case catalog.Encodes:
		return r.Encodes
	case catalog.Languages:
		return r.Languages
	default:
		return nil
	}
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return r.Resolution == "" && r.Quality == "" && len(r.VisualTags) == 0 &&
		len(r.AudioTags) == 0 && len(r.Encodes) == 0 && len(r.Languages) == 0 &&
		r.ReleaseGroup == ""
}

func single(label string) []string {
	if label == "" {
		return nil
	}
	return []string{label}
}

func (r *Result) set(name catalog.Name, labels []string) {
	if len(labels) == 0 {
		return
	}
	switch name {
	case catalog.Resolution:
		r.Resolution = labels[0]
	case catalog.Quality:
		r.Quality = labels[0]
	case catalog.VisualTags:
		r.VisualTags = labels
	case catalog.AudioTags:
		r.AudioTags = labels
	case catalog.Encodes:
		r.Encodes = labels
	case catalog.Languages:
		r.Languages = labels
	}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for match diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logging.NewComponentLogger(logger, "classify")
	}
}

// WithReleaseGroups sets the release-group extractor.
func WithReleaseGroups(extractor *releasegroup.Extractor) Option {
	return func(c *Classifier) {
		if extractor != nil {
			c.groups = extractor
		}
	}
}

// Classifier applies category tables to release names.
type Classifier struct {
	tables *catalog.Tables
	groups *releasegroup.Extractor
	logger *slog.Logger
}

// New returns a Classifier over tables.
func New(tables *catalog.Tables, opts ...Option) (*Classifier, error) {
	if tables == nil {
		return nil, errors.New("classify: tables are required")
	}
	c := &Classifier{
		tables: tables,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.groups == nil {
		c.groups = releasegroup.New(0)
	}
	return c, nil
}

// Tables returns the tables the classifier was built with.
func (c *Classifier) Tables() *catalog.Tables { return c.tables }

// Classify returns the tags found in name. It never fails; a name nothing
// matches yields an empty Result.
func (c *Classifier) Classify(name string) Result {
	var result Result
	input := textutil.Normalize(name)
	if input == "" {
		return result
	}
	for _, category := range c.tables.Categories() {
		result.set(category.Name(), c.match(category, input))
	}
	if group, ok := c.groups.Extract(input); ok {
		result.ReleaseGroup = group
	}
	return result
}

func (c *Classifier) match(category *catalog.Category, input string) []string {
	var matched []catalog.Entry
	for i := 0; i < category.Len(); i++ {
		entry := category.Entry(i)
		ok, err := entry.Pattern.MatchString(input)
		if err != nil {
			c.logger.Debug("pattern match timed out",
				logging.String("category", string(category.Name())),
				logging.String("label", entry.Label),
				logging.Error(err),
			)
			continue
		}
		if !ok {
			continue
		}
		matched = append(matched, entry)
		if category.Cardinality() == catalog.SingleBest {
			break
		}
	}
	if len(matched) == 0 {
		return nil
	}

	suppressed := make(map[string]struct{})
	for _, entry := range matched {
		for _, label := range entry.Suppresses {
			suppressed[label] = struct{}{}
		}
	}
	labels := make([]string, 0, len(matched))
	for _, entry := range matched {
		if _, drop := suppressed[entry.Label]; drop {
			continue
		}
		labels = append(labels, entry.Label)
	}
	return labels
}

// Rank returns the highest-precedence language label in r with its
// zero-based position in the language table. Sorters use the position as a
// tier key.
func (c *Classifier) Rank(r Result) (label string, position int, ok bool) {
	languages, found := c.tables.Category(catalog.Languages)
	if !found {
		return "", 0, false
	}
	best := -1
	for _, l := range r.Languages {
		pos, known := languages.Position(l)
		if !known {
			continue
		}
		if best < 0 || pos < best {
			best = pos
			label = l
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return label, best, true
}
