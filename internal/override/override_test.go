package override

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"reltag/internal/catalog"
	"reltag/internal/classify"
	"reltag/internal/pattern"
)

func builtin(t *testing.T) *catalog.Tables {
	t.Helper()
	tables, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return tables
}

func languagesOf(t *testing.T, tables *catalog.Tables, name string) []string {
	t.Helper()
	c, err := classify.New(tables)
	if err != nil {
		t.Fatalf("classify.New: %v", err)
	}
	return c.Classify(name).Languages
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Token
	}{
		{"empty", "   ", nil},
		{"labeled and unlabeled", "Remux_T1<::>foo bar\n Custom<::>baz", []Token{
			{Position: 0, Label: "Remux_T1", Pattern: "foo"},
			{Position: 1, Pattern: "bar"},
			{Position: 2, Label: "Custom", Pattern: "baz"},
		}},
		{"empty label", "<::>x", []Token{{Position: 0, Pattern: "x"}}},
		{"first delimiter wins", "A<::>b<::>c", []Token{{Position: 0, Label: "A", Pattern: "b<::>c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTokenName(t *testing.T) {
	if got := (Token{Position: 2, Pattern: "x"}).Name(); got != "pattern_3" {
		t.Fatalf("Name() = %q, want pattern_3", got)
	}
	if got := (Token{Position: 2, Label: "Tier", Pattern: "x"}).Name(); got != "Tier" {
		t.Fatalf("Name() = %q, want Tier", got)
	}
}

func TestMergeEmptyReturnsBase(t *testing.T) {
	base := builtin(t)
	got, err := Merge(base, nil, 0)
	if err != nil || got != base {
		t.Fatalf("Merge(nil) = %p, %v; want base", got, err)
	}
}

func TestMergeRejectsTooMany(t *testing.T) {
	base := builtin(t)
	tokens := Parse("a b (invalid")
	got, err := Merge(base, tokens, 2)
	var limit *LimitExceededError
	if !errors.As(err, &limit) {
		t.Fatalf("expected *LimitExceededError, got %v", err)
	}
	if limit.Count != 3 || limit.Max != 2 {
		t.Fatalf("unexpected limit error %+v", limit)
	}
	if got != base {
		t.Fatal("expected base tables on rejection")
	}
}

func TestMergeDefaultLimit(t *testing.T) {
	tokens := Parse(strings.Repeat("x ", DefaultMaxPatterns+1))
	_, err := Merge(builtin(t), tokens, 0)
	var limit *LimitExceededError
	if !errors.As(err, &limit) || limit.Max != DefaultMaxPatterns {
		t.Fatalf("expected default limit error, got %v", err)
	}
}

func TestMergeInvalidPatternIsFailClosed(t *testing.T) {
	base := builtin(t)
	const name = "Movie.2020.English.mkv"
	before := languagesOf(t, base, name)

	tokens := Parse("English<::>anglais Broken<::>(unclosed Custom<::>xyzzy")
	got, err := Merge(base, tokens, 0)
	var invalid *InvalidPatternError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidPatternError, got %v", err)
	}
	if invalid.Position != 1 || invalid.Label != "Broken" || invalid.Pattern != "(unclosed" {
		t.Fatalf("unexpected error detail %+v", invalid)
	}
	var compileErr *pattern.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected wrapped *pattern.CompileError, got %v", err)
	}
	if got != base {
		t.Fatal("expected base tables on rejection")
	}
	if after := languagesOf(t, got, name); !slices.Equal(before, after) {
		t.Fatalf("languages changed after rejected merge: %v -> %v", before, after)
	}
	langs, _ := got.Category(catalog.Languages)
	if _, ok := langs.Position("Custom"); ok {
		t.Fatal("valid entry from rejected batch was applied")
	}
}

func TestMergeRejectsEmptyPattern(t *testing.T) {
	_, err := Merge(builtin(t), Parse("Custom<::>"), 0)
	if !errors.Is(err, pattern.ErrEmptyFragment) {
		t.Fatalf("expected ErrEmptyFragment, got %v", err)
	}
}

func TestMergeRejectsDuplicateLabels(t *testing.T) {
	_, err := Merge(builtin(t), Parse("Tier<::>a Tier<::>b"), 0)
	var dup *DuplicateLabelError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateLabelError, got %v", err)
	}
	if dup.Label != "Tier" || dup.First != 0 || dup.Second != 1 {
		t.Fatalf("unexpected duplicate detail %+v", dup)
	}
}

func TestMergeShadowsBuiltinInPlace(t *testing.T) {
	base := builtin(t)
	baseLangs, _ := base.Category(catalog.Languages)
	wantPos, _ := baseLangs.Position("English")

	merged, err := Merge(base, Parse("English<::>anglais"), 0)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	langs, _ := merged.Category(catalog.Languages)
	if langs.Len() != baseLangs.Len() {
		t.Fatalf("shadowing changed table size: %d -> %d", baseLangs.Len(), langs.Len())
	}
	if pos, _ := langs.Position("English"); pos != wantPos {
		t.Fatalf("English moved from %d to %d", wantPos, pos)
	}
	if got := languagesOf(t, merged, "Movie.Anglais.mkv"); !slices.Equal(got, []string{"English"}) {
		t.Fatalf("languages = %v, want [English]", got)
	}
	if got := languagesOf(t, merged, "Movie.English.mkv"); slices.Contains(got, "English") {
		t.Fatalf("replaced pattern still matched: %v", got)
	}
	if got := languagesOf(t, base, "Movie.English.mkv"); !slices.Contains(got, "English") {
		t.Fatalf("base tables were modified: %v", got)
	}
}

func TestMergeAppendsNewLabels(t *testing.T) {
	base := builtin(t)
	merged, err := Merge(base, Parse("Custom<::>xyzzy plugh"), 5)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	langs, _ := merged.Category(catalog.Languages)
	labels := langs.Labels()
	if n := len(labels); labels[n-2] != "Custom" || labels[n-1] != "pattern_2" {
		t.Fatalf("unexpected tail %v", labels[n-2:])
	}
	if got := languagesOf(t, merged, "Movie.xyzzy.mkv"); !slices.Equal(got, []string{"Custom"}) {
		t.Fatalf("languages = %v, want [Custom]", got)
	}
	if got := languagesOf(t, merged, "Movie.xyzzy.Subs.mkv"); slices.Contains(got, "Custom") {
		t.Fatalf("override ignored subtitle guard: %v", got)
	}
	if got := languagesOf(t, merged, "Movie.plugh.mkv"); !slices.Equal(got, []string{"pattern_2"}) {
		t.Fatalf("languages = %v, want [pattern_2]", got)
	}
}

func TestMergeAcceptsAnchoredTierPattern(t *testing.T) {
	raw := `Web_T1<::>^(?=.*\bWEB[-_.]?(?:DL|RIP)\b)(?=.*\b(?:FLUX|NTb)\b).*`
	merged, err := Merge(builtin(t), Parse(raw), 0)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	got := languagesOf(t, merged, "Show.S01E01.1080p.WEB-DL.DDP5.1.H.264-FLUX.mkv")
	if !slices.Contains(got, "Web_T1") {
		t.Fatalf("languages = %v, want Web_T1", got)
	}
}

func TestMergeRequiresLanguageCategory(t *testing.T) {
	empty, err := catalog.NewTables()
	if err != nil {
		t.Fatalf("NewTables: %v", err)
	}
	if _, err := Merge(empty, Parse("x"), 0); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
