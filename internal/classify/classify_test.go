package classify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"reltag/internal/catalog"
	"reltag/internal/pattern"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	tables, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	c, err := New(tables)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestClassifyFullNames(t *testing.T) {
	c := newClassifier(t)
	tests := []struct {
		name string
		want Result
	}{
		{
			name: "Movie.2020.2160p.UHD.BluRay.REMUX.HDR10+.DV.TrueHD.Atmos.7.1.HEVC-FraMeSToR.mkv",
			want: Result{
				Resolution:   "2160p",
				Quality:      "BluRay REMUX",
				VisualTags:   []string{"HDR10+", "DV"},
				AudioTags:    []string{"Atmos", "TrueHD", "7.1"},
				Encodes:      []string{"HEVC"},
				Languages:    []string{"Remux_T1"},
				ReleaseGroup: "FraMeSToR",
			},
		},
		{
			name: "Show.S01E02.1080p.WEB-DL.DDP5.1.H.264-GROUPX.mkv",
			want: Result{
				Resolution:   "1080p",
				Quality:      "WEB-DL",
				AudioTags:    []string{"DD+", "5.1"},
				Encodes:      []string{"AVC"},
				ReleaseGroup: "GROUPX",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.name)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Classify(%q)\n got  %+v\n want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyMutualExclusion(t *testing.T) {
	c := newClassifier(t)
	tests := []struct {
		name     string
		category catalog.Name
		want     []string
	}{
		{"Movie.2020.2160p.HDR10+.HDR.HEVC", catalog.VisualTags, []string{"HDR10+"}},
		{"Movie.2020.2160p.HDR10.HDR.HEVC", catalog.VisualTags, []string{"HDR10"}},
		{"Movie.2020.2160p.HDR.HEVC", catalog.VisualTags, []string{"HDR"}},
		{"Movie.DTS-HD.MA.DTS.mkv", catalog.AudioTags, []string{"DTS-HD MA"}},
		{"Movie.DTS-HD.DTS.mkv", catalog.AudioTags, []string{"DTS-HD"}},
		{"Movie.DDP5.1.DD.mkv", catalog.AudioTags, []string{"DD+", "5.1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.name).Labels(tt.category)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("%s labels = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestClassifySubtitleExclusion(t *testing.T) {
	c := newClassifier(t)
	if got := c.Classify("Movie.2020.Japanese.Subs.mkv").Languages; slices.Contains(got, "Japanese") {
		t.Fatalf("subtitle track tagged as spoken language: %v", got)
	}
	if got := c.Classify("Movie.2020.Japanese.Audio.mkv").Languages; !slices.Contains(got, "Japanese") {
		t.Fatalf("expected Japanese, got %v", got)
	}
	if got := c.Classify("Movie.2020.Japanese").Languages; !slices.Contains(got, "Japanese") {
		t.Fatalf("expected Japanese for bare token, got %v", got)
	}
}

func TestClassifySingleBestKeepsFirstMatch(t *testing.T) {
	c := newClassifier(t)
	got := c.Classify("Movie.2160p.1080p.mkv")
	if got.Resolution != "2160p" {
		t.Fatalf("Resolution = %q, want 2160p", got.Resolution)
	}
	if labels := got.Labels(catalog.Resolution); len(labels) != 1 {
		t.Fatalf("single-valued category reported %v", labels)
	}
}

func TestClassifyEmptyAndUnmatched(t *testing.T) {
	c := newClassifier(t)
	for _, name := range []string{"", "   ", "zzzz"} {
		if got := c.Classify(name); !got.Empty() {
			t.Fatalf("Classify(%q) = %+v, want empty", name, got)
		}
	}
}

func TestClassifyFoldsFullWidth(t *testing.T) {
	c := newClassifier(t)
	if got := c.Classify("Movie.２１６０ｐ.mkv").Resolution; got != "2160p" {
		t.Fatalf("Resolution = %q, want 2160p", got)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	c := newClassifier(t)
	const name = "Movie.2020.1080p.BluRay.x264.DTS-HD.MA.5.1-CtrlHD.mkv"
	first, err := json.Marshal(c.Classify(name))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(c.Classify(name))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("results differ:\n%s\n%s", first, second)
	}
}

func TestClassifyAppliesSuppressionInTableOrder(t *testing.T) {
	entries := []catalog.Entry{
		{Label: "A", Pattern: pattern.MustCompile("alpha", pattern.KindGeneric), Suppresses: []string{"B"}},
		{Label: "B", Pattern: pattern.MustCompile("beta", pattern.KindGeneric)},
		{Label: "C", Pattern: pattern.MustCompile("gamma", pattern.KindGeneric)},
	}
	category, err := catalog.NewCategory(catalog.Encodes, catalog.CollectAll, entries)
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	tables, err := catalog.NewTables(category)
	if err != nil {
		t.Fatalf("NewTables: %v", err)
	}
	c, err := New(tables)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Classify("gamma.beta.alpha").Encodes; !slices.Equal(got, []string{"A", "C"}) {
		t.Fatalf("Encodes = %v, want [A C]", got)
	}
	if got := c.Classify("gamma.beta").Encodes; !slices.Equal(got, []string{"B", "C"}) {
		t.Fatalf("Encodes = %v, want [B C]", got)
	}
}

func TestNewRequiresTables(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil tables")
	}
}

func TestRank(t *testing.T) {
	c := newClassifier(t)
	tests := []struct {
		name      string
		languages []string
		wantLabel string
		wantPos   int
		wantOK    bool
	}{
		{"tier one", []string{"Remux_T1"}, "Remux_T1", 0, true},
		{"flagged beats language", []string{"English", "BAD"}, "BAD", 10, true},
		{"unknown ignored", []string{"Klingon", "English"}, "English", 14, true},
		{"none", nil, "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, pos, ok := c.Rank(Result{Languages: tt.languages})
			if label != tt.wantLabel || pos != tt.wantPos || ok != tt.wantOK {
				t.Fatalf("Rank = %q, %d, %v; want %q, %d, %v", label, pos, ok, tt.wantLabel, tt.wantPos, tt.wantOK)
			}
		})
	}
}

func TestResultJSONKeys(t *testing.T) {
	data, err := json.Marshal(Result{Resolution: "720p", AudioTags: []string{"AAC"}, ReleaseGroup: "GRP"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	const want = `{"resolution":"720p","audio_tags":["AAC"],"release_group":"GRP"}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}
}

func TestClassifyTimedOutPatternIsNoMatch(t *testing.T) {
	slow := pattern.MustCompile(`(a+)+b`, pattern.KindGeneric, pattern.WithMatchTimeout(5*time.Millisecond))
	entries := []catalog.Entry{
		{Label: "Slow", Pattern: slow},
		{Label: "Beta", Pattern: pattern.MustCompile("beta", pattern.KindGeneric)},
	}
	category, err := catalog.NewCategory(catalog.Encodes, catalog.CollectAll, entries)
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	tables, err := catalog.NewTables(category)
	if err != nil {
		t.Fatalf("NewTables: %v", err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := New(tables, WithLogger(logger))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.Classify(strings.Repeat("a", 48) + ".beta")
	if !slices.Equal(got.Encodes, []string{"Beta"}) {
		t.Fatalf("Encodes = %v, want [Beta]", got.Encodes)
	}
	out := buf.String()
	if !strings.Contains(out, "pattern match timed out") || !strings.Contains(out, `"label":"Slow"`) {
		t.Fatalf("expected debug timeout record, got %s", out)
	}
	if !strings.Contains(out, `"component":"classify"`) {
		t.Fatalf("expected classify component, got %s", out)
	}
}
