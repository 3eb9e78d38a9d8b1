package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reltag/internal/config"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")
	logger, err := New(Options{Level: "info", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("classified", String("name", "Movie.2020.1080p"), Int("labels", 3))
	logger.Debug("hidden")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %s", len(lines), data)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record["msg"] != "classified" || record["level"] != "info" {
		t.Fatalf("unexpected record %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("missing ts in %v", record)
	}
	if record["labels"] != float64(3) {
		t.Fatalf("labels = %v", record["labels"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestPrettyHandlerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	NewComponentLogger(logger, "override").Warn("sort pattern rejected",
		String("label", "Web T1"),
		Error(errors.New("bad pattern")),
		Bool("applied", false),
	)

	out := strings.TrimSpace(buf.String())
	if !strings.Contains(out, " WARN override: sort pattern rejected") {
		t.Fatalf("missing level and component prefix: %q", out)
	}
	for _, want := range []string{`label="Web T1"`, `error="bad pattern"`, "applied=false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %q", want, out)
		}
	}
	if strings.Contains(out, "component=") {
		t.Fatalf("component should be promoted, not repeated: %q", out)
	}
}

func TestPrettyHandlerGroupsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)
	logger := slog.New(newPrettyHandler(&buf, lvl, false)).WithGroup("filter")

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	logger.Warn("include timed out", String("pattern", "x"))
	if !strings.Contains(buf.String(), "filter.pattern=x") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestNewFromConfigMirrorsToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := config.Default()
	cfg.Logging.Format = "console"
	cfg.Logging.Level = "info"
	cfg.Logging.Dir = dir

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("engine ready", Int("overrides", 1))

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"engine ready"`) {
		t.Fatalf("log file missing record: %s", data)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logger.Error("ignored")
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRunID(context.Background(), "run-1")
	if id, ok := RunIDFromContext(ctx); !ok || id != "run-1" {
		t.Fatalf("RunIDFromContext = %q, %v", id, ok)
	}
	WithContext(ctx, base).Info("start")
	if !strings.Contains(buf.String(), `"run_id":"run-1"`) {
		t.Fatalf("missing run_id: %s", buf.String())
	}

	buf.Reset()
	WithContext(context.Background(), base).Info("start")
	if strings.Contains(buf.String(), "run_id") {
		t.Fatalf("unexpected run_id: %s", buf.String())
	}
}
