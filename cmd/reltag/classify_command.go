package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/classify"
	"reltag/internal/engine"
	"reltag/internal/logging"
	"reltag/internal/textutil"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var format string
	var applyFilter bool
	var workers int
	var strict bool

	cmd := &cobra.Command{
		Use:   "classify [name...]",
		Short: "Classify release names",
		Long: "Classify release names given as arguments, or one per line on stdin when no\n" +
			"arguments are given. Output is a table on a terminal and JSON lines otherwise.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			resolved, err := resolveFormat(format, out)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}
			if strict && eng.OverrideErr != nil {
				return fmt.Errorf("sort patterns rejected: %w", eng.OverrideErr)
			}

			names := args
			if len(names) == 0 {
				names, err = readNames(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read names: %w", err)
				}
			}
			if applyFilter {
				names = filterNames(eng, names)
			}

			if workers <= 0 {
				workers = cfg.Classify.Workers
			}

			runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logging.WithContext(runCtx, logger), "cli")
			logger.Debug("classify batch started",
				logging.Int("names", len(names)),
				logging.Int("workers", workers),
				logging.Bool("filtered", applyFilter),
			)

			items, err := eng.Classifier.Batch(runCtx, names, workers)
			if err != nil {
				return err
			}
			unmatched := 0
			for _, item := range items {
				if item.Result.Empty() {
					unmatched++
				}
			}
			logger.Debug("classify batch finished",
				logging.Int("items", len(items)),
				logging.Int("unmatched", unmatched),
			)

			if resolved == formatJSON {
				return writeJSONLines(out, items)
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "No names to classify")
				return nil
			}
			fmt.Fprintln(out, renderClassifyTable(eng.Classifier, items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatAuto, "Output format: auto, table or json")
	cmd.Flags().BoolVar(&applyFilter, "filter", false, "Skip names rejected by the configured include/exclude patterns")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent workers (defaults to classify.workers)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the configured sort patterns are rejected instead of using the built-in tiers")
	return cmd
}

func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

func filterNames(eng *engine.Engine, names []string) []string {
	if !eng.Filter.Active() {
		return names
	}
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if eng.Filter.Allow(name) {
			kept = append(kept, name)
		}
	}
	return kept
}

func writeJSONLines(w io.Writer, items []classify.Item) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func renderClassifyTable(c *classify.Classifier, items []classify.Item) string {
	categories := c.Tables().Categories()
	headers := make([]string, 0, len(categories)+3)
	aligns := make([]columnAlignment, 0, len(categories)+3)
	headers = append(headers, "Name")
	aligns = append(aligns, alignLeft)
	for _, category := range categories {
		headers = append(headers, columnTitle(category.Name()))
		aligns = append(aligns, alignLeft)
	}
	headers = append(headers, "Rank", "Group")
	aligns = append(aligns, alignRight, alignLeft)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		r := item.Result
		row := make([]string, 0, len(headers))
		row = append(row, item.Name)
		for _, category := range categories {
			row = append(row, textutil.JoinLabels(r.Labels(category.Name())))
		}
		rank := textutil.Placeholder
		if _, pos, ok := c.Rank(r); ok {
			rank = strconv.Itoa(pos + 1)
		}
		row = append(row, rank, textutil.OrPlaceholder(r.ReleaseGroup))
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func columnTitle(name catalog.Name) string {
	switch name {
	case catalog.Resolution:
		return "Resolution"
	case catalog.Quality:
		return "Quality"
	case catalog.VisualTags:
		return "Visual"
	case catalog.AudioTags:
		return "Audio"
	case catalog.Encodes:
		return "Encodes"
	case catalog.Languages:
		return "Tiers"
	default:
		return string(name)
	}
}
