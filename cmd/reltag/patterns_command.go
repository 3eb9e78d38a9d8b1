package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reltag/internal/catalog"
	"reltag/internal/textutil"
)

type patternView struct {
	Position   int      `json:"position"`
	Label      string   `json:"label"`
	Pattern    string   `json:"pattern"`
	Suppresses []string `json:"suppresses,omitempty"`
}

type categoryView struct {
	Name        string        `json:"name"`
	Cardinality string        `json:"cardinality"`
	Patterns    []patternView `json:"patterns"`
}

func newPatternsCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "patterns [category]",
		Short: "List the active category tables in precedence order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			categories := eng.Tables.Categories()
			if len(args) == 1 {
				c, ok := eng.Tables.Category(catalog.Name(strings.ToLower(strings.TrimSpace(args[0]))))
				if !ok {
					return fmt.Errorf("unknown category %q", args[0])
				}
				categories = []*catalog.Category{c}
			}
			views := buildCategoryViews(categories)

			out := cmd.OutOrStdout()
			resolved, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			if resolved == formatJSON {
				return writeJSON(cmd, views)
			}

			headers := []string{"Category", "Mode", "#", "Label", "Suppresses"}
			var rows [][]string
			for _, view := range views {
				for _, p := range view.Patterns {
					rows = append(rows, []string{
						view.Name,
						view.Cardinality,
						strconv.Itoa(p.Position),
						p.Label,
						textutil.JoinLabels(p.Suppresses),
					})
				}
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft}))
			if eng.Overrides > 0 {
				fmt.Fprintf(out, "%d sort pattern(s) merged from configuration\n", eng.Overrides)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatAuto, "Output format: auto, table or json")
	return cmd
}

func buildCategoryViews(categories []*catalog.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		view := categoryView{
			Name:        string(c.Name()),
			Cardinality: c.Cardinality().String(),
			Patterns:    make([]patternView, 0, c.Len()),
		}
		for i, entry := range c.Entries() {
			view.Patterns = append(view.Patterns, patternView{
				Position:   i + 1,
				Label:      entry.Label,
				Pattern:    entry.Pattern.Fragment(),
				Suppresses: entry.Suppresses,
			})
		}
		views = append(views, view)
	}
	return views
}
