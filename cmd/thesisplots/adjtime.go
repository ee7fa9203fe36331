package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var adjtimeCmd = &cobra.Command{
	Use:   "adjtime",
	Short: "Render the neighbor query time figures",
	Long: `Renders single-hop and two-hop neighbor query latencies of each
adjacency-list representation, normalized to the CSR baseline, plus the
combined figure with single-hop above and two-hop below the axis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateAdjTime(outDir())
	},
}

func init() {
	rootCmd.AddCommand(adjtimeCmd)
}

var adjMethods = []string{dataset.CSR, dataset.LogGraph, dataset.CGraphIndex, dataset.Ours}

func generateAdjTime(dir string) error {
	if err := renderAdjTime(dir, dataset.AdjTimeSingleHop,
		"Single-hop Neighbor Query Time (Normalized to CSR)", "adj_neighbors_comparison.pdf"); err != nil {
		return err
	}
	if err := renderAdjTime(dir, dataset.AdjTimeTwoHop,
		"Two-hop Neighbor Query Time (Normalized to CSR)", "adj_2neighbors_comparison.pdf"); err != nil {
		return err
	}
	return renderAdjTimeCombined(dir)
}

func renderAdjTime(dir string, t dataset.Table, title, name string) error {
	groups := t.Datasets()
	methods := availableMethods(adjMethods, t)

	series, err := normalizedSeries(t, groups, methods, dataset.CSR)
	if err != nil {
		return err
	}

	p := render.NewFigure(title, "Dataset", "Relative Time (CSR = 1.0)")
	if err := render.GroupedBars(p, groups, series); err != nil {
		return err
	}
	if err := render.Guide(p, 1.0, "CSR baseline"); err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	if err := render.Save(p, style.FigWidth, style.FigHeight, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}

func renderAdjTimeCombined(dir string) error {
	single, two := dataset.AdjTimeSingleHop, dataset.AdjTimeTwoHop
	groups := single.Datasets()
	methods := availableMethods(adjMethods, single, two)

	upper, err := normalizedSeries(single, groups, methods, dataset.CSR)
	if err != nil {
		return err
	}
	lower, err := normalizedSeries(two, groups, methods, dataset.CSR)
	if err != nil {
		return err
	}

	p := render.NewFigure("Neighbor Query Performance Comparison",
		"Dataset", "Relative Time (CSR = 1.0), two-hop below the axis")
	if err := render.MirroredBars(p, groups, upper, lower, "single-hop", "two-hop"); err != nil {
		return err
	}

	path := filepath.Join(dir, "adj_combined_neighbors_comparison.pdf")
	if err := render.Save(p, style.FigWidth, style.FigHeightTall, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
