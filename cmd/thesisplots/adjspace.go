package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var adjspaceCmd = &cobra.Command{
	Use:   "adjspace",
	Short: "Render the adjacency-list storage size figures",
	Long: `Renders the storage size of each adjacency-list representation,
normalized to the CSR baseline. Two figures are produced: the preliminary
one without our representation, and the full comparison with it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateAdjSpace(outDir())
	},
}

func init() {
	rootCmd.AddCommand(adjspaceCmd)
}

func generateAdjSpace(dir string) error {
	if err := renderAdjSpace(dir, false, "adj_size_preliminary.pdf"); err != nil {
		return err
	}
	return renderAdjSpace(dir, true, "adj_size_comparison.pdf")
}

func renderAdjSpace(dir string, includeOurs bool, name string) error {
	data := dataset.AdjSpace
	groups := data.Datasets()
	methods := []string{dataset.CSR, dataset.LogGraph, dataset.CGraphIndex}
	if includeOurs {
		methods = append(methods, dataset.Ours)
	}

	series, err := normalizedSeries(data, groups, methods, dataset.CSR)
	if err != nil {
		return err
	}

	p := render.NewFigure("Graph Storage Relative to CSR", "Dataset", "Relative Size (CSR = 1.0)")
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
