package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var relabelCmd = &cobra.Command{
	Use:   "relabel",
	Short: "Render the node relabelling figure",
	Long: `Renders the storage size achieved by each node relabelling
technique, normalized to the input-file (CSV) ordering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateRelabel(outDir())
	},
}

func init() {
	rootCmd.AddCommand(relabelCmd)
}

// relabelOrder fixes the legend and bar order of the relabelling figure.
var relabelOrder = []string{
	dataset.RelabelCSV,
	dataset.RelabelRandom,
	dataset.RelabelTopsort,
	dataset.RelabelBFS,
	dataset.RelabelCM,
	dataset.RelabelDM,
}

func generateRelabel(dir string) error {
	data := dataset.Relabel
	groups := data.Datasets()

	series, err := normalizedSeries(data, groups, relabelOrder, dataset.RelabelCSV)
	if err != nil {
		return err
	}

	p := render.NewFigure("Storage Size of Relabelling Techniques Relative to CSV",
		"Dataset", "Relative Size (CSV = 1.0)")
	if err := render.GroupedBars(p, groups, series); err != nil {
		return err
	}
	if err := render.Guide(p, 1.0, "CSV baseline"); err != nil {
		return err
	}

	path := filepath.Join(dir, "relabelling.pdf")
	if err := render.Save(p, style.FigWidth, style.FigHeight, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
