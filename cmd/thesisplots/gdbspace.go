package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var gdbspaceCmd = &cobra.Command{
	Use:   "gdbspace",
	Short: "Render the graph-database storage figure",
	Long: `Renders the on-disk size of each graph database relative to the
uncompressed input file, with the zipped input shown for scale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateGDBSpace(outDir())
	},
}

func init() {
	rootCmd.AddCommand(gdbspaceCmd)
}

func generateGDBSpace(dir string) error {
	data := dataset.GDBSpace
	groups := data.Datasets()

	zippedColor, err := style.InputColor(dataset.ZippedInput)
	if err != nil {
		return err
	}
	zippedLabel, err := style.MethodLabel(dataset.ZippedInput)
	if err != nil {
		return err
	}
	zipped := render.Series{
		Name:   zippedLabel,
		Color:  zippedColor,
		Values: make([]float64, len(groups)),
		Labels: make([]string, len(groups)),
	}
	for g, ds := range groups {
		r, err := data.Ratio(ds, dataset.ZippedInput, dataset.UnzippedInput)
		if err != nil {
			return err
		}
		zipped.Values[g] = r
		zipped.Labels[g] = render.RatioLabel(r)
	}

	databases, err := normalizedSeries(data, groups,
		[]string{dataset.Ours, dataset.Neo4j, dataset.ArangoDB}, dataset.UnzippedInput)
	if err != nil {
		return err
	}
	series := append([]render.Series{zipped}, databases...)

	p := render.NewFigure("Graph Database Storage Relative to the Original Dataset",
		"Dataset", "Relative Size (Original Dataset = 1.0)")
	if err := render.GroupedBars(p, groups, series); err != nil {
		return err
	}
	if err := render.Guide(p, 1.0, "Original Dataset (baseline)"); err != nil {
		return err
	}

	path := filepath.Join(dir, "graphdb_size_comparison.pdf")
	if err := render.Save(p, style.FigWidth, style.FigHeight, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
