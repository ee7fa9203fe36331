package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var gdbtimeCmd = &cobra.Command{
	Use:   "gdbtime",
	Short: "Render the graph-database query time figures",
	Long: `Renders two mirrored figures comparing our storage engine against
Neo4j: neighbor queries (single-hop above the axis, two-hop below) and
property queries (fixed-size above, variable-size below). Each half is
normalized to Neo4j separately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateGDBTime(outDir())
	},
}

func init() {
	rootCmd.AddCommand(gdbtimeCmd)
}

var gdbMethods = []string{dataset.Neo4j, dataset.Ours}

func generateGDBTime(dir string) error {
	if err := renderGDBMirrored(dir,
		dataset.GDBTimeSingleHop, dataset.GDBTimeTwoHop,
		"Graph Database Neighbor Query Performance",
		"single-hop", "two-hop",
		"graphdb_neighbors_comparison.pdf"); err != nil {
		return err
	}
	return renderGDBMirrored(dir,
		dataset.GDBTimeFixedProps, dataset.GDBTimeVarProps,
		"Graph Database Properties Query Performance",
		"fixed-size", "variable-size",
		"graphdb_properties_comparison.pdf")
}

func renderGDBMirrored(dir string, upperTable, lowerTable dataset.Table, title, upperTag, lowerTag, name string) error {
	groups := upperTable.Datasets()

	upper, err := tolerantSeries(upperTable, groups, gdbMethods, dataset.Neo4j)
	if err != nil {
		return err
	}
	lower, err := tolerantSeries(lowerTable, groups, gdbMethods, dataset.Neo4j)
	if err != nil {
		return err
	}

	p := render.NewFigure(title, "Dataset", "Relative Time (Neo4j = 1.0)")
	if err := render.MirroredBars(p, groups, upper, lower, upperTag, lowerTag); err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	if err := render.Save(p, style.FigWidth, style.FigHeightTall, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
