package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var memoryInput string

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Render the memory breakdown figure",
	Long: `Renders a 100%-stacked bar chart of our storage engine's in-memory
footprint per dataset, split by component. By default the embedded
measurements are used; --input renders a fresh stats dump instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := dataset.MemoryBreakdown
		if memoryInput != "" {
			var err error
			stats, err = dataset.LoadMemoryStats(memoryInput)
			if err != nil {
				return err
			}
		}
		return generateMemory(outDir(), stats)
	},
}

func init() {
	rootCmd.AddCommand(memoryCmd)
	memoryCmd.Flags().StringVar(&memoryInput, "input", "", "Raw memory stats JSON to render instead of the embedded table")
}

func generateMemory(dir string, stats dataset.MemoryStats) error {
	groups := stats.Datasets()

	components := make([]render.Series, len(dataset.ComponentOrder))
	for i, comp := range dataset.ComponentOrder {
		c, err := style.ComponentColor(comp)
		if err != nil {
			return err
		}
		components[i] = render.Series{
			Name:   comp,
			Color:  c,
			Values: make([]float64, len(groups)),
		}
	}
	for g, ds := range groups {
		pct, err := stats.Percentages(ds)
		if err != nil {
			return err
		}
		for i := range dataset.ComponentOrder {
			components[i].Values[g] = pct[i]
		}
	}

	p := render.NewFigure("Memory Usage Breakdown by Component", "Dataset", "Memory Usage (%)")
	// Segments below 5% stay unlabeled to avoid clutter.
	if err := render.StackedPercent(p, groups, components, 5); err != nil {
		return err
	}

	path := filepath.Join(dir, "graph_db_memory_breakdown.pdf")
	if err := render.Save(p, style.FigWidth, style.FigHeightTall, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
