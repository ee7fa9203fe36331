package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"thesisplots/internal/dataset"
	"thesisplots/internal/ui"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Regenerate every figure",
	Long: `Runs every figure generator in a fixed order. A failing generator
does not stop the others; all failures are reported at the end and make
the command exit non-zero.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

type generator struct {
	name string
	run  func(dir string) error
}

// generators lists every figure generator in regeneration order.
var generators = []generator{
	{"adjspace", generateAdjSpace},
	{"adjtime", generateAdjTime},
	{"pareto", generatePareto},
	{"gdbspace", generateGDBSpace},
	{"gdbtime", generateGDBTime},
	{"memory", func(dir string) error { return generateMemory(dir, dataset.MemoryBreakdown) }},
	{"relabel", generateRelabel},
}

func runAll(cmd *cobra.Command, args []string) error {
	dir := outDir()

	var errs []error
	results := make([]ui.RunResult, 0, len(generators))
	for _, g := range generators {
		err := g.run(dir)
		if err != nil {
			slog.Error("figure generation failed", "generator", g.name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", g.name, err))
		}
		results = append(results, ui.RunResult{Name: g.name, Err: err})
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(results, listPDFs(dir)))
	return errors.Join(errs...)
}
