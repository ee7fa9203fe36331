package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg/draw"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

var paretoCmd = &cobra.Command{
	Use:   "pareto",
	Short: "Render the per-dataset space/time trade-off figures",
	Long: `Renders one Pareto frontier figure per dataset and per query type
(single-hop under neighbors/, two-hop under 2neighbors/), plotting each
representation's storage size against its query latency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generatePareto(outDir())
	},
}

func init() {
	rootCmd.AddCommand(paretoCmd)
}

// paretoGlyphs gives each representation a distinct marker shape.
var paretoGlyphs = map[string]draw.GlyphDrawer{
	dataset.CSR:         draw.CircleGlyph{},
	dataset.LogGraph:    draw.BoxGlyph{},
	dataset.CGraphIndex: draw.PyramidGlyph{},
	dataset.Ours:        draw.CrossGlyph{},
}

func generatePareto(dir string) error {
	categories := []struct {
		sub   string
		label string
		times dataset.Table
	}{
		{"neighbors", "1-hop neighbors", dataset.AdjTimeSingleHop},
		{"2neighbors", "2-hop neighbors", dataset.AdjTimeTwoHop},
	}
	for _, cat := range categories {
		for _, ds := range dataset.AdjSpace.Datasets() {
			if err := renderPareto(dir, cat.sub, cat.label, ds, cat.times); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderPareto(dir, sub, label, ds string, times dataset.Table) error {
	p := render.NewFigure(fmt.Sprintf("Pareto Frontier for %s (%s)", ds, label),
		"Space (MB)", "Time per Query (ns)")
	render.DashedGrid(p)

	var points []render.Point
	for _, m := range adjMethods {
		space, err := dataset.AdjSpace.Value(ds, m)
		if err != nil {
			return err
		}
		t, err := times.Value(ds, m)
		if err != nil {
			return err
		}
		c, err := style.MethodColor(m)
		if err != nil {
			return err
		}
		name, err := style.MethodLabel(m)
		if err != nil {
			return err
		}
		pt := render.Point{Space: dataset.ToMB(space), Time: t}
		points = append(points, pt)
		if err := render.Marker(p, name, pt, c, paretoGlyphs[m]); err != nil {
			return err
		}
	}
	if err := render.FrontLine(p, render.ParetoFront(points)); err != nil {
		return err
	}

	path := filepath.Join(dir, sub, ds+".pdf")
	if err := render.Save(p, style.ParetoWidth, style.ParetoHeight, path); err != nil {
		return err
	}
	slog.Info("saved figure", "path", path)
	return nil
}
