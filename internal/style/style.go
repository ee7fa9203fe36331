// Package style centralizes the presentation choices shared by every
// figure: the method color palette, the serif typeface, and the figure
// constants. Keeping these here is what makes the charts visually
// consistent across the thesis.
package style

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"thesisplots/internal/dataset"
)

// ErrNoColor reports a method that appears in a dataset table without a
// palette entry. Rendering must abort rather than pick a default.
var ErrNoColor = errors.New("no color mapped for method")

// ErrNoLabel is the legend-text counterpart of ErrNoColor.
var ErrNoLabel = errors.New("no label mapped for method")

// Shared figure constants.
const (
	FigWidth  = 12 * vg.Inch
	FigHeight = 7 * vg.Inch

	// Taller variants used by the mirrored and stacked figures.
	FigHeightTall = 8 * vg.Inch

	ParetoWidth  = 8 * vg.Inch
	ParetoHeight = 6 * vg.Inch

	// GroupWidth is the share of one x-axis unit covered by a bar group.
	GroupWidth = 0.8
)

// Font sizes.
var (
	TitleFontSize      = vg.Points(14)
	LegendFontSize     = vg.Points(11)
	AnnotationFontSize = vg.Points(7)
)

// methodColors assigns one fixed color per technique and database, matching
// the palette used throughout the thesis text.
var methodColors = map[string]color.RGBA{
	dataset.Ours:        {R: 214, G: 39, B: 40, A: 255},  // red
	dataset.CSR:         {R: 31, G: 119, B: 180, A: 255}, // blue
	dataset.LogGraph:    {R: 255, G: 127, B: 14, A: 255}, // orange
	dataset.CGraphIndex: {R: 44, G: 160, B: 44, A: 255},  // green

	dataset.Neo4j:    {R: 31, G: 119, B: 180, A: 255},
	dataset.ArangoDB: {R: 255, G: 127, B: 14, A: 255},

	dataset.RelabelCSV:     {R: 31, G: 119, B: 180, A: 255},
	dataset.RelabelRandom:  {R: 255, G: 127, B: 14, A: 255},
	dataset.RelabelTopsort: {R: 44, G: 160, B: 44, A: 255},
	dataset.RelabelBFS:     {R: 214, G: 39, B: 40, A: 255},
	dataset.RelabelCM:      {R: 148, G: 103, B: 189, A: 255}, // purple
	dataset.RelabelDM:      {R: 140, G: 86, B: 75, A: 255},   // brown
}

// inputColors style the input-file baseline bars of the storage figure.
var inputColors = map[string]color.RGBA{
	dataset.ZippedInput:   {R: 105, G: 105, B: 105, A: 255}, // dim gray
	dataset.UnzippedInput: {R: 192, G: 192, B: 192, A: 255}, // silver
}

// componentColors style the memory-breakdown segments. Dark enough that the
// white in-segment percentage labels stay readable.
var componentColors = map[string]color.RGBA{
	dataset.CompAdjLists:   {R: 31, G: 119, B: 180, A: 255},
	dataset.CompParents:    {R: 214, G: 39, B: 40, A: 255},
	dataset.CompFixedProps: {R: 44, G: 160, B: 44, A: 255},
	dataset.CompVarProps:   {R: 255, G: 127, B: 14, A: 255},
	dataset.CompTypes:      {R: 148, G: 103, B: 189, A: 255},
	dataset.CompIDMapping:  {R: 140, G: 86, B: 75, A: 255},
	dataset.CompOther:      {R: 127, G: 127, B: 127, A: 255},
}

// methodLabels gives each method its legend text. Mostly the table key
// itself; the lowercase technique keys read better capitalized.
var methodLabels = map[string]string{
	dataset.Ours:        dataset.Ours,
	dataset.CSR:         dataset.CSR,
	dataset.LogGraph:    dataset.LogGraph,
	dataset.CGraphIndex: dataset.CGraphIndex,

	dataset.Neo4j:    dataset.Neo4j,
	dataset.ArangoDB: dataset.ArangoDB,

	dataset.RelabelCSV:     "CSV",
	dataset.RelabelRandom:  "Random",
	dataset.RelabelTopsort: "Topsort",
	dataset.RelabelBFS:     "BFS",
	dataset.RelabelCM:      "CM",
	dataset.RelabelDM:      "DM",

	dataset.ZippedInput:   "Zipped Input",
	dataset.UnzippedInput: "Original Dataset",
}

// BaselineGray is the dashed guide-line color.
var BaselineGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// MethodColor returns the palette color for a technique or database.
func MethodColor(name string) (color.RGBA, error) {
	c, ok := methodColors[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrNoColor, name)
	}
	return c, nil
}

// MethodLabel returns the legend text for a method or input-file key.
func MethodLabel(name string) (string, error) {
	l, ok := methodLabels[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoLabel, name)
	}
	return l, nil
}

// InputColor returns the fill for an input-file baseline bar.
func InputColor(name string) (color.RGBA, error) {
	c, ok := inputColors[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrNoColor, name)
	}
	return c, nil
}

// ComponentColor returns the fill for a memory component segment.
func ComponentColor(name string) (color.RGBA, error) {
	c, ok := componentColors[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrNoColor, name)
	}
	return c, nil
}

// Faded blends a color halfway toward white. The mirrored chart halves use
// it to distinguish the lower series while keeping the method hue.
func Faded(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(c.R) + 255) / 2),
		G: uint8((uint16(c.G) + 255) / 2),
		B: uint8((uint16(c.B) + 255) / 2),
		A: 255,
	}
}

// SetupFonts switches gonum/plot's process-global defaults to the
// Liberation Serif face so every figure matches the thesis body text.
// Called once per process before any chart is built.
func SetupFonts() {
	serif := font.Font{Typeface: "Liberation", Variant: "Serif"}
	plot.DefaultFont = serif
	plotter.DefaultFont = serif
}
