// Package render holds the chart construction shared by the generators.
// Everything here builds figures in memory; Save is the only side effect.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"thesisplots/internal/style"
)

// Series is one bar series across every chart group, in group order.
type Series struct {
	Name   string
	Color  color.RGBA
	Values []float64
	// Labels are optional per-bar annotations; empty strings are skipped.
	Labels []string
}

// NewFigure returns a plot with the shared title, axis, and legend setup.
func NewFigure(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = style.TitleFontSize
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)
	p.Legend.TextStyle.Font.Size = style.LegendFontSize
	return p
}

// GroupedBars draws one bar per series per group. Series are offset in data
// coordinates so that annotations line up with their bars, and the group
// centers land on the nominal tick positions.
func GroupedBars(p *plot.Plot, groups []string, series []Series) error {
	n := len(series)
	if n == 0 {
		return fmt.Errorf("grouped bars: no series")
	}
	var maxVal float64
	for _, s := range series {
		if len(s.Values) != len(groups) {
			return fmt.Errorf("series %q: %d values for %d groups", s.Name, len(s.Values), len(groups))
		}
		for _, v := range s.Values {
			maxVal = math.Max(maxVal, v)
		}
	}
	w := style.GroupWidth / float64(n)
	for i, s := range series {
		bar, err := plotter.NewBarChart(plotter.Values(s.Values), barWidth(len(groups), n))
		if err != nil {
			return err
		}
		bar.Color = s.Color
		bar.LineStyle.Width = 0
		bar.XMin = seriesOffset(i, n, w)
		p.Add(bar)
		p.Legend.Add(s.Name, bar)
		if s.Labels != nil {
			if err := annotate(p, s, bar.XMin, maxVal*0.02, true); err != nil {
				return err
			}
		}
	}
	p.NominalX(groups...)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5
	p.Y.Min = 0
	// Headroom for the rotated annotations above the tallest bar.
	p.Y.Max = maxVal * 1.5
	return nil
}

// MirroredBars draws two related metric categories in one figure: upper
// above the zero line, lower mirrored below it in a washed-out variant of
// the series color. Both slices must align pairwise and with the groups.
// Lower values are passed positive and negated for display.
func MirroredBars(p *plot.Plot, groups []string, upper, lower []Series, upperTag, lowerTag string) error {
	n := len(upper)
	if n == 0 || len(lower) != n {
		return fmt.Errorf("mirrored bars: %d upper and %d lower series", n, len(lower))
	}
	var limit float64
	for i := range upper {
		if len(upper[i].Values) != len(groups) || len(lower[i].Values) != len(groups) {
			return fmt.Errorf("series %q: value count does not match %d groups", upper[i].Name, len(groups))
		}
		for g := range groups {
			limit = math.Max(limit, upper[i].Values[g])
			limit = math.Max(limit, lower[i].Values[g])
		}
	}
	limit = math.Max(limit, 0.1) * 1.5

	w := style.GroupWidth / float64(n)
	for i := range upper {
		up, down := upper[i], lower[i]
		offset := seriesOffset(i, n, w)

		upBar, err := plotter.NewBarChart(plotter.Values(up.Values), barWidth(len(groups), n))
		if err != nil {
			return err
		}
		upBar.Color = up.Color
		upBar.LineStyle.Width = 0
		upBar.XMin = offset
		p.Add(upBar)
		p.Legend.Add(fmt.Sprintf("%s (%s)", up.Name, upperTag), upBar)

		negated := make(plotter.Values, len(down.Values))
		for g, v := range down.Values {
			negated[g] = -v
		}
		downBar, err := plotter.NewBarChart(negated, barWidth(len(groups), n))
		if err != nil {
			return err
		}
		downBar.Color = style.Faded(up.Color)
		downBar.LineStyle.Width = 0
		downBar.XMin = offset
		p.Add(downBar)
		p.Legend.Add(fmt.Sprintf("%s (%s)", down.Name, lowerTag), downBar)

		if up.Labels != nil {
			if err := annotate(p, up, offset, limit*0.015, true); err != nil {
				return err
			}
		}
		if down.Labels != nil {
			mirrored := down
			mirrored.Values = negated
			if err := annotate(p, mirrored, offset, limit*0.015, false); err != nil {
				return err
			}
		}
	}

	p.NominalX(groups...)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5
	p.Y.Min = -limit
	p.Y.Max = limit

	if err := zeroLine(p); err != nil {
		return err
	}
	if err := Guide(p, 1.0, ""); err != nil {
		return err
	}
	return Guide(p, -1.0, "")
}

// Guide adds a dashed horizontal guide line, optionally with a legend
// entry. Call after the X range is fixed.
func Guide(p *plot.Plot, y float64, label string) error {
	ln, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: y}, {X: p.X.Max, Y: y}})
	if err != nil {
		return err
	}
	ln.LineStyle.Color = style.BaselineGray
	ln.LineStyle.Width = vg.Points(1.2)
	ln.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(ln)
	if label != "" {
		p.Legend.Add(label, ln)
	}
	return nil
}

// RatioLabel formats a normalized value as an "N.Nx" annotation. The
// baseline's own bars and vanishing ratios stay unlabeled.
func RatioLabel(ratio float64) string {
	if ratio == 1.0 || ratio < 0.01 {
		return ""
	}
	s := fmt.Sprintf("%.1fx", ratio)
	if s == "0.0x" {
		return ""
	}
	return s
}

func zeroLine(p *plot.Plot) error {
	ln, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: 0}, {X: p.X.Max, Y: 0}})
	if err != nil {
		return err
	}
	ln.LineStyle.Color = color.Black
	ln.LineStyle.Width = vg.Points(0.8)
	p.Add(ln)
	return nil
}

// annotate places the series' rotated labels just past the bar ends.
func annotate(p *plot.Plot, s Series, offset, pad float64, above bool) error {
	if len(s.Labels) != len(s.Values) {
		return fmt.Errorf("series %q: %d labels for %d values", s.Name, len(s.Labels), len(s.Values))
	}
	var pts plotter.XYs
	var lbls []string
	for g, l := range s.Labels {
		if l == "" {
			continue
		}
		y := s.Values[g] + pad
		if !above {
			y = s.Values[g] - pad
		}
		pts = append(pts, plotter.XY{X: float64(g) + offset, Y: y})
		lbls = append(lbls, l)
	}
	if len(pts) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: lbls})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = style.AnnotationFontSize
		labels.TextStyle[i].Rotation = math.Pi / 2
		labels.TextStyle[i].YAlign = text.YCenter
		if above {
			labels.TextStyle[i].XAlign = text.XLeft
		} else {
			labels.TextStyle[i].XAlign = text.XRight
		}
	}
	p.Add(labels)
	return nil
}

// seriesOffset centers series i of n within the group, in data units.
func seriesOffset(i, n int, w float64) float64 {
	return (float64(i) - float64(n-1)/2) * w
}

// barWidth sizes bars so a full group spans roughly GroupWidth of one
// x-axis unit on the default figure width.
func barWidth(nGroups, nSeries int) vg.Length {
	unit := style.FigWidth * 0.82 / vg.Length(nGroups)
	return unit * vg.Length(style.GroupWidth) / vg.Length(nSeries) * 0.92
}
