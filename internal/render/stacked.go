package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// StackedPercent draws a 100%-stacked bar per group, one segment per
// component. Segments larger than minLabel percent get a white centered
// value label. Components that are zero everywhere are dropped.
func StackedPercent(p *plot.Plot, groups []string, components []Series, minLabel float64) error {
	if len(components) == 0 {
		return fmt.Errorf("stacked bars: no components")
	}
	bottoms := make([]float64, len(groups))
	var prev *plotter.BarChart
	for _, c := range components {
		if len(c.Values) != len(groups) {
			return fmt.Errorf("component %q: %d values for %d groups", c.Name, len(c.Values), len(groups))
		}
		var max float64
		for _, v := range c.Values {
			if v > max {
				max = v
			}
		}
		if max == 0 {
			continue
		}

		bar, err := plotter.NewBarChart(plotter.Values(c.Values), barWidth(len(groups), 1))
		if err != nil {
			return err
		}
		bar.Color = c.Color
		bar.LineStyle.Color = color.White
		bar.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bar.StackOn(prev)
		}
		p.Add(bar)
		p.Legend.Add(c.Name, bar)

		var pts plotter.XYs
		var lbls []string
		for g, v := range c.Values {
			if v > minLabel {
				pts = append(pts, plotter.XY{X: float64(g), Y: bottoms[g] + v/2})
				lbls = append(lbls, fmt.Sprintf("%.1f", v))
			}
			bottoms[g] += v
		}
		if len(pts) > 0 {
			labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: lbls})
			if err != nil {
				return err
			}
			for i := range labels.TextStyle {
				labels.TextStyle[i].Color = color.White
				labels.TextStyle[i].Font.Size = vg.Points(11)
				labels.TextStyle[i].XAlign = text.XCenter
				labels.TextStyle[i].YAlign = text.YCenter
			}
			p.Add(labels)
		}
		prev = bar
	}

	p.NominalX(groups...)
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5
	p.Y.Min = 0
	p.Y.Max = 100
	return nil
}
