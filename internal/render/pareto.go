package render

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point is one method's position in the space/time trade-off plane.
type Point struct {
	Space float64 // MB
	Time  float64 // ns per query
}

// ParetoFront returns the non-dominated subset of points, sorted by space.
// A point is on the front if no other point is both smaller and faster.
func ParetoFront(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Space != sorted[j].Space {
			return sorted[i].Space < sorted[j].Space
		}
		return sorted[i].Time < sorted[j].Time
	})
	var front []Point
	minTime := 0.0
	for i, pt := range sorted {
		if i == 0 || pt.Time < minTime {
			front = append(front, pt)
			minTime = pt.Time
		}
	}
	return front
}

// Marker places a single method point with a distinct glyph shape and adds
// a legend entry for it.
func Marker(p *plot.Plot, name string, pt Point, c color.RGBA, shape draw.GlyphDrawer) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: pt.Space, Y: pt.Time}})
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: shape}
	p.Add(sc)
	p.Legend.Add(name, sc)
	return nil
}

// FrontLine connects the Pareto front with a solid black line.
func FrontLine(p *plot.Plot, front []Point) error {
	if len(front) < 2 {
		return nil
	}
	pts := make(plotter.XYs, len(front))
	for i, pt := range front {
		pts[i] = plotter.XY{X: pt.Space, Y: pt.Time}
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	ln.LineStyle.Color = color.Black
	ln.LineStyle.Width = vg.Points(1)
	p.Add(ln)
	return nil
}

// DashedGrid adds the light dashed grid the trade-off figures use.
func DashedGrid(p *plot.Plot) {
	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)
}
