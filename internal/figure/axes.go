package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SeriesKind discriminates recorded draw batches.
type SeriesKind int

const (
	KindScatter SeriesKind = iota
	KindLine
	KindBand
)

// Series is one recorded draw batch. Axes keep these so terminal
// previews and tests can inspect what was drawn without rasterizing.
type Series struct {
	Kind SeriesKind
	XYs  plotter.XYs
	// Vals holds per-point colormap inputs for mapped scatters, nil for
	// uniformly colored batches.
	Vals  []float64
	Color color.Color
}

// PointStyle carries scatter glyph styling, lengths in printer's points.
type PointStyle struct {
	Radius    float64
	EdgeWidth float64
	EdgeColor color.Color
}

// Colorbar is the colorbar state attached to an Axes. Labels, when
// present, are drawn at the matching Ticks positions.
type Colorbar struct {
	Map    palette.ColorMap
	Ticks  []float64
	Labels []string
}

// Axes wraps a single gonum plot.
type Axes struct {
	fig       *Figure
	plt       *plot.Plot
	series    []Series
	cbar      *Colorbar
	decorated bool
}

func newAxes(fig *Figure) *Axes {
	return &Axes{fig: fig, plt: plot.New(), decorated: true}
}

// Figure returns the figure this axes belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

func (a *Axes) SetTitle(title string) { a.plt.Title.Text = title }

func (a *Axes) Title() string { return a.plt.Title.Text }

func (a *Axes) SetLabels(x, y string) {
	a.plt.X.Label.Text = x
	a.plt.Y.Label.Text = y
}

// HideDecorations removes axis lines, ticks and labels.
func (a *Axes) HideDecorations() {
	a.plt.HideAxes()
	a.decorated = false
}

func (a *Axes) Decorated() bool { return a.decorated }

// Series returns the recorded draw batches in draw order.
func (a *Axes) Series() []Series { return a.series }

// Colorbar returns the attached colorbar state, nil if none.
func (a *Axes) Colorbar() *Colorbar { return a.cbar }

// SetColorbar attaches colorbar state rendered as a right-margin strip
// when the figure is saved. Only a single-axes figure draws the strip;
// in a subplot grid the state is kept for inspection but not rendered,
// so grid builders should suppress per-panel colorbars.
func (a *Axes) SetColorbar(cm palette.ColorMap, ticks []float64, labels []string) {
	a.cbar = &Colorbar{Map: cm, Ticks: ticks, Labels: labels}
}

// ScatterUniform draws all points in a single color.
func (a *Axes) ScatterUniform(coords [][]float64, c color.Color, sty PointStyle) error {
	xys, err := toXYs(coords)
	if err != nil {
		return err
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(sty.Radius), Shape: draw.CircleGlyph{}}
	a.plt.Add(s)
	a.addEdgeOverlay(xys, sty)
	a.series = append(a.series, Series{Kind: KindScatter, XYs: xys, Color: c})
	return nil
}

// ScatterMapped draws points colored by vals through cm. The colormap
// range is fit to the value range before sampling.
func (a *Axes) ScatterMapped(coords [][]float64, vals []float64, cm palette.ColorMap, sty PointStyle) error {
	xys, err := toXYs(coords)
	if err != nil {
		return err
	}
	if len(vals) != len(xys) {
		return fmt.Errorf("figure: %d color values for %d points", len(vals), len(xys))
	}
	if len(vals) == 0 {
		// Zero rows: record the empty batch and draw nothing.
		a.series = append(a.series, Series{Kind: KindScatter, XYs: xys, Vals: vals})
		return nil
	}

	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)

	colors := make([]color.Color, len(vals))
	for i, v := range vals {
		c, err := cm.At(v)
		if err != nil {
			return fmt.Errorf("figure: colormap at %g: %w", v, err)
		}
		colors[i] = c
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	s.GlyphStyle = draw.GlyphStyle{Radius: vg.Points(sty.Radius), Shape: draw.CircleGlyph{}}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: colors[i], Radius: vg.Points(sty.Radius), Shape: draw.CircleGlyph{}}
	}
	a.plt.Add(s)
	a.addEdgeOverlay(xys, sty)
	a.series = append(a.series, Series{Kind: KindScatter, XYs: xys, Vals: vals})
	return nil
}

// addEdgeOverlay approximates marker edges with a ring glyph pass.
func (a *Axes) addEdgeOverlay(xys plotter.XYs, sty PointStyle) {
	if sty.EdgeWidth <= 0 || sty.EdgeColor == nil {
		return
	}
	ring, err := plotter.NewScatter(xys)
	if err != nil {
		return
	}
	ring.GlyphStyle = draw.GlyphStyle{Color: sty.EdgeColor, Radius: vg.Points(sty.Radius), Shape: draw.RingGlyph{}}
	a.plt.Add(ring)
}

// Line draws a polyline through (xs, ys).
func (a *Axes) Line(xs, ys []float64, c color.Color, width float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("figure: line has %d x and %d y values", len(xs), len(ys))
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(width)
	a.plt.Add(l)
	a.series = append(a.series, Series{Kind: KindLine, XYs: xys, Color: c})
	return nil
}

// Band fills the region between lo and hi, for variance display.
func (a *Axes) Band(xs, lo, hi []float64, c color.Color) error {
	if len(xs) != len(lo) || len(xs) != len(hi) {
		return fmt.Errorf("figure: band has %d x, %d lo, %d hi values", len(xs), len(lo), len(hi))
	}
	xys := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		xys = append(xys, plotter.XY{X: xs[i], Y: lo[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: xs[i], Y: hi[i]})
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return err
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	a.plt.Add(poly)
	a.series = append(a.series, Series{Kind: KindBand, XYs: xys, Color: c})
	return nil
}

// LegendEntry adds a named swatch to the axes legend.
func (a *Axes) LegendEntry(name string, c color.Color) {
	thumb, err := plotter.NewScatter(plotter.XYs{})
	if err != nil {
		return
	}
	thumb.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	a.plt.Legend.Add(name, thumb)
}

func toXYs(coords [][]float64) (plotter.XYs, error) {
	xys := make(plotter.XYs, len(coords))
	for i, row := range coords {
		if len(row) < 2 {
			return nil, fmt.Errorf("figure: point %d has %d coordinates, want >= 2", i, len(row))
		}
		xys[i] = plotter.XY{X: row[0], Y: row[1]}
	}
	return xys, nil
}

func (c *Colorbar) plot() *plot.Plot {
	p := plot.New()
	bar := &plotter.ColorBar{ColorMap: c.Map}
	bar.Vertical = true
	p.Add(bar)
	p.HideX()
	if len(c.Labels) > 0 {
		ticks := make([]plot.Tick, len(c.Ticks))
		for i, v := range c.Ticks {
			ticks[i] = plot.Tick{Value: v, Label: c.Labels[i]}
		}
		p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}
	return p
}
