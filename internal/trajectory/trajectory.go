// Package trajectory computes smoothed marker trends along a branching
// pseudotime trajectory and draws them onto an axes.
//
// The trajectory splits into a trunk and two branches, labeled per row
// by the "branch" obs column; pseudotime positions come from the
// "trajectory" obs column and marker values from the dataset X matrix.
package trajectory

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
)

// Dataset obs columns and branch labels the trajectory is read from.
const (
	ObsTrajectory = "trajectory"
	ObsBranch     = "branch"

	BranchTrunk = "trunk"
	Branch1     = "branch1"
	Branch2     = "branch2"
)

// PlotOpts tunes trend computation and display.
type PlotOpts struct {
	// Bins is the number of equal-width pseudotime bins.
	Bins int
	// SmoothingFactor scales the moving-average window.
	SmoothingFactor float64
	// MinDelta is the smallest normalized difference between the two
	// branch trends that keeps them drawn separately; below it they are
	// merged into one trend.
	MinDelta float64
	// ShowVariance adds a one-sigma band around each trend.
	ShowVariance bool
	// ColorMap names the per-marker line palette.
	ColorMap string
}

// Trends is the computed output: one table per trajectory segment, one
// column per marker, indexed by bin pseudotime.
type Trends struct {
	Trunk   *dataset.Table
	Branch1 *dataset.Table
	Branch2 *dataset.Table
}

// Wishbone holds the per-row trajectory assignment extracted from a
// dataset.
type Wishbone struct {
	ds         *dataset.Dataset
	pseudotime []float64
	branch     []string
}

// FromDataset extracts trajectory state. Missing obs columns surface as
// KeyErrors; wrongly typed columns are plain errors.
func FromDataset(ds *dataset.Dataset) (*Wishbone, error) {
	pt, err := ds.Obs(ObsTrajectory)
	if err != nil {
		return nil, err
	}
	if pt.IsString() {
		return nil, fmt.Errorf("trajectory: obs %q must be numeric", ObsTrajectory)
	}
	br, err := ds.Obs(ObsBranch)
	if err != nil {
		return nil, err
	}
	if !br.IsString() {
		return nil, fmt.Errorf("trajectory: obs %q must be categorical", ObsBranch)
	}
	if len(pt.Floats) == 0 {
		return nil, fmt.Errorf("trajectory: empty dataset")
	}
	return &Wishbone{ds: ds, pseudotime: pt.Floats, branch: br.Strings}, nil
}

// PlotMarkerTrajectory computes the per-segment trends for markers,
// draws them onto ax, and returns the three trend tables. All trend
// values are min-max normalized per marker so branches are comparable.
func (w *Wishbone) PlotMarkerTrajectory(markers []string, opt PlotOpts, ax *figure.Axes) (Trends, error) {
	if opt.Bins <= 0 {
		return Trends{}, fmt.Errorf("trajectory: bins must be positive, got %d", opt.Bins)
	}

	centers := binCenters(w.pseudotime, opt.Bins)
	trends := Trends{
		Trunk:   dataset.NewTable("pseudotime", centers),
		Branch1: dataset.NewTable("pseudotime", centers),
		Branch2: dataset.NewTable("pseudotime", centers),
	}

	lineColors, err := figure.SampleColors(opt.ColorMap, maxInt(len(markers), 2))
	if err != nil {
		return Trends{}, err
	}

	for mi, marker := range markers {
		vals, err := w.ds.Var(marker)
		if err != nil {
			return Trends{}, err
		}
		vals = normalize(vals)

		trunkMean, trunkStd := w.segmentTrend(vals, BranchTrunk, centers, opt)
		b1Mean, b1Std := w.segmentTrend(vals, Branch1, centers, opt)
		b2Mean, b2Std := w.segmentTrend(vals, Branch2, centers, opt)

		// Branches closer than MinDelta everywhere collapse to a single
		// merged trend.
		if maxAbsDiff(b1Mean, b2Mean) < opt.MinDelta {
			merged, mergedStd := w.mergedBranchTrend(vals, centers, opt)
			b1Mean, b1Std = merged, mergedStd
			b2Mean, b2Std = merged, mergedStd
		}

		if err := trends.Trunk.Set(marker, trunkMean); err != nil {
			return Trends{}, err
		}
		if err := trends.Branch1.Set(marker, b1Mean); err != nil {
			return Trends{}, err
		}
		if err := trends.Branch2.Set(marker, b2Mean); err != nil {
			return Trends{}, err
		}

		c := lineColors[mi%len(lineColors)]
		if err := w.drawTrend(ax, centers, trunkMean, trunkStd, c, 1.5, opt.ShowVariance); err != nil {
			return Trends{}, err
		}
		if err := w.drawTrend(ax, centers, b1Mean, b1Std, c, 1, opt.ShowVariance); err != nil {
			return Trends{}, err
		}
		if err := w.drawTrend(ax, centers, b2Mean, b2Std, c, 1, opt.ShowVariance); err != nil {
			return Trends{}, err
		}
		ax.LegendEntry(marker, c)
	}

	ax.SetLabels("pseudotime", "normalized expression")
	return trends, nil
}

func (w *Wishbone) drawTrend(ax *figure.Axes, xs, mean, std []float64, c color.Color, width float64, variance bool) error {
	if variance {
		lo := make([]float64, len(mean))
		hi := make([]float64, len(mean))
		for i := range mean {
			lo[i] = mean[i] - std[i]
			hi[i] = mean[i] + std[i]
		}
		band := bandColor(c)
		if err := ax.Band(xs, lo, hi, band); err != nil {
			return err
		}
	}
	return ax.Line(xs, mean, c, width)
}

// segmentTrend bins the rows carrying label and returns smoothed
// per-bin means and standard deviations. Empty bins carry the previous
// bin forward.
func (w *Wishbone) segmentTrend(vals []float64, label string, centers []float64, opt PlotOpts) (mean, std []float64) {
	mask := make([]bool, len(w.branch))
	for i, b := range w.branch {
		mask[i] = b == label
	}
	return w.maskedTrend(vals, mask, centers, opt)
}

func (w *Wishbone) mergedBranchTrend(vals []float64, centers []float64, opt PlotOpts) (mean, std []float64) {
	mask := make([]bool, len(w.branch))
	for i, b := range w.branch {
		mask[i] = b == Branch1 || b == Branch2
	}
	return w.maskedTrend(vals, mask, centers, opt)
}

func (w *Wishbone) maskedTrend(vals []float64, mask []bool, centers []float64, opt PlotOpts) (mean, std []float64) {
	lo := floats.Min(w.pseudotime)
	hi := floats.Max(w.pseudotime)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	bins := make([][]float64, len(centers))
	for i, t := range w.pseudotime {
		if !mask[i] {
			continue
		}
		b := int((t - lo) / span * float64(len(centers)))
		if b >= len(centers) {
			b = len(centers) - 1
		}
		bins[b] = append(bins[b], vals[i])
	}

	mean = make([]float64, len(centers))
	std = make([]float64, len(centers))
	prev := 0.0
	for b, members := range bins {
		if len(members) == 0 {
			mean[b] = prev
			continue
		}
		mean[b] = stat.Mean(members, nil)
		if len(members) > 1 {
			std[b] = stat.StdDev(members, nil)
		}
		prev = mean[b]
	}

	window := int(3*opt.SmoothingFactor) + 1
	return smooth(mean, window), smooth(std, window)
}

func binCenters(pseudotime []float64, bins int) []float64 {
	lo := floats.Min(pseudotime)
	hi := floats.Max(pseudotime)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	centers := make([]float64, bins)
	for b := range centers {
		centers[b] = lo + (float64(b)+0.5)/float64(bins)*span
	}
	return centers
}

// smooth is a centered moving average with the given half-window.
func smooth(vals []float64, window int) []float64 {
	if window <= 1 || len(vals) == 0 {
		return vals
	}
	out := make([]float64, len(vals))
	for i := range vals {
		lo := maxInt(0, i-window)
		hi := minInt(len(vals), i+window+1)
		out[i] = stat.Mean(vals[lo:hi], nil)
	}
	return out
}

func normalize(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	lo := floats.Min(vals)
	hi := floats.Max(vals)
	if hi == lo {
		return make([]float64, len(vals))
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func maxAbsDiff(a, b []float64) float64 {
	var max float64
	for i := range a {
		if d := a[i] - b[i]; d > max {
			max = d
		} else if -d > max {
			max = -d
		}
	}
	return max
}

func bandColor(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 48}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
