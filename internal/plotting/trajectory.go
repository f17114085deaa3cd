package plotting

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
	"github.com/san-kum/embedviz/internal/trajectory"
)

// Uns keys the marker-trajectory renderer writes its trend tables to.
const (
	UnsTrunkTrend   = "trunk_trend"
	UnsBranch1Trend = "branch1_trend"
	UnsBranch2Trend = "branch2_trend"
)

// Trajectory computation defaults.
const (
	DefaultTrajectoryBins = 150
	DefaultSmoothing      = 1.0
	DefaultMinDelta       = 0.1
)

// TrajectoryOpts configures the marker-trend delegator.
type TrajectoryOpts struct {
	Bins            int
	SmoothingFactor float64
	MinDelta        float64
	ShowVariance    bool
	ColorMap        string
	// Size overrides the marker-count-proportional default figure size.
	Size *figure.Size
	// Ax reuses an existing axes (and its figure).
	Ax      *figure.Axes
	Display DisplayOpts
}

// MarkerTrajectory plots marker trends along the dataset's branching
// trajectory. All computation is delegated to the trajectory package;
// this function only shapes figure and axes, persists the three trend
// tables into uns, and applies the display contract.
func MarkerTrajectory(ds *dataset.Dataset, markers []string, opt TrajectoryOpts) (*Result, error) {
	wb, err := trajectory.FromDataset(ds)
	if err != nil {
		return nil, err
	}

	if opt.Bins <= 0 {
		opt.Bins = DefaultTrajectoryBins
	}
	if opt.SmoothingFactor == 0 {
		opt.SmoothingFactor = DefaultSmoothing
	}
	if opt.MinDelta == 0 {
		opt.MinDelta = DefaultMinDelta
	}

	var fig *figure.Figure
	ax := opt.Ax
	if ax != nil {
		fig = ax.Figure()
	} else {
		size := figure.Size{Width: 2 * float64(len(markers)), Height: 0.75 * float64(len(markers))}
		if opt.Size != nil {
			size = *opt.Size
		}
		fig = figure.NewSized(size)
		ax = fig.AddAxes()
	}

	trends, err := wb.PlotMarkerTrajectory(markers, trajectory.PlotOpts{
		Bins:            opt.Bins,
		SmoothingFactor: opt.SmoothingFactor,
		MinDelta:        opt.MinDelta,
		ShowVariance:    opt.ShowVariance,
		ColorMap:        opt.ColorMap,
	}, ax)
	if err != nil {
		return nil, err
	}

	ds.Uns[UnsTrunkTrend] = trends.Trunk
	ds.Uns[UnsBranch1Trend] = trends.Branch1
	ds.Uns[UnsBranch2Trend] = trends.Branch2

	if opt.Display.Mode == ModeShow && opt.Display.Save == "" {
		printTrendPreview(trends, markers)
	}
	return finish(fig, []*figure.Axes{ax}, "marker_trajectory", opt.Display)
}

// printTrendPreview charts the trunk trends as an ascii line graph.
func printTrendPreview(trends trajectory.Trends, markers []string) {
	series := make([][]float64, 0, len(markers))
	for _, m := range markers {
		if col := trends.Trunk.Col(m); col != nil {
			series = append(series, col)
		}
	}
	if len(series) == 0 {
		return
	}
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("trunk marker trends"))
	fmt.Fprintln(PreviewWriter, graph)
}
