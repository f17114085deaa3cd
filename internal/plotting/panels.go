package plotting

import (
	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
)

// TimepointKey is the uns entry naming the obs column that orders a
// time-series dataset.
const TimepointKey = "timepoint_var"

// TimeSeriesPanels renders one panel per distinct time point of the
// column named by uns["timepoint_var"], in first-seen order. Each panel
// is an embedding scatter restricted to its time point, with the legend
// suppressed and axis decorations removed. A missing uns key or column
// is a KeyError.
func TimeSeriesPanels(ds *dataset.Dataset, basis string, opt EmbeddingOpts) (*Result, error) {
	tpName, err := ds.UnsString(TimepointKey)
	if err != nil {
		return nil, err
	}
	col, err := ds.Obs(tpName)
	if err != nil {
		return nil, err
	}
	values := col.Unique()

	fig, axes := figure.Subplots(1, len(values), figure.Size{
		Width:  3 * float64(len(values)),
		Height: 3.2,
	})
	for i, tp := range values {
		popt := opt
		popt.Color = tpName
		popt.Groups = []string{tp}
		popt.Title = tp
		popt.Legend = false
		popt.HideAxes = true
		popt.Scatter.Ax = axes[i]
		popt.Scatter.Colorbar = false
		popt.Display = DisplayOpts{Mode: ModeAxes}
		if _, err := Embedding(ds, basis, popt); err != nil {
			return nil, err
		}
	}

	return finish(fig, axes, "timeseries_"+basis, opt.Display)
}
