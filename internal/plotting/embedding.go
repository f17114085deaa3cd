package plotting

import (
	"fmt"

	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
)

// EmbeddingOpts configures the embedding renderer. Scatter styling is
// forwarded verbatim to ProjectionScatter.
type EmbeddingOpts struct {
	// Color names an obs column for per-row coloring.
	Color string
	// Groups restricts rendering to rows whose Color category is in the
	// set. Requires a categorical Color column.
	Groups   []string
	Title    string
	Legend   bool
	HideAxes bool
	Scatter  ScatterOpts
	Display  DisplayOpts
}

// Embedding renders the named embedding as a scatter and applies the
// display contract. A missing basis is a KeyError and produces no
// figure.
func Embedding(ds *dataset.Dataset, basis string, opt EmbeddingOpts) (*Result, error) {
	coords, err := ds.Embedding(basis)
	if err != nil {
		return nil, err
	}

	sopt := opt.Scatter
	sopt.Color = ColorSpec{Key: opt.Color}

	if opt.Color != "" && len(opt.Groups) > 0 {
		col, err := ds.Obs(opt.Color)
		if err != nil {
			return nil, err
		}
		if !col.IsString() {
			return nil, fmt.Errorf("plotting: groups need a categorical column, %q is numeric", opt.Color)
		}
		keep := make(map[string]bool, len(opt.Groups))
		for _, g := range opt.Groups {
			keep[g] = true
		}
		var sub [][]float64
		var labels []string
		for i, l := range col.Strings {
			if keep[l] {
				sub = append(sub, coords[i])
				labels = append(labels, l)
			}
		}
		coords = sub
		sopt.Color = ColorSpec{Labels: labels}
	}

	ax, err := ProjectionScatter(ds, Projection{Coords: coords}, sopt)
	if err != nil {
		return nil, err
	}

	title := opt.Title
	if title == "" {
		title = basis
	}
	ax.SetTitle(title)
	if opt.HideAxes {
		ax.HideDecorations()
	}
	if opt.Legend {
		addCategoryLegend(ds, ax, opt.Color, sopt.ColorMap)
	}

	return finish(ax.Figure(), []*figure.Axes{ax}, "embedding_"+basis, opt.Display)
}

// PHATE renders the embedding stored under the "phate" key.
func PHATE(ds *dataset.Dataset, opt EmbeddingOpts) (*Result, error) {
	return Embedding(ds, "phate", opt)
}

// TriMap renders the embedding stored under the "trimap" key.
func TriMap(ds *dataset.Dataset, opt EmbeddingOpts) (*Result, error) {
	return Embedding(ds, "trimap", opt)
}

// UMAP renders the embedding stored under the "umap" key.
func UMAP(ds *dataset.Dataset, opt EmbeddingOpts) (*Result, error) {
	return Embedding(ds, "umap", opt)
}

// addCategoryLegend adds one swatch per category, colored the way the
// mapped scatter colors its codes.
func addCategoryLegend(ds *dataset.Dataset, ax *figure.Axes, colorKey, cmapName string) {
	if colorKey == "" {
		return
	}
	col, err := ds.Obs(colorKey)
	if err != nil || !col.IsString() {
		return
	}
	_, uniques, _ := Encode(col.Strings)
	cm, err := figure.ColorMap(cmapName)
	if err != nil {
		return
	}
	cm.SetMin(0)
	if len(uniques) > 1 {
		cm.SetMax(float64(len(uniques) - 1))
	} else {
		cm.SetMax(1)
	}
	for k, u := range uniques {
		if c, err := cm.At(float64(k)); err == nil {
			ax.LegendEntry(u, c)
		}
	}
}
