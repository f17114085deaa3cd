package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
)

// Styling defaults, matching a dense single-cell scatter.
const (
	DefaultPointRadius = 2.0
	DefaultEdgeWidth   = 0.0
)

// DefaultPointColor is used for uncolored scatters.
var DefaultPointColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Projection names an embedding or carries literal coordinates. Key
// takes precedence when set.
type Projection struct {
	Key    string
	Coords [][]float64
}

// ColorSpec selects per-row colors. At most one field is set: Key names
// an obs column, Values and Labels are literal arrays, Uniform is a
// single scalar color. The zero value means "no coloring".
type ColorSpec struct {
	Key     string
	Values  []float64
	Labels  []string
	Uniform color.Color
}

func (c ColorSpec) isZero() bool {
	return c.Key == "" && c.Values == nil && c.Labels == nil && c.Uniform == nil
}

// ScatterOpts styles the generic projection scatter. Zero values fall
// back to package defaults.
type ScatterOpts struct {
	Color     ColorSpec
	Radius    float64
	EdgeWidth float64
	EdgeColor color.Color
	ColorMap  string
	Colorbar  bool
	// Ax draws into an existing axes instead of a fresh figure.
	Ax *figure.Axes
}

// ProjectionScatter renders a 2D projection as a scatter and always
// returns the axes used, creating figure and axes when none is given.
//
// Color resolution: absent means a plain scatter; a Key is looked up in
// obs, and a failed lookup silently falls back to reading the key as a
// literal color name; string-valued colors are encoded categorically
// with colorbar ticks labeled by first occurrence; numeric values pass
// through unchanged. A uniform color never draws a colorbar.
func ProjectionScatter(ds *dataset.Dataset, proj Projection, opt ScatterOpts) (*figure.Axes, error) {
	coords := proj.Coords
	if proj.Key != "" {
		var err error
		coords, err = ds.Embedding(proj.Key)
		if err != nil {
			return nil, err
		}
	}

	ax := opt.Ax
	if ax == nil {
		ax = figure.New().AddAxes()
	}
	sty := figure.PointStyle{
		Radius:    opt.Radius,
		EdgeWidth: opt.EdgeWidth,
		EdgeColor: opt.EdgeColor,
	}
	if sty.Radius == 0 {
		sty.Radius = DefaultPointRadius
	}

	cs, err := resolveColor(ds, opt.Color)
	if err != nil {
		return nil, err
	}

	switch {
	case cs.isZero():
		if err := ax.ScatterUniform(coords, DefaultPointColor, sty); err != nil {
			return nil, err
		}

	case cs.Labels != nil:
		codes, uniques, first := Encode(cs.Labels)
		vals := make([]float64, len(codes))
		for i, c := range codes {
			vals[i] = float64(c)
		}
		cm, err := figure.ColorMap(opt.ColorMap)
		if err != nil {
			return nil, err
		}
		if err := ax.ScatterMapped(coords, vals, cm, sty); err != nil {
			return nil, err
		}
		if opt.Colorbar {
			ticks := make([]float64, len(uniques))
			labels := make([]string, len(uniques))
			for k := range uniques {
				ticks[k] = float64(k)
				labels[k] = cs.Labels[first[k]]
			}
			ax.SetColorbar(cm, ticks, labels)
		}

	case cs.Values != nil:
		cm, err := figure.ColorMap(opt.ColorMap)
		if err != nil {
			return nil, err
		}
		if err := ax.ScatterMapped(coords, cs.Values, cm, sty); err != nil {
			return nil, err
		}
		if opt.Colorbar {
			ax.SetColorbar(cm, nil, nil)
		}

	default:
		// Uniform scalar color: colorbar is suppressed even when asked.
		if err := ax.ScatterUniform(coords, cs.Uniform, sty); err != nil {
			return nil, err
		}
	}

	return ax, nil
}

// resolveColor turns a Key spec into literal values or labels. A missing
// obs key is not an error here: the key falls back to a literal color
// name, the one silent suppression in this package.
func resolveColor(ds *dataset.Dataset, cs ColorSpec) (ColorSpec, error) {
	if cs.Key == "" {
		return cs, nil
	}
	col, err := ds.Obs(cs.Key)
	if err == nil {
		if col.IsString() {
			return ColorSpec{Labels: col.Strings}, nil
		}
		return ColorSpec{Values: col.Floats}, nil
	}
	var ke *dataset.KeyError
	if !errors.As(err, &ke) {
		return ColorSpec{}, err
	}
	c, ok := colornames.Map[strings.ToLower(cs.Key)]
	if !ok {
		return ColorSpec{}, fmt.Errorf("plotting: %q is neither an obs column nor a color name", cs.Key)
	}
	return ColorSpec{Uniform: c}, nil
}
