package plotting

import (
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/embedviz/internal/figure"
)

// Mode selects what a rendering call hands back. Only one of the three
// outcomes is meaningful per call, so this is an enum rather than a
// pair of booleans; figure return dominates.
type Mode int

const (
	// ModeShow previews the figure and returns nothing.
	ModeShow Mode = iota
	// ModeAxes returns the axes drawn on.
	ModeAxes
	// ModeFigure returns the whole figure.
	ModeFigure
)

func (m Mode) String() string {
	switch m {
	case ModeAxes:
		return "axes"
	case ModeFigure:
		return "figure"
	default:
		return "show"
	}
}

// ResolveMode maps the classic (return_fig, show) boolean pair onto a
// Mode. A figure request wins regardless of show.
func ResolveMode(returnFig, show bool) Mode {
	switch {
	case returnFig:
		return ModeFigure
	case show:
		return ModeShow
	default:
		return ModeAxes
	}
}

// DisplayOpts is the display contract shared by all renderers.
type DisplayOpts struct {
	Mode Mode
	// Save writes the figure to this path instead of previewing. A
	// directory or extensionless path gets "<name>.png" appended.
	Save string
	// Preview size in terminal cells, zero for defaults.
	PreviewWidth, PreviewHeight int
}

// Result carries what the display mode elected to return. Fig is set
// only in ModeFigure, Axes only in ModeAxes.
type Result struct {
	Fig  *figure.Figure
	Axes []*figure.Axes
}

// PreviewWriter receives terminal previews in ModeShow. Overridable for
// tests.
var PreviewWriter io.Writer = os.Stdout

// finish applies the shared save-or-show behavior and shapes the result.
func finish(fig *figure.Figure, axes []*figure.Axes, name string, d DisplayOpts) (*Result, error) {
	if err := saveOrShow(fig, name, d); err != nil {
		return nil, err
	}
	switch d.Mode {
	case ModeFigure:
		return &Result{Fig: fig}, nil
	case ModeAxes:
		return &Result{Axes: axes}, nil
	default:
		return &Result{}, nil
	}
}

func saveOrShow(fig *figure.Figure, name string, d DisplayOpts) error {
	if d.Save != "" {
		path := d.Save
		if info, err := os.Stat(path); (err == nil && info.IsDir()) || filepath.Ext(path) == "" {
			path = filepath.Join(path, name+".png")
		}
		return fig.Save(path)
	}
	if d.Mode == ModeShow {
		io.WriteString(PreviewWriter, fig.PreviewString(d.PreviewWidth, d.PreviewHeight)+"\n")
	}
	return nil
}
