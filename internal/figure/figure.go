package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

// Figure owns a row-major grid of axes.
type Figure struct {
	size Size
	rows int
	cols int
	axes []*Axes
}

// New returns an empty single-row figure at the default size.
func New() *Figure { return NewSized(Size{Width: 6, Height: 4.5}) }

// NewSized returns an empty single-row figure.
func NewSized(size Size) *Figure {
	return &Figure{size: size, rows: 1}
}

// Subplots returns a figure with a rows x cols grid of axes, in
// row-major order.
func Subplots(rows, cols int, size Size) (*Figure, []*Axes) {
	f := &Figure{size: size, rows: rows, cols: cols}
	f.axes = make([]*Axes, rows*cols)
	for i := range f.axes {
		f.axes[i] = newAxes(f)
	}
	return f, f.axes
}

// AddAxes appends an axes to a single-row figure.
func (f *Figure) AddAxes() *Axes {
	a := newAxes(f)
	f.axes = append(f.axes, a)
	f.cols = len(f.axes)
	return a
}

// Axes returns the figure's axes in grid order.
func (f *Figure) Axes() []*Axes { return f.axes }

// Size returns the figure size in inches.
func (f *Figure) Size() Size { return f.size }

// Save renders the figure to path. The format follows the extension:
// .png, .jpg/.jpeg or .svg.
func (f *Figure) Save(path string) error {
	if len(f.axes) == 0 {
		return fmt.Errorf("figure: nothing to draw")
	}
	w := vg.Length(f.size.Width) * vg.Inch
	h := vg.Length(f.size.Height) * vg.Inch

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		c := vgimg.New(w, h)
		f.draw(draw.New(c))
		return writeTo(path, vgimg.PngCanvas{Canvas: c})
	case ".jpg", ".jpeg":
		c := vgimg.New(w, h)
		f.draw(draw.New(c))
		return writeTo(path, vgimg.JpegCanvas{Canvas: c})
	case ".svg":
		c := vgsvg.New(w, h)
		f.draw(draw.New(c))
		return writeTo(path, c)
	default:
		return fmt.Errorf("figure: unsupported format %q", ext)
	}
}

func writeTo(path string, wt io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = wt.WriteTo(file)
	return err
}

func (f *Figure) draw(dc draw.Canvas) {
	// A lone axes with a colorbar gets a right-margin strip; anything
	// else tiles the grid without colorbar strips (see SetColorbar).
	if len(f.axes) == 1 && f.axes[0].cbar != nil {
		width := dc.Rectangle.Size().X
		strip := width * 0.16
		main := draw.Crop(dc, 0, -strip, 0, 0)
		right := draw.Crop(dc, width-strip, 0, 0, 0)
		f.axes[0].plt.Draw(main)
		f.axes[0].cbar.plot().Draw(right)
		return
	}

	cols := f.cols
	if cols == 0 {
		cols = len(f.axes)
	}
	plots := make([][]*plot.Plot, f.rows)
	for r := 0; r < f.rows; r++ {
		plots[r] = make([]*plot.Plot, cols)
		for c := 0; c < cols; c++ {
			if i := r*cols + c; i < len(f.axes) {
				plots[r][c] = f.axes[i].plt
			}
		}
	}
	tiles := draw.Tiles{
		Rows: f.rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
}
