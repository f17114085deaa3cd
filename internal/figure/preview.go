package figure

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	panelTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)
)

// PreviewString renders every axes onto a Braille canvas of cellW x
// cellH character cells and joins the panels horizontally.
func (f *Figure) PreviewString(cellW, cellH int) string {
	if cellW <= 0 {
		cellW = 36
	}
	if cellH <= 0 {
		cellH = 12
	}
	panels := make([]string, 0, len(f.axes))
	for _, a := range f.axes {
		body := a.previewCanvas(cellW, cellH).String()
		if t := a.Title(); t != "" {
			body = panelTitle.Render(t) + "\n" + body
		}
		panels = append(panels, panelStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (a *Axes) previewCanvas(cellW, cellH int) *Canvas {
	c := NewCanvas(cellW, cellH)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range a.series {
		if s.Kind == KindBand {
			continue
		}
		for _, p := range s.XYs {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return c
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	pw := float64(cellW*2 - 1)
	ph := float64(cellH*4 - 1)
	px := func(x float64) int { return int((x - minX) / (maxX - minX) * pw) }
	// Terminal rows grow downward, data up.
	py := func(y float64) int { return int(ph - (y-minY)/(maxY-minY)*ph) }

	for _, s := range a.series {
		switch s.Kind {
		case KindScatter:
			for _, p := range s.XYs {
				c.Set(px(p.X), py(p.Y))
			}
		case KindLine:
			for i := 1; i < len(s.XYs); i++ {
				c.DrawLine(px(s.XYs[i-1].X), py(s.XYs[i-1].Y), px(s.XYs[i].X), py(s.XYs[i].Y))
			}
		}
	}
	return c
}
