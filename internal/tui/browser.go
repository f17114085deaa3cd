// Package tui is an interactive terminal browser for dataset embeddings,
// built on Bubble Tea. It cycles through embeddings and color columns
// and renders live Braille previews.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/embedviz/internal/config"
	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/plotting"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const noColor = "(none)"

type model struct {
	ds  *dataset.Dataset
	cfg *config.Config

	embeddings []string
	colors     []string
	embCursor  int
	colCursor  int

	preview string
	status  string
	width   int
	height  int
}

// NewBrowser builds the interactive browser over a loaded dataset.
func NewBrowser(ds *dataset.Dataset, cfg *config.Config) tea.Model {
	colors := append([]string{noColor}, ds.ObsKeys()...)
	m := model{
		ds:         ds,
		cfg:        cfg,
		embeddings: ds.EmbeddingKeys(),
		colors:     colors,
		width:      80,
		height:     24,
	}
	m.render()
	return m
}

// Run starts the browser and blocks until quit.
func Run(ds *dataset.Dataset, cfg *config.Config) error {
	if len(ds.EmbeddingKeys()) == 0 {
		return fmt.Errorf("tui: dataset has no embeddings")
	}
	_, err := tea.NewProgram(NewBrowser(ds, cfg), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.render()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.embCursor > 0 {
				m.embCursor--
				m.render()
			}
		case "down", "j":
			if m.embCursor < len(m.embeddings)-1 {
				m.embCursor++
				m.render()
			}
		case "left", "h":
			if m.colCursor > 0 {
				m.colCursor--
				m.render()
			}
		case "right", "l":
			if m.colCursor < len(m.colors)-1 {
				m.colCursor++
				m.render()
			}
		case "s":
			m.save()
		}
	}
	return m, nil
}

func (m *model) render() {
	if len(m.embeddings) == 0 {
		m.preview = dim.Render("no embeddings")
		return
	}
	res, err := plotting.Embedding(m.ds, m.embeddings[m.embCursor], plotting.EmbeddingOpts{
		Color:   m.selectedColor(),
		Scatter: m.scatterOpts(),
		Display: plotting.DisplayOpts{Mode: plotting.ModeAxes},
	})
	if err != nil {
		m.preview = yellow.Render(err.Error())
		return
	}
	pw := m.width/2 - 6
	ph := m.height/4 - 2
	m.preview = res.Axes[0].Figure().PreviewString(pw, ph)
}

func (m *model) save() {
	path := filepath.Join(m.cfg.OutDir,
		fmt.Sprintf("%s_%d.png", m.embeddings[m.embCursor], time.Now().Unix()))
	_, err := plotting.Embedding(m.ds, m.embeddings[m.embCursor], plotting.EmbeddingOpts{
		Color:   m.selectedColor(),
		Scatter: m.scatterOpts(),
		Display: plotting.DisplayOpts{Mode: plotting.ModeAxes, Save: path},
	})
	if err != nil {
		m.status = yellow.Render("save failed: " + err.Error())
		return
	}
	m.status = green.Render("saved " + path)
}

func (m *model) selectedColor() string {
	if c := m.colors[m.colCursor]; c != noColor {
		return c
	}
	return ""
}

func (m *model) scatterOpts() plotting.ScatterOpts {
	return plotting.ScatterOpts{
		Radius:   m.cfg.Style.PointRadius,
		ColorMap: m.cfg.ColorMap,
		Colorbar: m.cfg.Colorbar,
	}
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("embedviz browser"))
	sb.WriteString("\n")

	var list []string
	for i, e := range m.embeddings {
		cursor := "  "
		style := white
		if i == m.embCursor {
			cursor = cyan.Render("> ")
			style = cyan
		}
		list = append(list, cursor+style.Render(e))
	}
	left := strings.Join(list, "\n") +
		"\n\n" + dim.Render("color: ") + yellow.Render(m.colors[m.colCursor])

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(left), m.preview))
	if m.status != "" {
		sb.WriteString("\n" + m.status)
	}
	sb.WriteString("\n" + helpStyle.Render("↑/↓ embedding  ←/→ color  s save  q quit"))
	return sb.String()
}
