// Package viz plays recorded runs back in the terminal.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavelab/internal/render"
	"github.com/san-kum/wavelab/internal/wave"
)

const heatmapCols = 100

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps through the snapshots of one recorded run.
type Model struct {
	steps   []int
	fields  []*wave.Field
	peaks   []float64
	sc      render.Scale
	dt      float64
	fps     int
	head    int
	playing bool
}

// NewModel prepares playback of coll at the given frame rate.
func NewModel(coll *wave.Collection, dt float64, fps int) Model {
	if fps < 1 {
		fps = 10
	}
	steps := coll.Steps()
	fields := make([]*wave.Field, len(steps))
	peaks := make([]float64, len(steps))
	for k, step := range steps {
		f, _ := coll.At(step)
		fields[k] = f
		peaks[k] = f.MaxAbs()
	}
	return Model{
		steps:   steps,
		fields:  fields,
		peaks:   peaks,
		sc:      render.SharedScale(coll),
		dt:      dt,
		fps:     fps,
		playing: true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "left", "h":
			m.playing = false
			if m.head > 0 {
				m.head--
			}
		case "right", "l":
			m.playing = false
			if m.head < len(m.fields)-1 {
				m.head++
			}
		case "r":
			m.head = 0
			m.playing = true
		}
		return m, nil
	case TickMsg:
		if m.playing && len(m.fields) > 0 {
			m.head = (m.head + 1) % len(m.fields)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.fields) == 0 {
		return "no snapshots\n"
	}

	step := m.steps[m.head]
	heat := render.Heatmap(m.fields[m.head], m.sc, heatmapCols)

	status := fmt.Sprintf("%s %s   %s %s   %s %s",
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d", step)),
		labelStyle.Render("t"), valueStyle.Render(fmt.Sprintf("%.4f", float64(step)*m.dt)),
		labelStyle.Render("frame"), valueStyle.Render(fmt.Sprintf("%d/%d", m.head+1, len(m.fields))))

	graph := asciigraph.Plot(m.peaks[:m.head+1],
		asciigraph.Height(5),
		asciigraph.Width(60),
		asciigraph.Caption("peak amplitude"),
	)

	return headerStyle.Render("wavelab playback") + "\n" +
		frameStyle.Render(heat) + "\n" +
		status + "\n" +
		graphStyle.Render(graph) + "\n" +
		helpStyle.Render("space pause  ←/→ scrub  r restart  q quit") + "\n"
}

// Play runs the playback UI until the user quits.
func Play(coll *wave.Collection, dt float64, fps int) error {
	p := tea.NewProgram(NewModel(coll, dt, fps))
	_, err := p.Run()
	return err
}
