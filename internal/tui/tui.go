// Package tui is the interactive viewer: scrub election years, switch
// arrangements, and watch circles glide between layouts.
package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/votemap/internal/colors"
	"github.com/san-kum/votemap/internal/engine"
	"github.com/san-kum/votemap/internal/layout"
	"github.com/san-kum/votemap/internal/viz"
)

const fps = 30

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0e0"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

// publishMsg arrives when the background fill finishes the displayed year.
type publishMsg struct{ period int }

// circleAnim is the spring state animating one unit's circle.
type circleAnim struct {
	x, y, r    float64
	vx, vy, vr float64
}

type Model struct {
	eng    *engine.Engine
	mode   layout.Mode
	policy colors.Policy

	years   []int
	yearIdx int

	spring harmonica.Spring
	anim   map[string]*circleAnim

	publishCh chan publishMsg

	width  int
	height int
}

func New(eng *engine.Engine) *Model {
	m := &Model{
		eng:       eng,
		mode:      layout.ModeGeographic,
		policy:    colors.PolicyWinner,
		years:     eng.Dataset().Years(),
		spring:    harmonica.NewSpring(harmonica.FPS(fps), 5.0, 0.9),
		anim:      make(map[string]*circleAnim),
		publishCh: make(chan publishMsg, 1),
	}
	if len(m.years) > 0 {
		m.yearIdx = len(m.years) - 1
		eng.SetDisplayed(m.year())
	}
	eng.SetPublish(func(period int, _ map[string]layout.Position) {
		select {
		case m.publishCh <- publishMsg{period}:
		default:
		}
	})
	return m
}

func (m *Model) year() int {
	if len(m.years) == 0 {
		return 0
	}
	return m.years[m.yearIdx]
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.listenPublish())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) listenPublish() tea.Cmd {
	return func() tea.Msg { return <-m.publishCh }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case publishMsg:
		// Positions refresh from the cache on the next frame; just keep
		// listening.
		return m, m.listenPublish()

	case tickMsg:
		m.advance()
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.eng.Close()
			return m, tea.Quit
		case "left", "h":
			if m.yearIdx > 0 {
				m.yearIdx--
				m.eng.SetDisplayed(m.year())
			}
		case "right", "l":
			if m.yearIdx < len(m.years)-1 {
				m.yearIdx++
				m.eng.SetDisplayed(m.year())
			}
		case "g":
			m.setMode(layout.ModeGeographic)
		case "c":
			m.setMode(layout.ModeCartogram)
		case "s":
			m.setMode(layout.ModeGrid)
		case "b":
			m.setMode(layout.ModeScatter)
		case "p":
			if m.policy == colors.PolicyWinner {
				m.policy = colors.PolicyGradient
			} else {
				m.policy = colors.PolicyWinner
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) setMode(mode layout.Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.eng.SetMode(mode)
	if mode == layout.ModeCartogram {
		m.eng.StartBackgroundFill()
	}
}

// advance springs every circle toward its target in the current layout.
// Targets missing this frame (layout not computed yet) leave the circle
// where it is, so an uncomputed cartogram year simply holds the last frame.
func (m *Model) advance() {
	targets := m.targets()
	if targets == nil {
		return
	}
	for id, p := range targets {
		a, ok := m.anim[id]
		if !ok {
			a = &circleAnim{x: p.X, y: p.Y, r: p.R}
			m.anim[id] = a
		}
		a.x, a.vx = m.spring.Update(a.x, a.vx, p.X)
		a.y, a.vy = m.spring.Update(a.y, a.vy, p.Y)
		a.r, a.vr = m.spring.Update(a.r, a.vr, p.R)
	}
}

// targets resolves the layout the animation is heading toward. Geographic
// mode animates toward centroids with area-true radii.
func (m *Model) targets() map[string]layout.Position {
	if m.mode == layout.ModeGeographic {
		out := make(map[string]layout.Position, len(m.eng.Units()))
		for _, u := range m.eng.Units() {
			out[u.ID] = layout.Position{
				X: u.Centroid.X,
				Y: u.Centroid.Y,
				R: radiusFromArea(u.ProjectedArea),
			}
		}
		return out
	}
	return m.eng.ComputeLayout(m.mode, m.year())
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	cols := m.width
	rows := m.height - 3
	if rows < 4 {
		rows = 4
	}

	positions := make(map[string]layout.Position, len(m.anim))
	for id, a := range m.anim {
		positions[id] = layout.Position{X: a.x, Y: a.y, R: a.r}
	}

	t := float64(m.year())
	frame := viz.Frame(cols, rows, m.eng.Canvas(), m.eng.Units(), positions, func(id string) colorful.Color {
		return m.eng.ColorFor(id, t, m.policy)
	})

	header := headerStyle.Render(fmt.Sprintf(" %d  %s  %s%s", m.year(), m.mode, m.policy, m.progressNote()))
	help := helpStyle.Render(" ←/→ year · g/c/s/b mode · p palette · q quit")
	return header + "\n" + frame.String() + help
}

func (m *Model) progressNote() string {
	if m.mode != layout.ModeCartogram {
		return ""
	}
	p := m.eng.Progress()
	if p.Total == 0 || p.Completed == p.Total {
		return ""
	}
	return fmt.Sprintf("  precomputing %d/%d", p.Completed, p.Total)
}

func radiusFromArea(area float64) float64 {
	if area <= 0 {
		return 0
	}
	return math.Sqrt(area / math.Pi)
}

// Run starts the viewer and blocks until it exits.
func Run(eng *engine.Engine) error {
	_, err := tea.NewProgram(New(eng), tea.WithAltScreen()).Run()
	return err
}
