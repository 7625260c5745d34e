package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/eigen"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/scene"
)

// Easing reshapes normalized sweep progress. It maps [0, 1] onto [0, 1]
// and the dashboard treats it as an opaque pure function; Linear is the
// default when none is injected.
type Easing func(float64) float64

func Linear(p float64) float64 { return p }

// TickMsg drives the animation clock.
type TickMsg time.Time

const (
	defaultFPS = 60
	// One sweep of the window takes this long at speed 1.
	baseSweepSeconds = 4.0
	historyLen       = 120
)

// Model is the live dashboard. Each tick advances the animation clock
// through the easing function, recomputes the session frame at that
// instant, and renders the numbers; the session underneath stays
// synchronous and single-threaded.
type Model struct {
	session *scene.Session
	easing  Easing
	specs   []scene.VectorSpec
	raw     [3]eigen.Value

	progress float64
	t        float64
	speed    float64
	fps      int
	paused   bool
	frame    *scene.Frame
	err      error
	history  []float64
	width    int
}

// NewModel prepares a dashboard over s. A nil easing falls back to
// Linear; non-positive speed and fps fall back to their defaults.
func NewModel(s *scene.Session, easing Easing, speed float64, fps int) Model {
	if easing == nil {
		easing = Linear
	}
	if !(speed > 0) {
		speed = 1
	}
	if fps <= 0 {
		fps = defaultFPS
	}

	m := Model{
		session: s,
		easing:  easing,
		specs:   s.Specs(),
		speed:   speed,
		fps:     fps,
		width:   80,
	}
	if raw, err := s.Values(); err == nil {
		m.raw = raw
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.reset()
		case "+", "=":
			if m.speed < 8 {
				m.speed *= 1.25
			}
		case "-", "_":
			if m.speed > 0.125 {
				m.speed /= 1.25
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	m.progress += m.speed / (baseSweepSeconds * float64(m.fps))
	if m.progress >= 1 {
		// A wrap starts a fresh animation pass.
		m.progress = 0
		m.history = nil
		m.session.Reset()
	}
	m.refresh()
}

func (m *Model) reset() {
	m.progress = 0
	m.history = nil
	m.session.Reset()
	m.refresh()
}

func (m *Model) refresh() {
	cfg := m.session.Window()
	m.t = cfg.Start + m.easing(m.progress)*(cfg.End-cfg.Start)

	frame, err := m.session.Frame(m.t)
	m.err = err
	if err != nil {
		return
	}
	m.frame = frame
	if len(frame.Positions) > 0 {
		m.history = append(m.history, frame.Positions[0].Current.X)
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView() + "\n")

	if m.err != nil {
		b.WriteString(panelStyle.Render(
			errStyle.Render("matrix unavailable")+"\n"+
				valueStyle.Render(m.err.Error())) + "\n")
		b.WriteString(m.helpView())
		return b.String()
	}

	b.WriteString(m.statusView() + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.matrixView()),
		panelStyle.Render(m.stateView())) + "\n")
	b.WriteString(panelStyle.Render(m.graphView()) + "\n")

	for _, w := range m.session.Warnings() {
		b.WriteString(warnStyle.Render("warning: "+w) + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) headerView() string {
	id := m.session.ID()
	if len(id) > 8 {
		id = id[:8]
	}
	info := fmt.Sprintf("  mode=%s", m.session.Mode())
	if act := m.session.Activation(); act != "" {
		info += fmt.Sprintf(" act=%s", act)
	}
	info += fmt.Sprintf("  session %s", id)
	return headerStyle.Render("MATRIX PATH") + labelStyle.Render(info)
}

func (m Model) statusView() string {
	status := statusRunStyle.Render("RUNNING")
	if m.paused {
		status = statusPauseStyle.Render("PAUSED ")
	}
	return fmt.Sprintf("%s  %s  %s",
		status,
		progressBar(m.progress, 24),
		valueStyle.Render(fmt.Sprintf("t=%7.4f  speed x%.2f", m.t, m.speed)))
}

func (m Model) matrixView() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("A^t") + "\n")
	for i := 0; i < 3; i++ {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%8.3f %8.3f %8.3f",
			m.frame.Matrix[i][0], m.frame.Matrix[i][1], m.frame.Matrix[i][2])) + "\n")
	}
	b.WriteString("\n" + accentStyle.Render("eigenvalues") + "\n")
	for i := range m.raw {
		b.WriteString(labelStyle.Render(fmt.Sprintf("λ%d ", i+1)) +
			valueStyle.Render(fmt.Sprintf("%-16s → %s", m.raw[i], m.frame.Values[i])) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) stateView() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("vectors") + "\n")
	for i, p := range m.frame.Positions {
		label := fmt.Sprintf("v%d", i)
		if i < len(m.specs) {
			label = m.specs[i].Label
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-6s", label)) +
			valueStyle.Render(fmt.Sprintf("(%8.3f, %8.3f, %8.3f)",
				p.Current.X, p.Current.Y, p.Current.Z)) + "\n")
	}

	totals := m.session.ContactTotals()
	total := 0
	walls := make([]string, 0, len(totals))
	for id, n := range totals {
		walls = append(walls, id)
		total += n
	}
	sort.Strings(walls)

	b.WriteString("\n" + accentStyle.Render(fmt.Sprintf("contacts  %d", total)) + "\n")
	if len(walls) == 0 {
		b.WriteString(labelStyle.Render("none yet") + "\n")
	}
	for _, id := range walls {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", id)) +
			valueStyle.Render(fmt.Sprintf("%d", totals[id])) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) graphView() string {
	if len(m.history) < 2 {
		return labelStyle.Render("collecting samples...")
	}
	width := m.width - 14
	if width > 60 {
		width = 60
	}
	if width < 30 {
		width = 30
	}
	caption := "x over the sweep"
	if len(m.specs) > 0 {
		caption = m.specs[0].Label + ".x over the sweep"
	}
	return graphStyle.Render(asciigraph.Plot(m.history,
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Caption(caption)))
}

func (m Model) helpView() string {
	return helpStyle.Render("space pause   r reset   +/- speed   q quit")
}

// Run blocks on the dashboard until the user quits.
func Run(s *scene.Session, easing Easing, speed float64, fps int) error {
	return tea.NewProgram(NewModel(s, easing, speed, fps), tea.WithAltScreen()).Start()
}
