// Package viz provides the interactive terminal explorer: tweak well
// parameters and watch the spectrum and eigenfunctions update.
package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avirni/qwell/internal/analysis"
	"github.com/avirni/qwell/internal/potential"
	"github.com/avirni/qwell/internal/solver"
)

const (
	graphWidth  = 70
	graphHeight = 10
)

// Model holds the current request, the latest solve result, and UI state.
type Model struct {
	req      solver.Request
	result   *solver.Result
	solveErr error
	shapes   []potential.Shape
	shapeIdx int
	selected int
}

// NewModel builds the explorer around an initial request and solves once
// so the first frame has data.
func NewModel(req solver.Request) Model {
	shapes := potential.Shapes()
	idx := 0
	for i, s := range shapes {
		if s == req.Shape {
			idx = i
			break
		}
	}

	m := Model{req: req, shapes: shapes, shapeIdx: idx}
	m.resolve()
	return m
}

func (m *Model) resolve() {
	m.result, m.solveErr = solver.Solve(context.Background(), m.req)
	if m.result != nil && m.selected >= m.result.Spectrum.States() {
		m.selected = m.result.Spectrum.States() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left":
		m.req.Amplitude = stepAmplitude(m.req.Amplitude, -1)
		m.resolve()
	case "right":
		m.req.Amplitude = stepAmplitude(m.req.Amplitude, 1)
		m.resolve()

	case "up":
		if m.result != nil && m.selected < m.result.Spectrum.States()-1 {
			m.selected++
		}
	case "down":
		if m.selected > 0 {
			m.selected--
		}

	case "+":
		m.req.States++
		m.resolve()
	case "-":
		if m.req.States > 1 {
			m.req.States--
			m.resolve()
		}

	case "tab":
		m.shapeIdx = (m.shapeIdx + 1) % len(m.shapes)
		m.req.Shape = m.shapes[m.shapeIdx]
		m.resolve()
	case "shift+tab":
		m.shapeIdx = (m.shapeIdx - 1 + len(m.shapes)) % len(m.shapes)
		m.req.Shape = m.shapes[m.shapeIdx]
		m.resolve()

	case "m":
		if m.req.Method == solver.MethodCoupling {
			m.req.Method = solver.MethodFiniteDifference
		} else {
			m.req.Method = solver.MethodCoupling
		}
		m.resolve()
	}

	return m, nil
}

// stepAmplitude moves by 10% of the current magnitude, with a floor so
// zero amplitude is still adjustable.
func stepAmplitude(a float64, dir float64) float64 {
	step := a * 0.1
	if step < 0 {
		step = -step
	}
	if step < 0.1 {
		step = 0.1
	}
	return a + dir*step
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("qwell explorer — %s", m.req.Shape.Name())))
	b.WriteString("\n")

	if m.solveErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("solve failed: %v", m.solveErr)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab: shape  ←/→: amplitude  q: quit"))
		return b.String()
	}

	stats := []string{
		statLine("shape", m.req.Shape.Name(), false),
		statLine("method", string(m.result.Method), false),
		statLine("amplitude", fmt.Sprintf("%.3f", m.req.Amplitude), true),
		statLine("states", fmt.Sprintf("%d", m.req.States), false),
		statLine("steps", fmt.Sprintf("%d", m.req.Steps), false),
		statLine("E(selected)", fmt.Sprintf("%.6f", m.result.Spectrum.Values[m.selected]), false),
		statLine("level", fmt.Sprintf("n=%d", m.selected), false),
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	_, v := m.result.Profile.Interior()
	b.WriteString(graphStyle.Render(asciigraph.Plot(v,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("potential V(x)"),
	)))
	b.WriteString("\n")

	density := analysis.Density(analysis.Normalize(m.result.Spectrum.Vectors[m.selected], m.result.Profile.X.Spacing()))
	b.WriteString(graphStyle.Render(asciigraph.Plot(density,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("|psi_%d(x)|^2   E=%.6f", m.selected, m.result.Spectrum.Values[m.selected])),
	)))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("tab: shape  ←/→: amplitude  ↑/↓: level  +/-: states  m: method  q: quit"))
	return b.String()
}

func statLine(label, value string, active bool) string {
	v := valueStyle.Render(value)
	if active {
		v = activeStyle.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), v)
}

// Run starts the explorer for the given request.
func Run(req solver.Request) error {
	p := tea.NewProgram(NewModel(req))
	_, err := p.Run()
	return err
}
