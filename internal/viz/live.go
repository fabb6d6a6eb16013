package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/clothlab/internal/config"
	"github.com/san-kum/clothlab/internal/driver"
	"github.com/san-kum/clothlab/internal/metrics"
)

const (
	canvasWidth  = 80
	canvasHeight = 30
	historyCap   = 600

	// Canvas placement within the rendered view; mouse cell coordinates
	// are translated relative to this.
	canvasTop  = 2
	canvasLeft = 0
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model is the bubbletea front-end: it owns the cadence, translates mouse
// events into the driver's pointer hooks, and renders the mesh each frame.
type Model struct {
	cfg      *config.Config
	drv      *driver.Driver
	canvas   *Canvas
	stretch  *metrics.StretchError
	kinetic  *metrics.KineticEnergy
	finite   *metrics.Finite
	history  []float64
	running  bool
	dragging bool
	showHelp bool
}

func NewModel(cfg *config.Config) Model {
	view := Viewport{MaxX: float64(cfg.Width), MaxY: float64(cfg.Height)}
	return Model{
		cfg:     cfg,
		drv:     driver.New(cfg.Mesh(), cfg.Params(), cfg.PickRadius),
		canvas:  NewCanvas(canvasWidth, canvasHeight, view),
		stretch: metrics.NewStretchError(),
		kinetic: metrics.NewKineticEnergy(),
		finite:  metrics.NewFinite(),
		history: make([]float64, 0, historyCap),
		running: true,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.Dt*float64(time.Second)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tickCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.drv = driver.New(m.cfg.Mesh(), m.cfg.Params(), m.cfg.PickRadius)
			m.history = m.history[:0]
			m.stretch.Reset()
			m.kinetic.Reset()
			m.finite.Reset()
			m.dragging = false
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.MouseMsg:
		pt := m.canvas.WorldAt(msg.X-canvasLeft, msg.Y-canvasTop)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.drv.OnPointerDown(pt)
				m.dragging = true
			}
		case tea.MouseActionMotion:
			if m.dragging {
				m.drv.OnPointerDrag(pt)
			}
		case tea.MouseActionRelease:
			m.drv.OnPointerUp()
			m.dragging = false
		}

	case TickMsg:
		if m.running {
			m.drv.OnTick()
			mesh := m.drv.Mesh()
			m.stretch.Observe(mesh, m.drv.Tick())
			m.kinetic.Observe(mesh, m.drv.Tick())
			m.finite.Observe(mesh, m.drv.Tick())
			m.history = append(m.history, m.stretch.Value())
			if len(m.history) > historyCap {
				m.history = m.history[1:]
			}
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawMesh(m.drv.Mesh())

	var s strings.Builder
	s.WriteString(headerStyle.Render("CLOTHLAB") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if sel, ok := m.drv.Selected(); ok {
		status += fmt.Sprintf("  dragging particle %d", sel)
	}
	s.WriteString(statusStyle.Render(status) + "\n")

	s.WriteString(m.canvas.String())
	s.WriteString(m.statsView())

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(70),
			asciigraph.Caption("stretch error"),
		)
		s.WriteString("\n" + graphStyle.Render(graph) + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("\nclick: grab particle  drag: move it  space: pause  r: reset  q: quit\n"))
	} else {
		s.WriteString(helpStyle.Render("\n? for help\n"))
	}
	return s.String()
}

func (m Model) statsView() string {
	mesh := m.drv.Mesh()
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(row("tick", fmt.Sprintf("%d", m.drv.Tick())))
	s.WriteString(row("grid", fmt.Sprintf("%dx%d (%d constraints)", mesh.Rows, mesh.Cols, len(mesh.Constraints))))
	s.WriteString(row("stretch err", fmt.Sprintf("%.5f (max %.5f)", m.stretch.Value(), m.stretch.Max())))
	s.WriteString(row("kinetic", fmt.Sprintf("%.3f", m.kinetic.Value())))
	if m.finite.Value() > 0 {
		s.WriteString(alertStyle.Render(fmt.Sprintf("DIVERGED: %d non-finite particles", int(m.finite.Value()))) + "\n")
	}
	return s.String()
}

// RunLive starts the terminal front-end with mouse reporting enabled.
func RunLive(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
