package viz

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mandelterm/internal/input"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/view"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))

// Model is the Bubble Tea model for one viewing session.
type Model struct {
	ctrl     *view.Controller
	keys     input.KeyMap
	renderer *render.Renderer
	size     render.Size
	gray     bool
	quitting bool
	logger   *slog.Logger
}

func NewModel(ctrl *view.Controller, renderer *render.Renderer, gray bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		ctrl:     ctrl,
		keys:     input.DefaultKeyMap(),
		renderer: renderer,
		gray:     gray,
		logger:   logger,
	}
}

func (m Model) Init() tea.Cmd { return tea.ClearScreen }

// Update applies key presses and resizes to the view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.ctrl.Handle(m.keys.Event(msg)) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.size = render.Size{Width: msg.Width, Height: msg.Height}
		m.ctrl.Handle(view.EventResize)
		m.logger.Debug("resize", slog.Int("width", msg.Width), slog.Int("height", msg.Height))
	}
	return m, nil
}

// View renders the full fractal for the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	f := m.renderer.Render(m.size, m.ctrl.State())

	status := f.Status
	if !m.gray {
		status = statusStyle.Render(status)
	}
	return f.Body + status
}

// Run takes over the terminal until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
