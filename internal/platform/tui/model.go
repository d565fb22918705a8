package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for a shooter session.
type Model struct {
	loop   *loop.Loop
	keys   KeyMap
	help   help.Model
	holds  *HoldTracker
	screen *core.Screen
	styles styleCache
	frame  shooter.Frame

	quitting bool
}

// NewModel creates a model for l sized to a width x height terminal.
// The bottom line is reserved for the key help.
func NewModel(l *loop.Loop, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		loop:   l,
		keys:   DefaultKeyMap(),
		help:   h,
		holds:  NewHoldTracker(l.Config().Terminal.HoldTicks),
		screen: core.NewScreen(width, core.Max(height-1, 1)),
		styles: make(styleCache),
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	if m.loop.State() == loop.Terminated {
		m.loop.Start()
	}
	return tickCmd(m.loop.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds the key to the hold tracker. Quit is applied at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		in := core.NewInputFrame()
		in.Press(core.ActionQuit)
		m.loop.Tick(in)
		m.quitting = true
		return m, tea.Quit
	}
	m.holds.Key(action)
	return m, nil
}

// handleTick advances the loop by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.loop.Tick(m.holds.Frame())
	if res.State == loop.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	if res.Redraw || m.frame.Width == 0 {
		m.frame = m.loop.Frame()
		if res.State == loop.Running && res.Step.State.Tick == 0 {
			// Fresh session after a restart.
			m.holds.Reset()
		}
	}
	return m, tickCmd(m.loop.TickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.frame
	if frame.Width == 0 {
		frame = m.loop.Frame()
	}
	Rasterize(frame, m.screen)
	return renderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for l.
func Run(l *loop.Loop, width, height int) error {
	p := tea.NewProgram(
		NewModel(l, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
