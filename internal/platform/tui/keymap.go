package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// KeyMap binds terminal keys to game actions.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrows/WASD movement, space to fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Fire, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Restart, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker rebuilds held-key state from key events.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until window ticks pass without another event for it.
type HoldTracker struct {
	window   int
	tick     int
	lastSeen map[core.Action]int
	pressed  map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold window in ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]int),
		pressed:  make(map[core.Action]bool),
	}
}

// Key records a key event for the upcoming tick.
// An event for a key that is still held is an auto-repeat: it extends the
// hold but is not a new press.
func (h *HoldTracker) Key(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !h.held(a) {
		h.pressed[a] = true
	}
	h.lastSeen[a] = h.tick
}

func (h *HoldTracker) held(a core.Action) bool {
	seen, ok := h.lastSeen[a]
	return ok && h.tick-seen < h.window
}

// Frame returns the input for the current tick and moves to the next one.
// Opposite directions cancel out in favour of the most recent key.
func (h *HoldTracker) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		if h.tick-seen < h.window {
			in.Hold(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	for a := range h.pressed {
		in.Press(a)
	}

	h.resolve(&in, core.ActionLeft, core.ActionRight)
	h.resolve(&in, core.ActionUp, core.ActionDown)

	clear(h.pressed)
	h.tick++
	return in
}

// resolve keeps only the more recently seen of two opposing held actions.
func (h *HoldTracker) resolve(in *core.InputFrame, a, b core.Action) {
	if !in.IsHeld(a) || !in.IsHeld(b) {
		return
	}
	if h.lastSeen[a] >= h.lastSeen[b] {
		delete(in.Held, b)
		delete(h.lastSeen, b)
	} else {
		delete(in.Held, a)
		delete(h.lastSeen, a)
	}
}

// Reset forgets all keys.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
	clear(h.pressed)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
