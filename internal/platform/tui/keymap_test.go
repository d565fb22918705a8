package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(3)
	h.Key(core.ActionLeft)

	in := h.Frame()
	if !in.IsHeld(core.ActionLeft) || !in.WasPressed(core.ActionLeft) {
		t.Fatalf("first frame: held=%v pressed=%v, expected both", in.IsHeld(core.ActionLeft), in.WasPressed(core.ActionLeft))
	}

	for i := 1; i < 3; i++ {
		in = h.Frame()
		if !in.IsHeld(core.ActionLeft) {
			t.Errorf("frame %d: expected left still held", i)
		}
		if in.WasPressed(core.ActionLeft) {
			t.Errorf("frame %d: press should only be reported once", i)
		}
	}

	if in = h.Frame(); in.IsHeld(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(2)
	h.Key(core.ActionFire)

	for i := 0; i < 10; i++ {
		if in := h.Frame(); !in.IsHeld(core.ActionFire) {
			t.Fatalf("frame %d: auto-repeat should keep fire held", i)
		}
		h.Key(core.ActionFire)
	}
}

func TestHoldTrackerRepeatIsNotPress(t *testing.T) {
	h := NewHoldTracker(8)

	presses := 0
	for tick := 0; tick < 60; tick++ {
		if tick%2 == 0 {
			h.Key(core.ActionFire)
		}
		in := h.Frame()
		if !in.IsHeld(core.ActionFire) {
			t.Fatalf("tick %d: fire should stay held through auto-repeat", tick)
		}
		if in.WasPressed(core.ActionFire) {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("pressed frames = %d, expected 1 for one physical hold", presses)
	}

	for i := 0; i < 8; i++ {
		h.Frame()
	}
	h.Key(core.ActionFire)
	if in := h.Frame(); !in.WasPressed(core.ActionFire) {
		t.Error("key after release should count as a new press")
	}
}

func TestHoldTrackerClassicFire(t *testing.T) {
	g, err := shooter.New(config.Classic())
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{Seed: 7})
	h := NewHoldTracker(config.Classic().Terminal.HoldTicks)

	// Space goes down once the cooldown has passed and auto-repeats for 2s.
	shots := 0
	for tick := 0; tick < 140; tick++ {
		if tick >= 20 && tick%2 == 0 {
			h.Key(core.ActionFire)
		}
		res := g.Step(h.Frame())
		if res.Fired {
			shots++
		}
		if res.State.GameOver {
			break
		}
	}
	if shots > 1 {
		t.Errorf("shots = %d, expected at most 1 while fire is held in press mode", shots)
	}
}

func TestHoldTrackerOpposites(t *testing.T) {
	h := NewHoldTracker(5)
	h.Key(core.ActionLeft)
	h.Frame()
	h.Key(core.ActionRight)

	in := h.Frame()
	if in.IsHeld(core.ActionLeft) || !in.IsHeld(core.ActionRight) {
		t.Errorf("held left=%v right=%v, expected only the latest direction", in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight))
	}

	// Left stays released even though its window has not expired.
	if in = h.Frame(); in.IsHeld(core.ActionLeft) {
		t.Error("cancelled direction came back")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(5)
	h.Key(core.ActionUp)
	h.Reset()
	if in := h.Frame(); in.IsHeld(core.ActionUp) || in.WasPressed(core.ActionUp) {
		t.Error("Reset should forget pending keys")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.want)
		}
	}
}
