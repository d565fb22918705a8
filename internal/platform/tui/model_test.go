package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

func newTestModel(t *testing.T) (Model, *loop.Loop) {
	t.Helper()
	g, err := shooter.New(config.Classic())
	if err != nil {
		t.Fatal(err)
	}
	l := loop.New(g, &core.ManualClock{}, log.New(io.Discard), core.RuntimeConfig{Seed: 1})
	m := NewModel(l, 80, 25)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule the first tick")
	}
	return m, l
}

func TestModelMovesOnKey(t *testing.T) {
	m, l := newTestModel(t)
	before := l.Frame()

	next, _ := m.Update(runeKey('a'))
	next, cmd := next.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule another tick")
	}

	after := l.Frame()
	var x0, x1 int
	for _, r := range before.Rects {
		if r.Kind == shooter.KindPlayer {
			x0 = r.Rect.X
		}
	}
	for _, r := range after.Rects {
		if r.Kind == shooter.KindPlayer {
			x1 = r.Rect.X
		}
	}
	if x1 != x0-config.Classic().Player.Speed {
		t.Errorf("player x = %d, expected %d after one tick of left", x1, x0-config.Classic().Player.Speed)
	}

	view := next.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View() missing score:\n%s", view)
	}
	if !strings.Contains(view, "fire") {
		t.Errorf("View() missing help footer:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m, l := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if l.State() != loop.Terminated {
		t.Errorf("loop state = %s, expected terminated", l.State())
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})

	mm := next.(Model)
	if mm.screen.Width() != 40 || mm.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, expected 40x10", mm.screen.Width(), mm.screen.Height())
	}
}
