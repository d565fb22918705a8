package loop

import (
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// Autopilot is a headless Backend that sweeps the ship from side to side
// while firing. It requests quit after MaxTicks polls when MaxTicks > 0.
type Autopilot struct {
	MaxTicks  int
	SweepTick int // Ticks per sweep direction, default 45

	ticks    int
	frames   int
	last     core.GameState
	gameOver bool
}

// NewAutopilot creates an autopilot that quits after maxTicks polls.
func NewAutopilot(maxTicks int) *Autopilot {
	return &Autopilot{MaxTicks: maxTicks, SweepTick: 45}
}

// Poll returns the next scripted input.
func (a *Autopilot) Poll() core.InputFrame {
	a.ticks++
	in := core.NewInputFrame()
	if a.MaxTicks > 0 && a.ticks > a.MaxTicks {
		in.Press(core.ActionQuit)
		return in
	}

	sweep := a.SweepTick
	if sweep <= 0 {
		sweep = 45
	}
	if (a.ticks/sweep)%2 == 0 {
		in.Hold(core.ActionLeft)
	} else {
		in.Hold(core.ActionRight)
	}
	in.Press(core.ActionFire)
	return in
}

// Present records the latest state.
func (a *Autopilot) Present(f shooter.Frame, s core.GameState) error {
	a.frames++
	a.last = s
	if f.Overlay != nil {
		a.gameOver = true
	}
	return nil
}

// Last returns the most recently presented state.
func (a *Autopilot) Last() core.GameState {
	return a.last
}

// Frames returns how many frames were presented.
func (a *Autopilot) Frames() int {
	return a.frames
}

// SawGameOver reports whether a game-over overlay was presented.
func (a *Autopilot) SawGameOver() bool {
	return a.gameOver
}
