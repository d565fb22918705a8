package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// Backend supplies input and displays frames for Run.
type Backend interface {
	// Poll returns the input for the next tick.
	Poll() core.InputFrame

	// Present shows a frame.
	Present(f shooter.Frame, s core.GameState) error
}

// stepper is implemented by clocks that advance once per tick.
type stepper interface {
	Advance()
}

// Run drives the loop until it terminates or ctx is cancelled.
// With pace set, ticks are spaced 1/TickRate apart in real time; otherwise
// they run back to back. A wall clock that implements Advance is stepped
// once per tick, so a tick-derived clock makes the game-over hold
// independent of real time.
func (l *Loop) Run(ctx context.Context, b Backend, pace bool) error {
	if l.state == Terminated {
		l.Start()
	}
	if err := b.Present(l.Frame(), l.GameState()); err != nil {
		return fmt.Errorf("loop: present: %w", err)
	}

	var tick <-chan time.Time
	if pace {
		ticker := time.NewTicker(time.Second / time.Duration(l.runtime.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	adv, _ := l.wall.(stepper)
	for {
		select {
		case <-ctx.Done():
			l.terminate("cancelled")
			return ctx.Err()
		default:
		}

		if adv != nil {
			adv.Advance()
		}

		res := l.Tick(b.Poll())
		if res.Redraw {
			if err := b.Present(l.Frame(), res.Step.State); err != nil {
				return fmt.Errorf("loop: present: %w", err)
			}
		}
		if res.State == Terminated {
			return nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				l.terminate("cancelled")
				return ctx.Err()
			case <-tick:
			}
		}
	}
}
