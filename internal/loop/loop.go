// Package loop drives a shooter session through its Running, GameOver and
// Terminated states. Frontends feed it one input frame per tick and draw the
// frames it hands back.
package loop

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// State is the session phase.
type State int

const (
	Running State = iota
	GameOver
	Terminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Result reports what one tick did.
type Result struct {
	State  State
	Step   core.StepResult
	Redraw bool // The frame changed and should be presented
}

// Loop owns the session state machine around a Game.
type Loop struct {
	game    *shooter.Game
	wall    core.Clock
	log     *log.Logger
	runtime core.RuntimeConfig

	state    State
	overAt   int64 // Wall time the game-over hold started
	restarts int
}

// New creates a loop for game. wall times the game-over hold.
// rt.Seed must already be resolved; restarts derive their seeds from it.
func New(game *shooter.Game, wall core.Clock, logger *log.Logger, rt core.RuntimeConfig) *Loop {
	if rt.TickRate <= 0 {
		rt.TickRate = game.Config().TickRate
	}
	return &Loop{
		game:    game,
		wall:    wall,
		log:     logger,
		runtime: rt,
		state:   Terminated,
	}
}

// Start resets the game and enters Running.
func (l *Loop) Start() {
	l.game.Reset(l.runtime)
	l.state = Running
	l.log.Info("session started",
		"variant", l.game.Config().Variant,
		"seed", l.runtime.Seed,
		"tick_rate", l.runtime.TickRate)
}

// Tick advances the state machine by one tick.
func (l *Loop) Tick(in core.InputFrame) Result {
	if l.state == Terminated {
		return Result{State: Terminated}
	}

	if in.IsHeld(core.ActionQuit) {
		l.terminate("quit")
		return Result{State: l.state, Step: core.StepResult{State: l.game.State()}}
	}

	switch l.state {
	case Running:
		res := l.game.Step(in)
		if res.State.GameOver {
			l.state = GameOver
			l.overAt = l.wall.NowMillis()
			l.log.Info("game over",
				"score", res.State.Score,
				"high_score", res.State.HighScore,
				"tick", res.State.Tick)
		}
		return Result{State: l.state, Step: res, Redraw: true}

	case GameOver:
		if l.game.Config().GameOver.AllowRestart && in.WasPressed(core.ActionRestart) {
			l.restart()
			return Result{State: l.state, Step: core.StepResult{State: l.game.State()}, Redraw: true}
		}
		if l.wall.NowMillis()-l.overAt >= int64(l.game.Config().GameOver.HoldMs) {
			l.terminate("hold elapsed")
		}
		return Result{State: l.state, Step: core.StepResult{State: l.game.State()}}
	}

	return Result{State: l.state}
}

func (l *Loop) restart() {
	l.restarts++
	rt := l.runtime
	rt.Seed += int64(l.restarts)
	l.game.Reset(rt)
	l.state = Running
	l.log.Info("session restarted",
		"restarts", l.restarts,
		"high_score", l.game.State().HighScore)
}

func (l *Loop) terminate(reason string) {
	s := l.game.State()
	l.state = Terminated
	l.log.Info("session ended",
		"reason", reason,
		"score", s.Score,
		"high_score", s.HighScore)
}

// State returns the current phase.
func (l *Loop) State() State {
	return l.state
}

// GameState returns the game's score snapshot.
func (l *Loop) GameState() core.GameState {
	return l.game.State()
}

// Frame renders the current game state.
func (l *Loop) Frame() shooter.Frame {
	return l.game.Render()
}

// TickRate returns the ticks per second the loop was configured with.
func (l *Loop) TickRate() int {
	return l.runtime.TickRate
}

// Config returns the game's configuration.
func (l *Loop) Config() config.ShooterConfig {
	return l.game.Config()
}
