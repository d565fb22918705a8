package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// HUD placement in world pixels.
const (
	hudMargin   = 10
	hudBaseline = 10
)

// Game holds one shooter session.
type Game struct {
	cfg     config.ShooterConfig
	palette config.Palette
	runtime core.RuntimeConfig

	spawner *Spawner
	clock   *core.StepClock

	player  Entity
	enemies []Entity // Fixed-size pool, one slot per enemy
	bullets []Entity
	stars   []Entity

	score     int
	highScore int
	gameOver  bool
	lastShot  int64 // Simulation time of the last shot in ms
}

// New creates a game for the given configuration.
// The configuration is validated; call Reset before the first Step.
func New(cfg config.ShooterConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, palette: palette}, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset starts a new session. The high score survives resets.
// A zero TickRate in rt falls back to the configured tick rate.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = g.cfg.TickRate
	}
	g.runtime = rt
	g.spawner = NewSpawner(g.cfg, rt.Seed)
	g.clock = core.NewStepClock(rt.TickRate)

	g.player = g.spawner.Player()

	g.enemies = make([]Entity, g.cfg.Enemies.Count)
	for i := range g.enemies {
		g.enemies[i] = g.spawner.Enemy()
	}

	g.bullets = g.bullets[:0]

	g.stars = g.stars[:0]
	if g.cfg.Starfield.Enabled {
		for i := 0; i < g.cfg.Starfield.Count; i++ {
			g.stars = append(g.stars, g.spawner.Star())
		}
	}

	g.score = 0
	g.gameOver = false
	g.lastShot = g.clock.NowMillis()
}

// Step advances the game by one tick.
// Order: shoot, move, resolve hits, check the player.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	fired := g.shoot(in)

	w := &world{
		width:       g.cfg.Screen.Width,
		height:      g.cfg.Screen.Height,
		playerSpeed: g.cfg.Player.Speed,
		input:       in,
		spawner:     g.spawner,
	}
	update(&g.player, w)
	for i := range g.enemies {
		update(&g.enemies[i], w)
	}
	for i := range g.bullets {
		update(&g.bullets[i], w)
	}
	for i := range g.stars {
		update(&g.stars[i], w)
	}

	hits := resolveHits(g.enemies, g.bullets, g.spawner)
	g.score += hits
	g.bullets = compact(g.bullets)

	if playerHit(g.player, g.enemies) {
		g.gameOver = true
		if g.score > g.highScore {
			g.highScore = g.score
		}
	}

	return core.StepResult{State: g.State(), Hits: hits, Fired: fired}
}

// shoot emits a bullet if the fire trigger is active and the cooldown has
// elapsed since the last shot.
func (g *Game) shoot(in core.InputFrame) bool {
	trigger := in.WasPressed(core.ActionFire)
	if g.cfg.Weapon.FireMode == config.FireHeld {
		trigger = in.IsHeld(core.ActionFire)
	}
	if !trigger {
		return false
	}

	now := g.clock.NowMillis()
	if now-g.lastShot <= int64(g.cfg.Weapon.CooldownMs) {
		return false
	}
	g.lastShot = now
	g.bullets = append(g.bullets, g.spawner.Bullet(g.player))
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	hs := g.highScore
	if g.score > hs {
		hs = g.score
	}
	var tick int
	if g.clock != nil {
		tick = int(g.clock.Ticks())
	}
	return core.GameState{
		Score:     g.score,
		HighScore: hs,
		GameOver:  g.gameOver,
		Tick:      tick,
	}
}

// Render builds the draw list for the current state.
func (g *Game) Render() Frame {
	f := Frame{
		Width:      g.cfg.Screen.Width,
		Height:     g.cfg.Screen.Height,
		Background: core.ColorBlack,
		Rects:      make([]DrawCmd, 0, 1+len(g.enemies)+len(g.bullets)+len(g.stars)),
	}

	for _, s := range g.stars {
		f.Rects = append(f.Rects, DrawCmd{Rect: s.Rect(), Color: core.Gray(s.Brightness), Kind: KindStar})
	}
	f.Rects = append(f.Rects, DrawCmd{Rect: g.player.Rect(), Color: g.palette.Player, Kind: KindPlayer})
	for _, e := range g.enemies {
		f.Rects = append(f.Rects, DrawCmd{Rect: e.Rect(), Color: g.palette.Enemy, Kind: KindEnemy})
	}
	for _, b := range g.bullets {
		f.Rects = append(f.Rects, DrawCmd{Rect: b.Rect(), Color: g.palette.Bullet, Kind: KindBullet})
	}

	f.Texts = append(f.Texts, TextCmd{
		X: hudMargin, Y: hudBaseline,
		Text:  fmt.Sprintf("Score: %d", g.score),
		Color: g.palette.Text,
	})
	if g.cfg.HUD.ShowHighScore {
		f.Texts = append(f.Texts, TextCmd{
			X: g.cfg.Screen.Width - hudMargin, Y: hudBaseline,
			Text:  fmt.Sprintf("High Score: %d", g.State().HighScore),
			Color: g.palette.Text,
			Align: AlignRight,
		})
	}

	if g.gameOver {
		o := &Overlay{
			Title:     "GAME OVER",
			Lines:     []string{fmt.Sprintf("Final Score: %d", g.score)},
			Color:     g.palette.GameOver,
			LineColor: g.palette.Text,
		}
		if g.cfg.GameOver.AllowRestart {
			o.Lines = append(o.Lines, "Press R to restart")
			o.Button = &Button{
				Rect:   restartButton(g.cfg.Screen.Width, g.cfg.Screen.Height),
				Label:  "RESTART (R)",
				Color:  g.palette.Player,
				Action: core.ActionRestart,
			}
		}
		f.Overlay = o
	}

	return f
}

// restartButton sits centred below the overlay lines.
func restartButton(width, height int) core.Rect {
	return core.NewRect(width/2-100, height/2+80, 200, 40)
}

// Player returns a copy of the player entity.
func (g *Game) Player() Entity {
	return g.player
}

// Enemies returns a copy of the enemy pool.
func (g *Game) Enemies() []Entity {
	return append([]Entity(nil), g.enemies...)
}

// Bullets returns a copy of the live bullets.
func (g *Game) Bullets() []Entity {
	return append([]Entity(nil), g.bullets...)
}

// Stars returns a copy of the starfield.
func (g *Game) Stars() []Entity {
	return append([]Entity(nil), g.stars...)
}
