package shooter

import (
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/config"
)

// Spawner creates entities with randomized starting state.
// All randomness of a session flows through its RNG so a seed reproduces a run.
type Spawner struct {
	rng    *rand.Rand
	nextID uint64
	cfg    config.ShooterConfig
}

// NewSpawner creates a spawner for the given configuration and seed.
func NewSpawner(cfg config.ShooterConfig, seed int64) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// RandRange returns a random integer in [lo, hi).
// An empty range yields lo.
func (s *Spawner) RandRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

func (s *Spawner) pick(r config.Range) int {
	return s.RandRange(r.Min, r.Max)
}

func (s *Spawner) id() uint64 {
	s.nextID++
	return s.nextID
}

// Player places the ship at the bottom centre of the screen.
func (s *Spawner) Player() Entity {
	p := s.cfg.Player
	return Entity{
		ID:    s.id(),
		Kind:  KindPlayer,
		X:     s.cfg.Screen.Width/2 - p.Width/2,
		Y:     s.cfg.Screen.Height - p.BottomMargin - p.Height,
		W:     p.Width,
		H:     p.Height,
		Alive: true,
	}
}

// Enemy creates a new enemy above the screen.
func (s *Spawner) Enemy() Entity {
	e := Entity{
		ID:    s.id(),
		Kind:  KindEnemy,
		W:     s.cfg.Enemies.Width,
		H:     s.cfg.Enemies.Height,
		Alive: true,
	}
	s.Respawn(&e)
	return e
}

// Respawn moves an enemy back above the screen with fresh speeds.
// The enemy keeps its identity.
func (s *Spawner) Respawn(e *Entity) {
	ec := s.cfg.Enemies
	e.X = s.RandRange(0, s.cfg.Screen.Width-e.W)
	e.Y = s.pick(ec.SpawnY)
	e.DX = s.pick(ec.SpeedX)
	e.DY = s.pick(ec.SpeedY)
}

// Bullet creates a bullet centred on the shooter's top edge, moving up.
func (s *Spawner) Bullet(from Entity) Entity {
	w := s.cfg.Weapon
	return Entity{
		ID:    s.id(),
		Kind:  KindBullet,
		X:     from.Rect().CenterX() - w.BulletWidth/2,
		Y:     from.Y - w.BulletHeight,
		W:     w.BulletWidth,
		H:     w.BulletHeight,
		DY:    -w.BulletSpeed,
		Alive: true,
	}
}

// Star creates a background star anywhere on screen.
func (s *Spawner) Star() Entity {
	sc := s.cfg.Starfield
	size := s.pick(sc.Size)
	return Entity{
		ID:         s.id(),
		Kind:       KindStar,
		X:          s.RandRange(0, s.cfg.Screen.Width),
		Y:          s.RandRange(0, s.cfg.Screen.Height),
		W:          size,
		H:          size,
		DY:         s.pick(sc.Speed),
		Alive:      true,
		Brightness: uint8(s.pick(sc.Brightness)),
	}
}
