package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// world is what the motion functions need besides the entity itself.
type world struct {
	width, height int
	playerSpeed   int
	input         core.InputFrame
	spawner       *Spawner
}

// update advances one entity by a single tick.
func update(e *Entity, w *world) {
	if !e.Alive {
		return
	}
	switch e.Kind {
	case KindPlayer:
		movePlayer(e, w)
	case KindEnemy:
		moveEnemy(e, w)
	case KindBullet:
		moveBullet(e)
	case KindStar:
		moveStar(e, w)
	}
}

// movePlayer steers from the held direction keys and keeps the ship on screen.
func movePlayer(p *Entity, w *world) {
	dx, dy := 0, 0
	if w.input.IsHeld(core.ActionRight) {
		dx++
	}
	if w.input.IsHeld(core.ActionLeft) {
		dx--
	}
	if w.input.IsHeld(core.ActionDown) {
		dy++
	}
	if w.input.IsHeld(core.ActionUp) {
		dy--
	}
	p.DX = dx * w.playerSpeed
	p.DY = dy * w.playerSpeed

	p.X = core.Clamp(p.X+p.DX, 0, w.width-p.W)
	p.Y = core.Clamp(p.Y+p.DY, 0, w.height-p.H)
}

// moveEnemy drifts an enemy and sends it back to the top once it has left
// the screen below or to either side.
func moveEnemy(e *Entity, w *world) {
	e.X += e.DX
	e.Y += e.DY
	if e.Y > w.height || e.X+e.W < 0 || e.X > w.width {
		w.spawner.Respawn(e)
	}
}

// moveBullet flies upward and dies once fully above the screen.
func moveBullet(b *Entity) {
	b.Y += b.DY
	if b.Y+b.H < 0 {
		b.Alive = false
	}
}

// moveStar falls and wraps to the top at a new column.
func moveStar(s *Entity, w *world) {
	s.Y += s.DY
	if s.Y > w.height {
		s.Y = 0
		s.X = w.spawner.RandRange(0, w.width)
	}
}

// compact drops dead entities in place, preserving order.
func compact(es []Entity) []Entity {
	n := 0
	for _, e := range es {
		if e.Alive {
			es[n] = e
			n++
		}
	}
	clear(es[n:])
	return es[:n]
}
