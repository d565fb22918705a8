// Package shooter implements the space shooter simulation.
// The player moves a ship along the screen and fires upward at a fixed pool
// of descending enemies; touching an enemy ends the session.
package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Kind tags what an Entity represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindStar
)

// String returns the kind name used in logs and tests.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is a moving rectangle in world pixels.
// Behavior is selected by Kind in the motion and collision functions.
type Entity struct {
	ID    uint64
	Kind  Kind
	X, Y  int // Top-left corner
	W, H  int
	DX    int // Horizontal velocity per tick
	DY    int // Vertical velocity per tick, positive is down
	Alive bool

	Brightness uint8 // Stars only
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}
