package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// DrawCmd fills a rectangle in world pixels.
type DrawCmd struct {
	Rect  core.Rect
	Color core.Color
	Kind  Kind
}

// Align anchors a TextCmd horizontally.
type Align int

const (
	AlignLeft  Align = iota // X is the left edge
	AlignRight              // X is the right edge
)

// TextCmd draws a line of HUD text.
type TextCmd struct {
	X, Y  int
	Text  string
	Color core.Color
	Align Align
}

// Overlay is a block of lines centred on the screen.
type Overlay struct {
	Title     string
	Lines     []string
	Color     core.Color // Title
	LineColor core.Color
	Button    *Button // Nil unless the overlay offers a clickable action
}

// Button is a clickable area that triggers an action in pointer-driven
// frontends.
type Button struct {
	Rect   core.Rect
	Label  string
	Color  core.Color
	Action core.Action
}

// Frame is everything a frontend needs to draw one tick.
// Rects are in painting order: stars, player, enemies, bullets.
type Frame struct {
	Width, Height int
	Background    core.Color
	Rects         []DrawCmd
	Texts         []TextCmd
	Overlay       *Overlay
}

// Count returns how many rectangles of the given kind are in the frame.
func (f Frame) Count(k Kind) int {
	n := 0
	for _, r := range f.Rects {
		if r.Kind == k {
			n++
		}
	}
	return n
}
