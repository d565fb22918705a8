package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
)

// Glyphs used for each entity kind.
var kindRunes = map[shooter.Kind]rune{
	shooter.KindPlayer: '█',
	shooter.KindEnemy:  '▓',
	shooter.KindBullet: '│',
	shooter.KindStar:   '·',
}

// Rasterize draws a frame onto dst, scaling world pixels to cells.
// Every visible rectangle covers at least one cell.
func Rasterize(f shooter.Frame, dst *core.Screen) {
	dst.Clear()
	cw, ch := dst.Width(), dst.Height()
	if cw == 0 || ch == 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	for _, cmd := range f.Rects {
		r := cmd.Rect
		x0, x1 := scaleSpan(r.X, r.Right(), f.Width, cw)
		y0, y1 := scaleSpan(r.Y, r.Bottom(), f.Height, ch)
		if x0 >= x1 || y0 >= y1 {
			continue
		}
		dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), kindRunes[cmd.Kind], cmd.Color)
	}

	for _, t := range f.Texts {
		x := t.X * cw / f.Width
		y := t.Y * ch / f.Height
		if t.Align == shooter.AlignRight {
			x -= len([]rune(t.Text))
		}
		dst.DrawText(x, y, t.Text, t.Color)
	}

	if f.Overlay != nil {
		drawOverlay(dst, f.Overlay)
	}
}

// scaleSpan maps the world interval [lo, hi) onto [0, cells) and clips it.
func scaleSpan(lo, hi, world, cells int) (int, int) {
	a := floorDiv(lo*cells, world)
	b := ceilDiv(hi*cells, world)
	if b == a && hi > lo {
		b = a + 1
	}
	return core.Clamp(a, 0, cells), core.Clamp(b, 0, cells)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// drawOverlay centres a boxed message on the screen.
func drawOverlay(dst *core.Screen, o *shooter.Overlay) {
	lines := append([]string{o.Title, ""}, o.Lines...)
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', o.Color)
	dst.DrawBox(box, o.Color)
	for i, l := range lines {
		col := o.LineColor
		if i == 0 {
			col = o.Color
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l, col)
	}
}

// styleCache holds one lipgloss style per color.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(col core.Color) lipgloss.Style {
	s, ok := c[col]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		c[col] = s
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, make(styleCache))
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.Colored {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start.Color).Render(run.String()))
		}
	}
	return sb.String()
}
