// Package window runs the space shooter in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/games/shooter"
	"github.com/vovakirdan/space-shooter/internal/loop"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const (
	titleScale   = 4 // Overlay title magnification
	lineSpacing  = 8 // Extra pixels between overlay lines
	overlayAlpha = 0xb0
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// Options tune the window.
type Options struct {
	Title   string
	ShowTPS bool // Print the measured tick rate in the corner
}

// Game adapts a loop to ebiten.Game.
type Game struct {
	loop  *loop.Loop
	opts  Options
	frame shooter.Frame
}

// New wraps l for Ebitengine. The loop is started if it is not running.
func New(l *loop.Loop, opts Options) *Game {
	if l.State() == loop.Terminated {
		l.Start()
	}
	return &Game{loop: l, opts: opts, frame: l.Frame()}
}

// pollInput reads the keyboard and overlay button clicks into an input frame.
func (g *Game) pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Press(action)
			}
			if ebiten.IsKeyPressed(k) {
				in.Hold(action)
			}
		}
	}
	if o := g.frame.Overlay; o != nil && o.Button != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); o.Button.Rect.Contains(x, y) {
			in.Press(o.Button.Action)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		in.Press(core.ActionQuit)
	}
	return in
}

// Update advances the loop by one tick.
func (g *Game) Update() error {
	res := g.loop.Tick(g.pollInput())
	if res.State == loop.Terminated {
		return ebiten.Termination
	}
	if res.Redraw {
		g.frame = g.loop.Frame()
	}
	return nil
}

// Draw paints the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.frame
	screen.Fill(f.Background.ToRGBA())

	for _, cmd := range f.Rects {
		r := cmd.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cmd.Color.ToRGBA(), false)
	}

	for _, t := range f.Texts {
		x := float64(t.X)
		if t.Align == shooter.AlignRight {
			x -= text.Advance(t.Text, fontFace)
		}
		drawText(screen, t.Text, x, float64(t.Y), 1, t.Color)
	}

	if f.Overlay != nil {
		drawOverlay(screen, f)
	}

	if g.opts.ShowTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 4, f.Height-20)
	}
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width, g.frame.Height
}

func drawText(dst *ebiten.Image, s string, x, y, scale float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.ToRGBA())
	text.Draw(dst, s, fontFace, op)
}

// drawOverlay dims the playfield and centres the overlay text.
func drawOverlay(dst *ebiten.Image, f shooter.Frame) {
	o := f.Overlay
	vector.DrawFilledRect(dst, 0, 0, float32(f.Width), float32(f.Height), color.RGBA{A: overlayAlpha}, false)

	lineH := fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	cx, cy := float64(f.Width)/2, float64(f.Height)/2

	w := text.Advance(o.Title, fontFace) * titleScale
	drawText(dst, o.Title, cx-w/2, cy-lineH*titleScale, titleScale, o.Color)

	y := cy + lineSpacing
	for _, l := range o.Lines {
		w := text.Advance(l, fontFace) * 2
		drawText(dst, l, cx-w/2, y, 2, o.LineColor)
		y += lineH*2 + lineSpacing
	}

	if b := o.Button; b != nil {
		r := b.Rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.Color.ToRGBA(), false)
		w := text.Advance(b.Label, fontFace) * 2
		drawText(dst, b.Label, float64(r.CenterX())-w/2, float64(r.Y)+(float64(r.H)-lineH*2)/2, 2, o.LineColor)
	}
}

// Run opens the window and plays until the loop terminates or the window
// is closed.
func Run(l *loop.Loop, opts Options) error {
	cfg := l.Config()
	title := opts.Title
	if title == "" {
		title = "Space Shooter"
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(l.TickRate())
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(l, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
