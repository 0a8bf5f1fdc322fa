package ghelper

import (
	"math"

	"dragchess/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	Hover   bool
	Pressed bool
	// animation
	Scale       float64
	TargetScale float64
	AnimSpeed   float64 // approach speed per second
}

func (b *Button) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// Call every Update with mouse info; returns true when a click finished
// on this button.
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justPressed && inside {
		b.Pressed = true
		b.TargetScale = 0.96
	}
	if justReleased {
		pressed := b.Pressed
		b.Pressed = false
		b.TargetScale = 1.0
		if pressed && inside {
			return true
		}
	}
	if inside && !b.Pressed {
		b.TargetScale = 1.02
	} else if !b.Pressed {
		b.TargetScale = 1.0
	}
	return false
}

func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	// exponential approach toward the target
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y + b.H/2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}

// ---- MessageBox ----

type MessageBox struct {
	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	Text      string
	OnClose   func()
}

func (mb *MessageBox) ShowMessage(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0.0
	mb.OnClose = onClose
}

func (mb *MessageBox) AnimateMessage() {
	// linear tween: scale 0->1 opening, 1->0 closing
	const dt = 1.0 / 60.0
	const speed = 6.0
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1.0 {
			mb.Scale = 1.0
			mb.Animating = false
		}
	} else {
		mb.Scale -= speed * dt
		if mb.Scale <= 0.0 {
			mb.Scale = 0.0
			mb.Animating = false
			mb.Open = false
			if mb.OnClose != nil {
				mb.OnClose()
			}
		}
	}
}

func (mb *MessageBox) CollapseMessage() {
	mb.Opening = false
	mb.Animating = true
}
