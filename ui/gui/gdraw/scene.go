package gdraw

import (
	"image/color"

	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

func DrawModal(ctx *gctx.GUIGameContext, scale float64, message string, screen *ebiten.Image) {
	// dim background
	overlay := ebiten.NewImage(ctx.ConfigWorker.Config.WindowW, ctx.ConfigWorker.Config.WindowH)
	overlay.Fill(ctx.Theme.ModalBg)
	screen.DrawImage(overlay, nil)

	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, message)
	mw := bounds.Dx() + 64
	mh := bounds.Dy() + 120

	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	currW := int(float64(mw) * scale)
	currH := int(float64(mh) * scale)
	if currW < 6 {
		currW = 6
	}
	if currH < 6 {
		currH = 6
	}
	mx := (ctx.ConfigWorker.Config.WindowW - currW) / 2
	my := (ctx.ConfigWorker.Config.WindowH - currH) / 2

	modalImg := ghelper.RenderRoundedRect(currW, currH, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mx), float64(my))
	screen.DrawImage(modalImg, op)

	// draw text and OK button only when fully opened
	if scale > 0.85 {
		text.Draw(screen, message, ctx.AssetsWorker.Fonts().Normal, mx+32, my+60, ctx.Theme.MenuText)
		okW, okH := 120, 44
		okX := mx + (currW-okW)/2
		okY := my + currH - 56
		okImg := ghelper.RenderRoundedRect(okW, okH, 16, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 3)
		op2 := &ebiten.DrawImageOptions{}
		op2.GeoM.Translate(float64(okX), float64(okY))
		screen.DrawImage(okImg, op2)
		text.Draw(screen, "OK", ctx.AssetsWorker.Fonts().Normal, okX+48, okY+28, color.White)
	}
}

// CollapseModalOnOK starts the close animation when the click landed on
// the modal's OK button.
func CollapseModalOnOK(ctx *gctx.GUIGameContext, mb *ghelper.MessageBox, mx, my int) {
	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, mb.Text)
	mw := bounds.Dx() + 64
	mh := bounds.Dy() + 120
	bx := (ctx.ConfigWorker.Config.WindowW - mw) / 2
	by := (ctx.ConfigWorker.Config.WindowH - mh) / 2

	okW, okH := 120, 44
	okX := bx + (mw-okW)/2
	okY := by + mh - 56

	if ghelper.PointInRect(mx, my, okX, okY, okW, okH) {
		mb.CollapseMessage()
	}
}
