package gdraw

import (
	"time"

	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIMenuDrawer struct {
	buttons []*ghelper.Button
	idxPlay int
	idxQuit int

	prevMouseDown bool
	prevTime      time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now()}
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	md.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(md.buttons)
		md.buttons = append(md.buttons, b)
		return idx
	}

	w, h := 220, 52
	x := (ctx.ConfigWorker.Config.WindowW - w) / 2
	y := ctx.ConfigWorker.Config.WindowH/2 - 60
	md.idxPlay = addBtn("Play", x, y, w, h)
	y += h + 16
	md.idxQuit = addBtn("Quit", x, y, w, h)
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	// Tab toggles the palette
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme.String() == "light" {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		ctx.ConfigWorker.Config.Theme = ctx.Theme.String()
		md.makeLayout(ctx)
	}

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !md.prevMouseDown
	justReleased := !mouseDown && md.prevMouseDown
	md.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case md.idxPlay:
				return ScenePlay, nil
			case md.idxQuit:
				return SceneNotChanged, gbase.ErrExit
			}
		}
	}
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "dragchess"
	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Big, title)
	tx := (ctx.ConfigWorker.Config.WindowW - bounds.Dx()) / 2
	text.Draw(screen, title, ctx.AssetsWorker.Fonts().Big, tx, ctx.ConfigWorker.Config.WindowH/2-120, ctx.Theme.MenuText)

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}
}
