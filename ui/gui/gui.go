package gui

import (
	"dragchess/src/logx"
	"dragchess/src/position"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/gdraw"
	"dragchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(p position.Position, logger logx.Logger) (*GUIProcessing, error) {
	cw, err := gconf.NewGUIConfigWorker()
	if err != nil {
		return nil, err
	}
	aw, err := ghelper.NewGUIAssetsWorker()
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(p, aw, cw, logger)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.ConfigWorker.Config.WindowW, gp.ctx.ConfigWorker.Config.WindowH)
	ebiten.SetWindowTitle("DragChess")
	defer gp.ctx.ConfigWorker.Save() //nolint:errcheck
	if err := ebiten.RunGame(gp); err != nil && err != gbase.ErrExit {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.ConfigWorker.Config.WindowW, gp.ctx.ConfigWorker.Config.WindowH
}
