package gctx

import (
	"dragchess/src/logx"
	"dragchess/src/position"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Position     position.Position
	AssetsWorker *ghelper.GUIAssetsWorker
	ConfigWorker *gconf.GUIConfigWorker
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(p position.Position, a *ghelper.GUIAssetsWorker, c *gconf.GUIConfigWorker, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Position:     p,
		AssetsWorker: a,
		ConfigWorker: c,
		Theme:        gbase.PaletteFromString(c.Config.Theme),
		Logx:         l,
	}
}
