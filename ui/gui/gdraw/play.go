package gdraw

import (
	"fmt"
	"image/color"
	"time"

	"dragchess/src/base"
	"dragchess/src/board"
	"dragchess/src/position"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/ghelper"
	"dragchess/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GUIPlayDrawer binds the board controller to ebiten: it derives
// pointer enter/leave and drag gestures from cursor state and draws the
// grid's render-state tags.
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int // top-left pixel
	boardSize      int // pixel size (square*8)
	sqSize         int // pixel size per square

	ctrl *board.Controller

	// interaction
	hoverID     string
	dragImg     *ebiten.Image
	dragOffsetX int
	dragOffsetY int

	// flip board
	flipped bool

	// buttons
	buttons []*ghelper.Button
	idxNew  int
	idxFlip int
	idxBack int

	// message box reuse
	msg *ghelper.MessageBox

	prevMouseDown bool
	prevTime      time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{prevTime: time.Now()}

	if ctx.Position == nil {
		if fen := ctx.ConfigWorker.Config.FEN; fen != "" {
			gp, err := position.NewGameFromFEN(fen)
			if err != nil {
				ctx.Logx.Errorf("config FEN rejected: %v", err)
				ctx.Position = position.NewGame()
			} else {
				ctx.Position = gp
			}
		} else {
			ctx.Position = position.NewGame()
		}
	}

	grid := board.NewBoard(ctx.Logx)
	if err := grid.Build(); err != nil {
		ctx.Logx.Errorf("error build board: %v", err)
	}
	lc := board.NewLifecycle(gdialog.Confirm, ctx.Logx)
	pd.ctrl = board.NewController(grid, ctx.Position, lc, ctx.Logx)
	if err := pd.ctrl.Resync(); err != nil {
		ctx.Logx.Errorf("error sync board: %v", err)
	}

	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	pd.msg = &ghelper.MessageBox{}
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	ww := ctx.ConfigWorker.Config.WindowW
	wh := ctx.ConfigWorker.Config.WindowH

	maxSize := ww - 400
	if maxSize > wh-120 {
		maxSize = wh - 120
	}
	if maxSize < 320 {
		maxSize = 320
	}
	pd.boardSize = maxSize
	pd.sqSize = pd.boardSize / 8
	pd.boardX = (ww - pd.boardSize) / 2
	pd.boardY = (wh-pd.boardSize)/2 - 20
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	x := pd.boardX - 200
	if x < 20 {
		x = 20
	}
	y := pd.boardY + 160
	w, h := 160, 48
	pd.idxNew = addBtn("New game", x, y, w, h)
	y += h + 14
	pd.idxFlip = addBtn("Flip", x, y, w, h)
	y += h + 14
	pd.idxBack = addBtn("Back", x, y, w, h)
}

// Update
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	pd.recalcLayout(ctx)

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(pd.prevTime).Seconds()
	pd.prevTime = now

	if pd.msg.Open {
		if justPressed {
			CollapseModalOnOK(ctx, pd.msg, mx, my)
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			switch i {
			case pd.idxNew:
				ctx.Position.Reset()
				pd.dragImg = nil
				pd.hoverID = ""
				if err := pd.ctrl.Resync(); err != nil {
					ctx.Logx.Errorf("error sync board: %v", err)
				}
			case pd.idxFlip:
				pd.flipped = !pd.flipped
			case pd.idxBack:
				return SceneMenu, nil
			}
		}
	}

	pd.handleBoardInput(ctx, mx, my, justPressed, justReleased)

	return SceneNotChanged, nil
}

// handleBoardInput translates cursor state into the controller's
// pointer protocol: enter/leave on square change, drag on press over
// the armed origin, drop or cancel on release.
func (pd *GUIPlayDrawer) handleBoardInput(ctx *gctx.GUIGameContext, mx, my int, justPressed, justReleased bool) {
	inside := inBoard(mx, my, pd.boardX, pd.boardY, pd.sqSize)
	var sqID string
	var sqIdx int = -1
	if inside {
		sqIdx = pixelToSquare(mx, my, pd.boardX, pd.boardY, pd.sqSize, pd.flipped)
		sqID, _ = base.AlgebraicFromSquare(sqIdx)
	}

	// hover transitions are suppressed mid-drag so the highlight holds
	if sqID != pd.hoverID && !pd.ctrl.Dragging() {
		if pd.hoverID != "" {
			pd.ctrl.PointerLeave()
		}
		pd.hoverID = sqID
		if sqID != "" {
			pd.ctrl.PointerEnter(sqID)
		}
	}

	if justPressed && inside && !pd.ctrl.Dragging() {
		if pd.ctrl.DragStart(sqID) {
			sq := pd.ctrl.Board().Square(sqIdx)
			if sq.Piece != nil {
				pd.dragImg = ctx.AssetsWorker.Piece(sq.Piece.Color, sq.Piece.Type)
			}
			sx, sy := pd.squareToScreen(sqIdx)
			pd.dragOffsetX = mx - sx
			pd.dragOffsetY = my - sy
		}
	}

	if justReleased && pd.ctrl.Dragging() {
		switch {
		case !inside:
			pd.ctrl.DropOutside()
			pd.dragImg = nil
			pd.hoverID = ""
		case sqIdx == pd.ctrl.Origin():
			// released back on the origin: drag stops, highlight stays
			pd.ctrl.DragStop()
			pd.dragImg = nil
		default:
			if err := pd.ctrl.Drop(sqID); err != nil {
				pd.msg.ShowMessage("That move was rejected.", nil)
				ctx.Logx.Errorf("error drop on %s: %v", sqID, err)
			}
			pd.dragImg = nil
			pd.hoverID = ""
		}
	}
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	borderImg := ghelper.RenderRoundedRect(pd.boardSize+8, pd.boardSize+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX-4), float64(pd.boardY-4))
	screen.DrawImage(borderImg, op)

	for _, sq := range pd.ctrl.Board().Squares() {
		sx, sy := pd.squareToScreen(sq.Index)

		col := ctx.Theme.SquareDark
		if sq.Light {
			col = ctx.Theme.SquareLight
		}
		ghelper.DrawRect(screen, float64(sx), float64(sy), float64(pd.sqSize), float64(pd.sqSize), col)

		for _, tint := range squareTints(sq, ctx.Theme) {
			ghelper.DrawRect(screen, float64(sx), float64(sy), float64(pd.sqSize), float64(pd.sqSize), tint)
		}
		if sq.Tags.Has(board.TagFrom) {
			ghelper.DrawRectStroke(screen, float64(sx)+2, float64(sy)+2, float64(pd.sqSize)-4, float64(pd.sqSize)-4, 2, ctx.Theme.Accent)
		}
	}

	// pieces on top of square tints
	for _, sq := range pd.ctrl.Board().Squares() {
		if sq.Piece == nil {
			continue
		}
		// the dragged piece follows the cursor instead
		if pd.ctrl.Dragging() && sq.Index == pd.ctrl.Origin() {
			continue
		}
		pd.drawPiece(ctx, screen, sq)
	}

	if pd.ctrl.Dragging() && pd.dragImg != nil {
		mx, my := ebiten.CursorPosition()
		op := &ebiten.DrawImageOptions{}
		iw := pd.dragImg.Bounds().Dx()
		sc := float64(pd.sqSize) / float64(iw)
		op.GeoM.Scale(sc, sc)
		op.GeoM.Translate(float64(mx-pd.dragOffsetX), float64(my-pd.dragOffsetY))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(pd.dragImg, op)
	}

	turnLabel := fmt.Sprintf("%s to move", ctx.Position.TurnColor())
	if st := ctx.Position.Status(); st != base.Normal {
		turnLabel = st.String()
	}
	text.Draw(screen, turnLabel, ctx.AssetsWorker.Fonts().Normal, pd.boardX+8, pd.boardY-12, ctx.Theme.MenuText)

	// tooltip of the hovered square under the board
	if pd.hoverID != "" {
		if sq, err := pd.ctrl.Board().SquareByID(pd.hoverID); err == nil {
			text.Draw(screen, sq.Tooltip, ctx.AssetsWorker.Fonts().Small, pd.boardX, pd.boardY+pd.boardSize+24, ctx.Theme.MenuText)
		}
	}

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}

	if ctx.ConfigWorker.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f state: %s", ebiten.ActualTPS(), pd.ctrl.State()))
	}
}

func (pd *GUIPlayDrawer) drawPiece(ctx *gctx.GUIGameContext, screen *ebiten.Image, sq *board.Square) {
	img := ctx.AssetsWorker.Piece(sq.Piece.Color, sq.Piece.Type)
	if img == nil {
		return
	}
	sx, sy := pd.squareToScreen(sq.Index)
	iw := img.Bounds().Dx()
	scale := float64(pd.sqSize) / float64(iw)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// squareTints maps render-state tags to overlay colors. Subtype tints
// take priority over the plain "to" tint; can-move and last-move are
// soft washes under everything else.
func squareTints(sq *board.Square, theme gbase.Palette) []color.RGBA {
	var tints []color.RGBA
	t := sq.Tags
	if t.Has(board.TagLastMove) {
		tints = append(tints, theme.LastMove)
	}
	if t.Has(board.TagCanMove) {
		tints = append(tints, theme.CanMove)
	}
	if t.Has(board.TagTo) {
		switch {
		case t.Has(board.TagCapture):
			tints = append(tints, theme.Capture)
		case t.Has(board.TagPromotion):
			tints = append(tints, theme.Promotion)
		case t.Has(board.TagEnPassant):
			tints = append(tints, theme.EnPassant)
		case t.Has(board.TagDoublePush):
			tints = append(tints, theme.DoublePush)
		case t.Has(board.TagCastle):
			tints = append(tints, theme.Castle)
		default:
			tints = append(tints, theme.To)
		}
	}
	if t.Has(board.TagFrom) {
		tints = append(tints, theme.From)
	}
	return tints
}

func (pd *GUIPlayDrawer) squareToScreen(idx int) (int, int) {
	file, rank := indexToFileRank(idx)
	fs := file
	rs := 7 - rank // rank 0 is the bottom row on screen
	if pd.flipped {
		fs = 7 - fs
		rs = 7 - rs
	}
	return pd.boardX + fs*pd.sqSize, pd.boardY + rs*pd.sqSize
}

// inBoard checks whether the pixel lies inside the board rectangle
func inBoard(px, py, bx, by, sqSize int) bool {
	return px >= bx && py >= by && px < bx+sqSize*8 && py < by+sqSize*8
}

// indexToFileRank: index 0..63 -> file(0..7), rank(0..7) where rank 0 == bottom (a1..h1).
func indexToFileRank(idx int) (int, int) {
	return idx % 8, idx / 8
}

// pixelToSquare maps screen coordinates to an index 0..63, honoring
// the flipped orientation.
func pixelToSquare(px, py, bx, by, sqSize int, flipped bool) int {
	fx := (px - bx) / sqSize
	fy := (py - by) / sqSize
	if fx < 0 {
		fx = 0
	}
	if fx > 7 {
		fx = 7
	}
	if fy < 0 {
		fy = 0
	}
	if fy > 7 {
		fy = 7
	}

	var file, rank int
	if !flipped {
		file = fx
		rank = 7 - fy
	} else {
		file = 7 - fx
		rank = fy
	}
	return rank*8 + file
}
