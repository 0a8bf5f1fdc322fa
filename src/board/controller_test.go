package board

import (
	"testing"

	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/src/position"
)

// countingPos wraps a position and counts committed moves.
type countingPos struct {
	position.Position
	commits int
}

func (p *countingPos) MakeMove(mv base.Move) error {
	p.commits++
	return p.Position.MakeMove(mv)
}

func newController(t *testing.T, pos position.Position) *Controller {
	t.Helper()
	c := NewController(newBuiltBoard(t), pos, nil, logx.NewNop())
	if err := c.Resync(); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestControllerDragCommit(t *testing.T) {
	pos := &countingPos{Position: position.NewGame()}
	c := newController(t, pos)

	c.PointerEnter("e2")
	if c.State() != StateArmed || c.Origin() != sq(t, "e2") {
		t.Fatalf("after hover: state %s origin %d", c.State(), c.Origin())
	}
	if !c.DragStart("e2") {
		t.Fatal("drag did not start")
	}
	if !c.Dragging() {
		t.Fatalf("state %s, want dragging", c.State())
	}
	if err := c.Drop("e4"); err != nil {
		t.Fatal(err)
	}

	if pos.commits != 1 {
		t.Fatalf("commits %d, want 1", pos.commits)
	}
	if c.State() != StateIdle || c.Origin() != -1 {
		t.Errorf("after commit: state %s origin %d", c.State(), c.Origin())
	}

	// resynced render state follows the new position
	b := c.Board()
	e4 := b.Square(sq(t, "e4"))
	if e4.Piece == nil || e4.Piece.Type != base.Pawn || e4.Piece.Color != base.White {
		t.Error("e4 not holding the moved pawn")
	}
	if e2 := b.Square(sq(t, "e2")); e2.Piece != nil {
		t.Error("e2 still occupied")
	}
	if !e4.Tags.Has(TagLastMove) || !b.Square(sq(t, "e2")).Tags.Has(TagLastMove) {
		t.Error("last-move tags missing")
	}
	if pos.TurnColor() != base.Black {
		t.Error("turn did not switch")
	}
	if b.Square(sq(t, "e7")).Piece == nil || !b.Square(sq(t, "e7")).Piece.Turn {
		t.Error("black pieces not marked to move")
	}
}

func TestControllerDropNoMatch(t *testing.T) {
	pos := &countingPos{Position: position.NewGame()}
	c := newController(t, pos)

	c.PointerEnter("e2")
	c.DragStart("e2")
	if err := c.Drop("e5"); err != nil {
		t.Fatal(err)
	}

	if pos.commits != 0 {
		t.Fatalf("commits %d, want 0", pos.commits)
	}
	if c.State() != StateIdle || c.Origin() != -1 {
		t.Errorf("state %s origin %d, want idle", c.State(), c.Origin())
	}
	if _, ok := c.Board().FromSquare(); ok {
		t.Error("from highlight survived a discarded drop")
	}
	if !c.Board().Square(sq(t, "e2")).Tags.Has(TagCanMove) {
		t.Error("can-move lost after discarded drop")
	}
}

func TestControllerDropOutside(t *testing.T) {
	pos := &countingPos{Position: position.NewGame()}
	c := newController(t, pos)

	c.PointerEnter("g1")
	c.DragStart("g1")
	c.DropOutside()

	if pos.commits != 0 {
		t.Fatalf("commits %d, want 0", pos.commits)
	}
	if c.State() != StateIdle {
		t.Errorf("state %s, want idle", c.State())
	}
	if _, ok := c.Board().FromSquare(); ok {
		t.Error("from highlight survived a drop outside")
	}
}

func TestControllerDragStopKeepsHighlights(t *testing.T) {
	pos := position.NewGame()
	c := newController(t, pos)

	c.PointerEnter("e2")
	c.DragStart("e2")
	c.DragStop()

	if c.State() != StateArmed {
		t.Fatalf("state %s, want armed", c.State())
	}
	from, ok := c.Board().FromSquare()
	if !ok || from.ID != "e2" {
		t.Error("from highlight lost after drag back to origin")
	}
}

func TestControllerHoverIgnoredMidDrag(t *testing.T) {
	pos := position.NewGame()
	c := newController(t, pos)

	c.PointerEnter("e2")
	c.DragStart("e2")
	c.PointerEnter("d2")
	c.PointerLeave()

	if c.Origin() != sq(t, "e2") || !c.Dragging() {
		t.Errorf("drag state disturbed: state %s origin %d", c.State(), c.Origin())
	}
	from, ok := c.Board().FromSquare()
	if !ok || from.ID != "e2" {
		t.Error("drag highlight disturbed by hover")
	}
}

func TestControllerDragRequiresArm(t *testing.T) {
	pos := position.NewGame()
	c := newController(t, pos)

	if c.DragStart("e2") {
		t.Error("drag started without a hovered origin")
	}
	c.PointerEnter("e2")
	if c.DragStart("d2") {
		t.Error("drag started on a square other than the armed origin")
	}
}

func TestControllerPromotionDrop(t *testing.T) {
	inner, err := position.NewGameFromFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pos := &countingPos{Position: inner}
	c := newController(t, pos)

	c.PointerEnter("e7")
	if !c.DragStart("e7") {
		t.Fatal("promotion pawn did not arm")
	}
	if err := c.Drop("e8"); err != nil {
		t.Fatal(err)
	}

	if pos.commits != 1 {
		t.Fatalf("commits %d, want 1", pos.commits)
	}
	e8 := c.Board().Square(sq(t, "e8"))
	if e8.Piece == nil || e8.Piece.Type != base.Queen {
		t.Error("ambiguous promotion drop did not commit the queen")
	}
}
