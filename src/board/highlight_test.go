package board

import (
	"testing"

	"dragchess/src/position"
)

func syncedBoard(t *testing.T, pos position.Position) *Board {
	t.Helper()
	b := newBuiltBoard(t)
	if err := b.Sync(pos); err != nil {
		t.Fatal(err)
	}
	if err := b.MarkMovable(pos); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestMarkMovableEqualsOrigins(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)

	origins := map[int]bool{}
	for _, mv := range pos.Moves() {
		origins[mv.From] = true
	}
	for _, sqv := range b.Squares() {
		want := origins[sqv.Index]
		if got := sqv.Tags.Has(TagCanMove); got != want {
			t.Errorf("%s: can-move %v, want %v", sqv.ID, got, want)
		}
		if sqv.Piece != nil {
			if got := sqv.Piece.Tags.Has(TagCanMove); got != want {
				t.Errorf("%s: piece can-move %v, want %v", sqv.ID, got, want)
			}
		}
	}
}

func TestHoverEnterPawn(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)

	armed, err := b.HoverEnter("e2", pos)
	if err != nil {
		t.Fatal(err)
	}
	if !armed {
		t.Fatal("e2 did not arm")
	}

	fromCount := 0
	for _, sqv := range b.Squares() {
		if sqv.Tags.Has(TagFrom) {
			fromCount++
			if sqv.ID != "e2" {
				t.Errorf("unexpected from square %s", sqv.ID)
			}
		}
	}
	if fromCount != 1 {
		t.Fatalf("want exactly one from square, got %d", fromCount)
	}

	e3, _ := b.SquareByID("e3")
	if !e3.Tags.Has(TagTo) || !e3.Tags.Has(TagPositional) {
		t.Errorf("e3 tags %b, want to+positional", e3.Tags)
	}
	e4, _ := b.SquareByID("e4")
	if !e4.Tags.Has(TagTo) || !e4.Tags.Has(TagDoublePush) {
		t.Errorf("e4 tags %b, want to+double-push", e4.Tags)
	}

	// destinations not reachable from e2 must stay untouched
	d3, _ := b.SquareByID("d3")
	if d3.Tags.Has(TagTo) {
		t.Error("d3 wrongly tagged to")
	}
}

func TestHoverSwitchKeepsSingleFrom(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)

	if _, err := b.HoverEnter("e2", pos); err != nil {
		t.Fatal(err)
	}
	if _, err := b.HoverEnter("d2", pos); err != nil {
		t.Fatal(err)
	}

	for _, sqv := range b.Squares() {
		if sqv.Tags.Has(TagFrom) && sqv.ID != "d2" {
			t.Errorf("stale from tag on %s", sqv.ID)
		}
	}
	e4, _ := b.SquareByID("e4")
	if e4.Tags.Has(TagTo) {
		t.Error("stale to tag from previous hover")
	}
	d4, _ := b.SquareByID("d4")
	if !d4.Tags.Has(TagTo) || !d4.Tags.Has(TagDoublePush) {
		t.Error("d4 missing to+double-push")
	}
}

func TestHoverLeaveKeepsCanMove(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)

	if _, err := b.HoverEnter("e2", pos); err != nil {
		t.Fatal(err)
	}
	b.HoverLeave()

	for _, sqv := range b.Squares() {
		if sqv.Tags&hoverTags != 0 {
			t.Errorf("%s holds hover tags after leave", sqv.ID)
		}
	}
	e2, _ := b.SquareByID("e2")
	if !e2.Tags.Has(TagCanMove) {
		t.Error("can-move cleared on leave")
	}
}

func TestHoverNotMovable(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)

	// empty square
	armed, err := b.HoverEnter("e4", pos)
	if err != nil {
		t.Fatal(err)
	}
	if armed {
		t.Error("empty square armed")
	}
	// opponent piece: black has no move rights yet
	armed, err = b.HoverEnter("e7", pos)
	if err != nil {
		t.Fatal(err)
	}
	if armed {
		t.Error("opponent piece armed")
	}
	if _, ok := b.FromSquare(); ok {
		t.Error("from tag set without arming")
	}
}

func TestHoverUnknownSquare(t *testing.T) {
	pos := position.NewGame()
	b := syncedBoard(t, pos)
	if _, err := b.HoverEnter("j9", pos); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestHoverSubtypeTags(t *testing.T) {
	t.Run("promotion and capture", func(t *testing.T) {
		pos, err := position.NewGameFromFEN("k2r4/4P3/8/8/8/8/8/K7 w - - 0 1")
		if err != nil {
			t.Fatal(err)
		}
		b := syncedBoard(t, pos)
		if _, err := b.HoverEnter("e7", pos); err != nil {
			t.Fatal(err)
		}

		e8, _ := b.SquareByID("e8")
		if !e8.Tags.Has(TagTo) || !e8.Tags.Has(TagPromotion) {
			t.Errorf("e8 tags %b, want to+promotion", e8.Tags)
		}
		if e8.Tags.Has(TagCapture) {
			t.Error("plain promotion tagged capture")
		}
		d8, _ := b.SquareByID("d8")
		if !d8.Tags.Has(TagPromotion) || !d8.Tags.Has(TagCapture) {
			t.Errorf("d8 tags %b, want promotion+capture", d8.Tags)
		}
	})

	t.Run("castles", func(t *testing.T) {
		pos, err := position.NewGameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		if err != nil {
			t.Fatal(err)
		}
		b := syncedBoard(t, pos)
		if _, err := b.HoverEnter("e1", pos); err != nil {
			t.Fatal(err)
		}

		g1, _ := b.SquareByID("g1")
		if !g1.Tags.Has(TagKingCastle) || !g1.Tags.Has(TagCastle) {
			t.Errorf("g1 tags %b, want king-castle+castle", g1.Tags)
		}
		c1, _ := b.SquareByID("c1")
		if !c1.Tags.Has(TagQueenCastle) || !c1.Tags.Has(TagCastle) {
			t.Errorf("c1 tags %b, want queen-castle+castle", c1.Tags)
		}
	})

	t.Run("en passant", func(t *testing.T) {
		pos, err := position.NewGameFromFEN("k7/8/8/3pP3/8/8/8/K7 w - d6 0 1")
		if err != nil {
			t.Fatal(err)
		}
		b := syncedBoard(t, pos)
		if _, err := b.HoverEnter("e5", pos); err != nil {
			t.Fatal(err)
		}

		d6, _ := b.SquareByID("d6")
		if !d6.Tags.Has(TagEnPassant) || !d6.Tags.Has(TagCapture) {
			t.Errorf("d6 tags %b, want en-passant+capture", d6.Tags)
		}
	})
}
