package board

import (
	"testing"

	"dragchess/src/base"
	"dragchess/src/position"
)

func sq(t *testing.T, id string) int {
	t.Helper()
	idx, err := base.SquareFromAlgebraic(id)
	if err != nil {
		t.Fatal(err)
	}
	return idx
}

func findMove(t *testing.T, pos position.Position, from, to string) base.Move {
	t.Helper()
	f, tt := sq(t, from), sq(t, to)
	for _, mv := range pos.Moves() {
		if mv.From == f && mv.To == tt {
			return mv
		}
	}
	t.Fatalf("no legal move %s%s", from, to)
	return base.Move{}
}

// pieceSquares collects the indices currently holding a piece node.
func pieceSquares(b *Board) base.Bitboard {
	var bb base.Bitboard
	for _, sq := range b.Squares() {
		if sq.Piece != nil {
			bb = bb.Set(sq.Index)
		}
	}
	return bb
}

func TestSyncMatchesOccupancy(t *testing.T) {
	pos := position.NewGame()
	b := newBuiltBoard(t)
	if err := b.Sync(pos); err != nil {
		t.Fatal(err)
	}

	union := pos.ColorBitboard(base.White) | pos.ColorBitboard(base.Black)
	if got := pieceSquares(b); got != union {
		t.Fatalf("piece squares %064b != occupancy union %064b", got, union)
	}

	for _, sqv := range b.Squares() {
		if sqv.Piece == nil {
			continue
		}
		if !pos.ColorBitboard(sqv.Piece.Color).IsSet(sqv.Index) {
			t.Errorf("%s: color %s not backed by bitboard", sqv.ID, sqv.Piece.Color)
		}
		if !pos.PieceBitboard(sqv.Piece.Type).IsSet(sqv.Index) {
			t.Errorf("%s: type %s not backed by bitboard", sqv.ID, sqv.Piece.Type)
		}
		wantTurn := sqv.Piece.Color == pos.TurnColor()
		if sqv.Piece.Turn != wantTurn {
			t.Errorf("%s: turn flag %v, want %v", sqv.ID, sqv.Piece.Turn, wantTurn)
		}
	}
}

func TestSyncPieceIdentity(t *testing.T) {
	pos := position.NewGame()
	b := newBuiltBoard(t)
	if err := b.Sync(pos); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		id    string
		color base.Color
		typ   base.PieceType
		turn  bool
	}{
		{"e2", base.White, base.Pawn, true},
		{"e1", base.White, base.King, true},
		{"d8", base.Black, base.Queen, false},
		{"g8", base.Black, base.Knight, false},
	}
	for _, c := range cases {
		sqv, err := b.SquareByID(c.id)
		if err != nil {
			t.Fatal(err)
		}
		p := sqv.Piece
		if p == nil {
			t.Fatalf("%s: no piece", c.id)
		}
		if p.Color != c.color || p.Type != c.typ || p.Turn != c.turn {
			t.Errorf("%s: got %s %s turn=%v", c.id, p.Color, p.Type, p.Turn)
		}
	}

	if sqv, _ := b.SquareByID("e4"); sqv.Piece != nil {
		t.Error("e4 should be empty")
	}
}

func TestSyncLastMove(t *testing.T) {
	pos := position.NewGame()
	b := newBuiltBoard(t)
	if err := b.Sync(pos); err != nil {
		t.Fatal(err)
	}
	for _, sqv := range b.Squares() {
		if sqv.Tags.Has(TagLastMove) {
			t.Fatalf("%s tagged last-move before any move", sqv.ID)
		}
	}

	if err := pos.MakeMove(findMove(t, pos, "e2", "e4")); err != nil {
		t.Fatal(err)
	}
	if err := b.Sync(pos); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"e2", "e4"} {
		sqv, _ := b.SquareByID(id)
		if !sqv.Tags.Has(TagLastMove) {
			t.Errorf("%s missing last-move tag", id)
		}
	}
	count := 0
	for _, sqv := range b.Squares() {
		if sqv.Tags.Has(TagLastMove) {
			count++
		}
	}
	if count != 2 {
		t.Errorf("want 2 last-move squares, got %d", count)
	}

	// pawn moved, turn flags flipped
	e4, _ := b.SquareByID("e4")
	if e4.Piece == nil || e4.Piece.Type != base.Pawn || e4.Piece.Color != base.White {
		t.Fatal("e4 should hold the white pawn")
	}
	if e4.Piece.Turn {
		t.Error("white pawn still flagged as side to move")
	}
	e2, _ := b.SquareByID("e2")
	if e2.Piece != nil {
		t.Error("e2 should be empty after the push")
	}
}

func TestSyncRecomputesCleanly(t *testing.T) {
	pos := position.NewGame()
	b := newBuiltBoard(t)
	for i := 0; i < 3; i++ {
		if err := b.Sync(pos); err != nil {
			t.Fatal(err)
		}
	}
	union := pos.ColorBitboard(base.White) | pos.ColorBitboard(base.Black)
	if got := pieceSquares(b); got != union {
		t.Fatal("repeated sync diverged from occupancy")
	}
}
