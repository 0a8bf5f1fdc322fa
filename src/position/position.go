package position

import (
	"errors"

	"dragchess/src/base"
)

// Position is the rule-engine collaborator. The controller only reads
// occupancy, legal moves and status from it, and mutates it through
// MakeMove or Reset. Moves handed to MakeMove must come from Moves().
type Position interface {
	ColorBitboard(c base.Color) base.Bitboard
	PieceBitboard(pt base.PieceType) base.Bitboard
	TurnColor() base.Color
	LastMove() (base.Move, bool)
	Moves() []base.Move
	MakeMove(m base.Move) error
	Status() base.Status
	Reset()
}

var ErrNoMatch = errors.New("move does not match any legal move")
