package board

import (
	"dragchess/src/base"
	"dragchess/src/position"
)

// Sync projects the position's occupancy onto the grid. All piece nodes
// and piece-related tags are dropped first and rebuilt from scratch, so
// the render state can never drift from what the position reports.
func (b *Board) Sync(pos position.Position) error {
	if !b.built {
		return ErrBoardNotBuilt
	}

	for _, sq := range b.squares {
		sq.Piece = nil
		sq.Tags = sq.Tags.Without(TagLastMove)
	}

	white := pos.ColorBitboard(base.White)
	black := pos.ColorBitboard(base.Black)
	turn := pos.TurnColor()

	var byType [len(base.PieceTypes)]base.Bitboard
	for i, pt := range base.PieceTypes {
		byType[i] = pos.PieceBitboard(pt)
	}

	for _, sq := range b.squares {
		var color base.Color
		switch {
		case white.IsSet(sq.Index):
			color = base.White
		case black.IsSet(sq.Index):
			color = base.Black
		default:
			continue
		}
		// first matching type in pawn..king priority order wins
		for i, pt := range base.PieceTypes {
			if byType[i].IsSet(sq.Index) {
				sq.Piece = &PieceNode{Type: pt, Color: color, Turn: color == turn}
				break
			}
		}
	}

	if last, ok := pos.LastMove(); ok {
		b.squares[last.From].Tags = b.squares[last.From].Tags.With(TagLastMove)
		b.squares[last.To].Tags = b.squares[last.To].Tags.With(TagLastMove)
	}
	return nil
}
