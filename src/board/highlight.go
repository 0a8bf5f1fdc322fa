package board

import (
	"dragchess/src/base"
	"dragchess/src/position"
)

// MarkMovable is the global highlight phase: every distinct legal-move
// origin gets "can-move" on its square and piece. Previous highlight
// tags are cleared first, never accumulated.
func (b *Board) MarkMovable(pos position.Position) error {
	if !b.built {
		return ErrBoardNotBuilt
	}
	for _, sq := range b.squares {
		sq.Tags = sq.Tags.Without(hoverTags | TagCanMove)
		if sq.Piece != nil {
			sq.Piece.Tags = sq.Piece.Tags.Without(hoverTags | TagCanMove)
		}
	}
	for _, mv := range pos.Moves() {
		sq := b.squares[mv.From]
		sq.Tags = sq.Tags.With(TagCanMove)
		if sq.Piece != nil {
			sq.Piece.Tags = sq.Piece.Tags.With(TagCanMove)
		}
	}
	return nil
}

// HoverEnter is the hover highlight phase for a movable origin. The
// origin is rechecked against the fresh legal-move set; when present it
// becomes the single "from" square and every destination sharing the
// origin gets "to" plus its move-subtype tags. Returns whether the
// origin armed.
func (b *Board) HoverEnter(id string, pos position.Position) (bool, error) {
	sq, err := b.SquareByID(id)
	if err != nil {
		return false, err
	}

	moves := pos.Moves()
	armed := false
	for _, mv := range moves {
		if mv.From == sq.Index {
			armed = true
			break
		}
	}
	if !armed {
		return false, nil
	}

	b.clearHover()
	tag(sq, TagFrom)
	for _, mv := range moves {
		if mv.From != sq.Index {
			continue
		}
		dst := b.squares[mv.To]
		tag(dst, TagTo)
		tag(dst, subtypeTags(mv))
	}
	return true, nil
}

// HoverLeave clears all highlight tags except "can-move".
func (b *Board) HoverLeave() {
	b.clearHover()
}

func (b *Board) clearHover() {
	for _, sq := range b.squares {
		sq.Tags = sq.Tags.Without(hoverTags)
		if sq.Piece != nil {
			sq.Piece.Tags = sq.Piece.Tags.Without(hoverTags)
		}
	}
}

func tag(sq *Square, tags TagSet) {
	sq.Tags = sq.Tags.With(tags)
	if sq.Piece != nil {
		sq.Piece.Tags = sq.Piece.Tags.With(tags)
	}
}

// subtypeTags derives the additive destination tags from the move's
// kind and facets. A destination may carry several, e.g. a capturing
// promotion is both "capture" and "promotion".
func subtypeTags(mv base.Move) TagSet {
	var tags TagSet
	switch mv.Kind {
	case base.Positional:
		tags = tags.With(TagPositional)
	case base.DoublePush:
		tags = tags.With(TagDoublePush)
	case base.EnPassant:
		tags = tags.With(TagEnPassant)
	case base.KingCastle:
		tags = tags.With(TagKingCastle)
	case base.QueenCastle:
		tags = tags.With(TagQueenCastle)
	}
	if mv.IsCapture() {
		tags = tags.With(TagCapture)
	}
	if mv.IsPromotion() {
		tags = tags.With(TagPromotion)
	}
	if mv.IsCastle() {
		tags = tags.With(TagCastle)
	}
	return tags
}

// FromSquare returns the square currently tagged "from", if any. At
// most one exists.
func (b *Board) FromSquare() (*Square, bool) {
	for _, sq := range b.squares {
		if sq.Tags.Has(TagFrom) {
			return sq, true
		}
	}
	return nil, false
}
