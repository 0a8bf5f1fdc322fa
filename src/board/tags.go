package board

// TagSet is the highlight vocabulary of the render state. Presentation
// maps tags to styling; the core never encodes geometry or color.
type TagSet uint16

const (
	TagFrom TagSet = 1 << iota
	TagTo
	TagCapture
	TagPositional
	TagDoublePush
	TagEnPassant
	TagPromotion
	TagCastle
	TagKingCastle
	TagQueenCastle
	TagCanMove
	TagLastMove
)

// hover-phase tags, cleared on pointer-leave; TagCanMove survives
const hoverTags = TagFrom | TagTo | TagCapture | TagPositional | TagDoublePush |
	TagEnPassant | TagPromotion | TagCastle | TagKingCastle | TagQueenCastle

func (t TagSet) Has(tag TagSet) bool {
	return t&tag != 0
}

func (t TagSet) With(tag TagSet) TagSet {
	return t | tag
}

func (t TagSet) Without(tags TagSet) TagSet {
	return t &^ tags
}
