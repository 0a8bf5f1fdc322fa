package base

import (
	"fmt"
	"math/bits"
)

// Forsyth–Edwards Notation
const FEN_START_GAME string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceType values follow scan priority order: pawn first, king last.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 99
)

// PieceTypes lists all piece types in scan priority order.
var PieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

type Status uint8

const (
	Normal Status = iota
	Checkmate
	Draw
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	default:
		return "normal"
	}
}

// Bitboard is an occupancy set over squares 0..63, rank-major (a1=0, h8=63).
type Bitboard uint64

func (bb Bitboard) IsSet(index int) bool {
	return index >= 0 && index < 64 && bb&(1<<uint(index)) != 0
}

func (bb Bitboard) Set(index int) Bitboard {
	return bb | 1<<uint(index)
}

func (bb Bitboard) Count() int {
	return bits.OnesCount64(uint64(bb))
}

type MoveKind uint8

const (
	Positional MoveKind = iota
	DoublePush
	EnPassant
	Promotion
	KingCastle
	QueenCastle
)

func (k MoveKind) String() string {
	switch k {
	case DoublePush:
		return "double-push"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	case KingCastle:
		return "king-castle"
	case QueenCastle:
		return "queen-castle"
	default:
		return "positional"
	}
}

// Move is one legal move as reported by the position. Immutable value.
type Move struct {
	From    int
	To      int
	Kind    MoveKind
	Capture bool
	Promo   PieceType
}

func (m Move) IsCapture() bool {
	return m.Capture || m.Kind == EnPassant
}

func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

func (m Move) IsCastle() bool {
	return m.Kind == KingCastle || m.Kind == QueenCastle
}

func (m Move) String() string {
	from, _ := AlgebraicFromSquare(m.From)
	to, _ := AlgebraicFromSquare(m.To)
	return fmt.Sprintf("%s%s (%s)", from, to, m.Kind)
}

func FileOf(index int) int { return index % 8 }
func RankOf(index int) int { return index / 8 }

func SquareIndex(rank, file int) int {
	return rank*8 + file
}

// IsLightSquare: a1 is dark, so odd (rank+file) parity is light.
func IsLightSquare(index int) bool {
	return (RankOf(index)+FileOf(index))%2 == 1
}

func SquareFromAlgebraic(pos string) (int, error) {
	// 'a' ~ 'h' to 0-7
	// '1' ~ '8' to 0-7
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return -1, fmt.Errorf("invalid square %q", pos)
	}
	return int(pos[1]-'1')*8 + int(pos[0]-'a'), nil
}

func AlgebraicFromSquare(index int) (string, error) {
	if index < 0 || index >= 64 {
		return "", fmt.Errorf("invalid square index %d", index)
	}
	return string([]rune{rune(index%8 + 'a'), rune(index/8 + '1')}), nil
}

func ConvertRuneFromPiece(c Color, pt PieceType) rune {
	var r rune
	switch pt {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	default:
		return '.'
	}
	if c == White {
		r = r - 'a' + 'A'
	}
	return r
}
