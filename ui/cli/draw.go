package cli

import (
	"fmt"
	"io"

	"dragchess/src/base"
	"dragchess/src/position"

	"github.com/fatih/color"
)

var (
	lightSquare = color.New(color.BgWhite)
	darkSquare  = color.New(color.BgHiBlack)
	whitePiece  = color.New(color.FgHiWhite)
	blackPiece  = color.New(color.FgBlack)
)

func pieceGlyph(c base.Color, pt base.PieceType) string {
	white := map[base.PieceType]string{
		base.King: "♔", base.Queen: "♕", base.Rook: "♖",
		base.Bishop: "♗", base.Knight: "♘", base.Pawn: "♙",
	}
	black := map[base.PieceType]string{
		base.King: "♚", base.Queen: "♛", base.Rook: "♜",
		base.Bishop: "♝", base.Knight: "♞", base.Pawn: "♟",
	}
	if c == base.White {
		return white[pt]
	}
	return black[pt]
}

// PrintPosition renders the board from the position's occupancy sets,
// top rank first.
func PrintPosition(w io.Writer, pos position.Position) {
	white := pos.ColorBitboard(base.White)
	black := pos.ColorBitboard(base.Black)
	var byType [len(base.PieceTypes)]base.Bitboard
	for i, pt := range base.PieceTypes {
		byType[i] = pos.PieceBitboard(pt)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			idx := base.SquareIndex(rank, file)

			glyph := " "
			fg := blackPiece
			switch {
			case white.IsSet(idx):
				fg = whitePiece
				glyph = glyphAt(idx, base.White, byType)
			case black.IsSet(idx):
				glyph = glyphAt(idx, base.Black, byType)
			}

			bg := darkSquare
			if base.IsLightSquare(idx) {
				bg = lightSquare
			}
			bg.Fprint(w, fg.Sprintf(" %s ", glyph))
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(w)
}

func glyphAt(idx int, c base.Color, byType [len(base.PieceTypes)]base.Bitboard) string {
	for i, pt := range base.PieceTypes {
		if byType[i].IsSet(idx) {
			return pieceGlyph(c, pt)
		}
	}
	return "?"
}
