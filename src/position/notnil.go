package position

import (
	"fmt"

	"dragchess/src/base"

	"github.com/notnil/chess"
)

// GamePosition adapts github.com/notnil/chess to the Position interface.
type GamePosition struct {
	game *chess.Game
	root string // FEN the game restarts from
}

func NewGame() *GamePosition {
	gp, _ := NewGameFromFEN(base.FEN_START_GAME)
	return gp
}

func NewGameFromFEN(fen string) (*GamePosition, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("error parse FEN: %v", err)
	}
	return &GamePosition{
		game: chess.NewGame(opt, chess.UseNotation(chess.UCINotation{})),
		root: fen,
	}, nil
}

func (gp *GamePosition) ColorBitboard(c base.Color) base.Bitboard {
	var bb base.Bitboard
	board := gp.game.Position().Board()
	for idx := 0; idx < 64; idx++ {
		p := board.Piece(chess.Square(idx))
		if p == chess.NoPiece {
			continue
		}
		if (c == base.White) == (p.Color() == chess.White) {
			bb = bb.Set(idx)
		}
	}
	return bb
}

func (gp *GamePosition) PieceBitboard(pt base.PieceType) base.Bitboard {
	var bb base.Bitboard
	want := convPieceType(pt)
	if want == chess.NoPieceType {
		return bb
	}
	board := gp.game.Position().Board()
	for idx := 0; idx < 64; idx++ {
		if board.Piece(chess.Square(idx)).Type() == want {
			bb = bb.Set(idx)
		}
	}
	return bb
}

func (gp *GamePosition) TurnColor() base.Color {
	if gp.game.Position().Turn() == chess.White {
		return base.White
	}
	return base.Black
}

func (gp *GamePosition) LastMove() (base.Move, bool) {
	hist := gp.game.Moves()
	if len(hist) == 0 {
		return base.Move{}, false
	}
	return gp.convMove(hist[len(hist)-1]), true
}

// Moves returns a fresh legal-move list for the side to move.
// Promotion alternatives surface queen first, so a first-match commit
// policy picks the queen.
func (gp *GamePosition) Moves() []base.Move {
	valid := gp.game.ValidMoves()
	mvs := make([]base.Move, 0, len(valid))
	for _, m := range valid {
		mvs = append(mvs, gp.convMove(m))
	}
	for i := 1; i < len(mvs); i++ {
		m := mvs[i]
		if m.Promo != base.Queen || !m.IsPromotion() {
			continue
		}
		j := i
		for j > 0 && mvs[j-1].IsPromotion() && mvs[j-1].From == m.From && mvs[j-1].To == m.To {
			mvs[j] = mvs[j-1]
			j--
		}
		mvs[j] = m
	}
	return mvs
}

func (gp *GamePosition) MakeMove(m base.Move) error {
	for _, cand := range gp.game.ValidMoves() {
		if int(cand.S1()) != m.From || int(cand.S2()) != m.To {
			continue
		}
		if m.IsPromotion() && convPieceType(m.Promo) != cand.Promo() {
			continue
		}
		return gp.game.Move(cand)
	}
	return ErrNoMatch
}

func (gp *GamePosition) Status() base.Status {
	if gp.game.Outcome() == chess.NoOutcome {
		return base.Normal
	}
	if gp.game.Method() == chess.Checkmate {
		return base.Checkmate
	}
	return base.Draw
}

// Reset replaces the game with a fresh one from the root FEN.
func (gp *GamePosition) Reset() {
	opt, _ := chess.FEN(gp.root)
	gp.game = chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))
}

func (gp *GamePosition) FEN() string {
	return gp.game.Position().String()
}

func (gp *GamePosition) convMove(m *chess.Move) base.Move {
	mv := base.Move{
		From:    int(m.S1()),
		To:      int(m.S2()),
		Kind:    base.Positional,
		Capture: m.HasTag(chess.Capture),
		Promo:   base.NoPieceType,
	}
	switch {
	case m.HasTag(chess.KingSideCastle):
		mv.Kind = base.KingCastle
	case m.HasTag(chess.QueenSideCastle):
		mv.Kind = base.QueenCastle
	case m.HasTag(chess.EnPassant):
		mv.Kind = base.EnPassant
	case m.Promo() != chess.NoPieceType:
		mv.Kind = base.Promotion
		mv.Promo = convFromChessType(m.Promo())
	case gp.isPawnAt(m) && absRankDiff(mv.From, mv.To) == 2:
		mv.Kind = base.DoublePush
	}
	return mv
}

// isPawnAt reports whether the move belongs to a pawn. Works for both
// pending moves (pawn still on the origin) and the last played move
// (pawn already on the destination).
func (gp *GamePosition) isPawnAt(m *chess.Move) bool {
	board := gp.game.Position().Board()
	if p := board.Piece(m.S1()); p != chess.NoPiece {
		return p.Type() == chess.Pawn
	}
	if p := board.Piece(m.S2()); p != chess.NoPiece {
		return p.Type() == chess.Pawn
	}
	return false
}

func absRankDiff(from, to int) int {
	d := base.RankOf(to) - base.RankOf(from)
	if d < 0 {
		d = -d
	}
	return d
}

func convPieceType(pt base.PieceType) chess.PieceType {
	switch pt {
	case base.Pawn:
		return chess.Pawn
	case base.Knight:
		return chess.Knight
	case base.Bishop:
		return chess.Bishop
	case base.Rook:
		return chess.Rook
	case base.Queen:
		return chess.Queen
	case base.King:
		return chess.King
	default:
		return chess.NoPieceType
	}
}

func convFromChessType(pt chess.PieceType) base.PieceType {
	switch pt {
	case chess.Pawn:
		return base.Pawn
	case chess.Knight:
		return base.Knight
	case chess.Bishop:
		return base.Bishop
	case chess.Rook:
		return base.Rook
	case chess.Queen:
		return base.Queen
	case chess.King:
		return base.King
	default:
		return base.NoPieceType
	}
}
