package board

import (
	"errors"
	"fmt"

	"dragchess/src/base"
	"dragchess/src/logx"
)

var (
	ErrBoardBuilt    = errors.New("board already built")
	ErrBoardNotBuilt = errors.New("board not built")
)

// PieceNode is the rendered piece on a square. Recreated on every sync.
type PieceNode struct {
	Type  base.PieceType
	Color base.Color
	Turn  bool // occupying color equals the side to move
	Tags  TagSet
}

// Square is one cell of the grid. Created once by Build, never destroyed.
type Square struct {
	Index   int
	Rank    int
	File    int
	ID      string // algebraic coordinate, stable lookup key
	Light   bool
	Tooltip string

	Piece *PieceNode // nil when empty
	Tags  TagSet
}

// Board owns the 64-square grid and its render state.
type Board struct {
	built   bool
	squares [64]*Square
	byID    map[string]*Square
	logger  logx.Logger
}

func NewBoard(logger logx.Logger) *Board {
	return &Board{byID: make(map[string]*Square, 64), logger: logger}
}

// Build constructs the grid once. A second call is a caller bug and
// returns ErrBoardBuilt instead of mounting a duplicate grid.
func (b *Board) Build() error {
	if b.built {
		return ErrBoardBuilt
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			idx := base.SquareIndex(rank, file)
			id, err := base.AlgebraicFromSquare(idx)
			if err != nil {
				return err
			}
			light := base.IsLightSquare(idx)
			shade := "dark"
			if light {
				shade = "light"
			}
			sq := &Square{
				Index:   idx,
				Rank:    rank,
				File:    file,
				ID:      id,
				Light:   light,
				Tooltip: fmt.Sprintf("%s: rank %d, file %c, index %d, %s", id, rank+1, 'a'+file, idx, shade),
			}
			b.squares[idx] = sq
			b.byID[id] = sq
		}
	}
	b.built = true
	b.logger.Debug("board grid built")
	return nil
}

func (b *Board) Built() bool {
	return b.built
}

func (b *Board) Square(index int) *Square {
	if index < 0 || index >= 64 {
		return nil
	}
	return b.squares[index]
}

// SquareByID resolves an algebraic identifier. Failure means the render
// state references a square the grid never had, which is a
// desynchronization bug, so the caller must fail fast.
func (b *Board) SquareByID(id string) (*Square, error) {
	sq, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown square %q", id)
	}
	return sq, nil
}

func (b *Board) Squares() [64]*Square {
	return b.squares
}
