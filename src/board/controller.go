package board

import (
	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/src/position"
)

type State uint8

const (
	StateIdle State = iota
	StateArmed
	StateDragging
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return "idle"
	}
}

// Controller binds pointer gestures to the highlighted grid and commits
// moves to the position. All entry points run inside one event callback,
// so no locking is needed; a full resync always completes before the
// next mutating gesture can be accepted.
type Controller struct {
	board     *Board
	pos       position.Position
	lifecycle *Lifecycle
	logger    logx.Logger

	state  State
	origin int // armed origin index, -1 otherwise
}

func NewController(b *Board, pos position.Position, lc *Lifecycle, logger logx.Logger) *Controller {
	return &Controller{board: b, pos: pos, lifecycle: lc, logger: logger, origin: -1}
}

func (c *Controller) State() State   { return c.state }
func (c *Controller) Board() *Board  { return c.board }
func (c *Controller) Dragging() bool { return c.state == StateDragging }
func (c *Controller) Origin() int    { return c.origin }

// Resync rebuilds the full render state from the position: piece nodes,
// last-move marks, then the global can-move phase. Afterwards the
// lifecycle inspects terminal status and may swap in a fresh position.
func (c *Controller) Resync() error {
	c.state = StateIdle
	c.origin = -1
	if err := c.board.Sync(c.pos); err != nil {
		return err
	}
	if err := c.board.MarkMovable(c.pos); err != nil {
		return err
	}
	if c.lifecycle != nil && c.lifecycle.CheckTerminal(c.pos) {
		if err := c.board.Sync(c.pos); err != nil {
			return err
		}
		return c.board.MarkMovable(c.pos)
	}
	return nil
}

// PointerEnter runs the hover phase for the square under the cursor.
// Ignored mid-drag so the active highlight survives the gesture.
func (c *Controller) PointerEnter(id string) {
	if c.state == StateDragging {
		return
	}
	armed, err := c.board.HoverEnter(id, c.pos)
	if err != nil {
		// the grid and the position disagree about square identity
		c.logger.DPanicf("hover on unresolvable square: %v", err)
		return
	}
	if armed {
		sq, _ := c.board.SquareByID(id)
		c.state = StateArmed
		c.origin = sq.Index
	} else if c.state == StateArmed {
		c.board.HoverLeave()
		c.state = StateIdle
		c.origin = -1
	}
}

// PointerLeave clears hover highlights unless a drag is in flight.
func (c *Controller) PointerLeave() {
	if c.state == StateDragging {
		return
	}
	c.board.HoverLeave()
	c.state = StateIdle
	c.origin = -1
}

// DragStart lifts the armed piece. Reports whether the drag began.
func (c *Controller) DragStart(id string) bool {
	if c.state != StateArmed {
		return false
	}
	sq, err := c.board.SquareByID(id)
	if err != nil {
		c.logger.DPanicf("drag on unresolvable square: %v", err)
		return false
	}
	if sq.Index != c.origin || !sq.Tags.Has(TagFrom) {
		return false
	}
	c.state = StateDragging
	return true
}

// DragStop handles a release without a drop, e.g. back over the origin.
// Highlights stay until the next pointer-leave or resync.
func (c *Controller) DragStop() {
	if c.state == StateDragging {
		c.state = StateArmed
	}
}

// Drop resolves the destination and commits the matching move. With
// several matches (promotion choices on one destination) the first one
// is committed. With none the gesture is discarded: no mutation, all
// highlight and drag state cleared.
func (c *Controller) Drop(id string) error {
	if c.state != StateDragging {
		return nil
	}
	c.state = StateCommitting

	sq, err := c.board.SquareByID(id)
	if err != nil {
		c.logger.DPanicf("drop on unresolvable square: %v", err)
		c.abort()
		return nil
	}

	var matches []base.Move
	for _, mv := range c.pos.Moves() {
		if mv.From == c.origin && mv.To == sq.Index {
			matches = append(matches, mv)
		}
	}
	if len(matches) == 0 {
		c.abort()
		return nil
	}
	if len(matches) > 1 {
		c.logger.Warnf("ambiguous drop on %s: %d matches, committing %s", id, len(matches), matches[0])
	}

	c.logger.Infof("move %s", matches[0])
	if err := c.pos.MakeMove(matches[0]); err != nil {
		c.logger.Errorf("error commit move %s: %v", matches[0], err)
		c.abort()
		return err
	}
	return c.Resync()
}

// DropOutside discards a gesture released off the board.
func (c *Controller) DropOutside() {
	if c.state != StateDragging {
		return
	}
	c.abort()
}

func (c *Controller) abort() {
	c.board.HoverLeave()
	c.state = StateIdle
	c.origin = -1
}
