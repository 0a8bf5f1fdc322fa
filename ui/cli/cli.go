package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"dragchess/src/base"
	"dragchess/src/board"
	"dragchess/src/logx"
	"dragchess/src/position"

	"golang.org/x/term"
)

// CLIProcessing is the terminal front-end. Moves are entered in
// coordinate form ("e2e4", promotions "e7e8q"); the same lifecycle
// component as the GUI drives restart, confirmed over stdin.
type CLIProcessing struct {
	pos    position.Position
	lc     *board.Lifecycle
	logger logx.Logger
	in     *os.File
	out    io.Writer
}

func NewCLI(pos position.Position, logger logx.Logger) *CLIProcessing {
	c := &CLIProcessing{pos: pos, logger: logger, in: os.Stdin, out: os.Stdout}
	c.lc = board.NewLifecycle(c.confirm, logger)
	return c
}

// raw processing
// - enter a coordinate move and press Enter
// - 'm' lists legal moves
// - q or Ctrl+C to exit
// - redraw board every move
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, "\r\nType a move like e2e4 and press Enter, 'm' for moves, 'q' to quit.\r\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\r\nInterrupted")
			return nil
		}

		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			if s == "" {
				continue
			}
			if s == "q" || s == "Q" || s == "quit" {
				fmt.Fprintln(c.out, "\r\nQuitting")
				return nil
			}
			if s == "m" {
				c.printMoves()
				continue
			}
			if err := c.applyMove(s); err != nil {
				fmt.Fprintf(c.out, "\r\nbad move %q: %v\r\n", s, err)
				continue
			}
			c.redraw()
			if c.lc.CheckTerminal(c.pos) {
				c.redraw()
			}
			continue
		}

		// echo and buffer printable input
		if b >= 0x20 && b < 0x7f {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// RunLineMode is the fallback when the terminal cannot enter raw mode.
func (c *CLIProcessing) RunLineMode() error {
	c.redraw()
	fmt.Fprintln(c.out, "Type a move like e2e4, 'm' for moves, 'q' to quit.")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		if s == "q" || s == "Q" || s == "quit" {
			return nil
		}
		if s == "m" {
			c.printMoves()
			continue
		}
		if err := c.applyMove(s); err != nil {
			fmt.Fprintf(c.out, "bad move %q: %v\n", s, err)
			continue
		}
		c.redraw()
		if c.lc.CheckTerminal(c.pos) {
			c.redraw()
		}
	}
}

func (c *CLIProcessing) redraw() {
	PrintPosition(c.out, c.pos)
	status := c.pos.Status()
	if status == base.Normal {
		fmt.Fprintf(c.out, "%s to move\r\n", c.pos.TurnColor())
	} else {
		fmt.Fprintf(c.out, "%s\r\n", status)
	}
}

func (c *CLIProcessing) printMoves() {
	moves := c.pos.Moves()
	fmt.Fprintf(c.out, "\r\n%d legal moves:\r\n", len(moves))
	for _, mv := range moves {
		fmt.Fprintf(c.out, "  %s\r\n", mv)
	}
}

// applyMove parses coordinate notation and commits the matching legal
// move. An explicit promotion letter narrows the promotion choices.
func (c *CLIProcessing) applyMove(s string) error {
	if len(s) != 4 && len(s) != 5 {
		return fmt.Errorf("want from+to squares")
	}
	from, err := base.SquareFromAlgebraic(s[:2])
	if err != nil {
		return err
	}
	to, err := base.SquareFromAlgebraic(s[2:4])
	if err != nil {
		return err
	}
	promo := base.NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = base.Queen
		case 'r':
			promo = base.Rook
		case 'b':
			promo = base.Bishop
		case 'n':
			promo = base.Knight
		default:
			return fmt.Errorf("unknown promotion piece %q", s[4])
		}
	}

	for _, mv := range c.pos.Moves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if promo != base.NoPieceType && mv.Promo != promo {
			continue
		}
		c.logger.Infof("move %s", mv)
		return c.pos.MakeMove(mv)
	}
	return fmt.Errorf("not a legal move")
}

func (c *CLIProcessing) confirm(title, message string) bool {
	fmt.Fprintf(c.out, "\r\n%s: %s [y/N] ", title, message)
	r := bufio.NewReader(c.in)
	b, err := r.ReadByte()
	if err != nil {
		return false
	}
	fmt.Fprintln(c.out)
	return b == 'y' || b == 'Y'
}
