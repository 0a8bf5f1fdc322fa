package board

import (
	"fmt"

	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/src/position"
)

// ConfirmFunc presents a blocking yes/no prompt. The GUI injects a
// native dialog, the terminal front-end a stdin prompt, tests a stub.
type ConfirmFunc func(title, message string) bool

// Lifecycle inspects terminal status after each resynchronization and
// drives the restart flow.
type Lifecycle struct {
	confirm ConfirmFunc
	logger  logx.Logger
}

func NewLifecycle(confirm ConfirmFunc, logger logx.Logger) *Lifecycle {
	return &Lifecycle{confirm: confirm, logger: logger}
}

// CheckTerminal prompts on checkmate or draw and, when the user
// accepts, resets the position to its initial arrangement. Reports
// whether a reset happened. Declining leaves the finished board as is;
// with no legal moves left nothing remains highlighted.
func (l *Lifecycle) CheckTerminal(pos position.Position) bool {
	switch pos.Status() {
	case base.Checkmate:
		loser := pos.TurnColor()
		l.logger.Infof("checkmate, %s wins", loser.Other())
		if l.confirm("Checkmate", fmt.Sprintf("Checkmate: %s loses. Start a new game?", loser)) {
			pos.Reset()
			return true
		}
	case base.Draw:
		l.logger.Info("game drawn")
		if l.confirm("Draw", "The game is a draw. Start a new game?") {
			pos.Reset()
			return true
		}
	}
	return false
}
