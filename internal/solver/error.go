package solver

import (
	"fmt"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

// ConstraintViolationError means a revealed count is inconsistent with the
// flags around it. It can only happen after a flagging mistake or a
// desynchronized board and is fatal to the solve.
type ConstraintViolationError struct {
	Cell   mines.Point
	Mines  int
	Hidden int
}

// [ConstraintViolationError] implements [error]
func (e ConstraintViolationError) Error() string {
	return fmt.Sprintf(
		"constraint violation at %s: %d mines required among %d hidden neighbors",
		e.Cell, e.Mines, e.Hidden,
	)
}
