package mines

import "fmt"

type InvalidMoveError struct {
	X, Y   int
	Reason string
}

// [InvalidMoveError] implements [error]
func (e InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move at %d:%d: %s", e.X, e.Y, e.Reason)
}
