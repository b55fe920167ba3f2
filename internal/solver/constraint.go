package solver

import (
	"github.com/vancomm/minesweeper-bot/internal/mines"
)

// Constraint is the local fact "exactly Mines of Cells hold mines",
// derived from one revealed cell. Constraints are rebuilt from board state
// every step and never outlive it.
type Constraint struct {
	Cell  mines.Point   // revealed source cell
	Mines int           // mines not yet accounted for by flags
	Cells []mines.Point // hidden, unflagged neighbors
}

// Extract derives one constraint per revealed cell whose count is not yet
// fully explained. Cells with no hidden unflagged neighbors contribute
// nothing. A count that cannot be satisfied by the remaining hidden
// neighbors is a [ConstraintViolationError].
func Extract(b *mines.Board) ([]Constraint, error) {
	var cs []Constraint
	for y := range b.Height {
		for x := range b.Width {
			s := b.At(x, y)
			if !s.Revealed() {
				continue
			}
			flagged := 0
			var hidden []mines.Point
			for _, p := range b.Neighbors(x, y) {
				switch b.At(p.X, p.Y) {
				case mines.Flagged:
					flagged++
				case mines.Unknown:
					hidden = append(hidden, p)
				}
			}
			if len(hidden) == 0 {
				continue
			}
			k := int(s) - flagged
			if k < 0 || k > len(hidden) {
				return nil, ConstraintViolationError{
					Cell:   mines.Point{X: x, Y: y},
					Mines:  k,
					Hidden: len(hidden),
				}
			}
			cs = append(cs, Constraint{
				Cell:  mines.Point{X: x, Y: y},
				Mines: k,
				Cells: hidden,
			})
		}
	}
	return cs, nil
}
