package solver

import (
	"github.com/vancomm/minesweeper-bot/internal/mines"
)

// Deduction holds every logically certain conclusion the current
// constraints allow. Safe cells may be revealed without risk, Mined cells
// are provably mines. The same cell may be concluded by several
// constraints; each appears here once.
type Deduction struct {
	Safe  []mines.Point
	Mined []mines.Point
}

func (d Deduction) Empty() bool {
	return len(d.Safe) == 0 && len(d.Mined) == 0
}

// Deduce applies the two single-constraint inference rules to each
// constraint independently:
//
//   - if a constraint needs as many mines as it has hidden neighbors,
//     every one of them is a mine;
//   - if it needs none, every one of them is safe.
//
// No cross-constraint reasoning is done. That limitation is deliberate:
// constraints that match neither rule simply yield nothing, and the
// caller falls back to guessing. Deduce is pure and idempotent; output
// order follows constraint order.
func Deduce(cs []Constraint) Deduction {
	var (
		d    Deduction
		seen = make(map[mines.Point]struct{})
	)
	add := func(dst *[]mines.Point, p mines.Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		*dst = append(*dst, p)
	}
	for _, c := range cs {
		switch {
		case c.Mines == 0:
			for _, p := range c.Cells {
				add(&d.Safe, p)
			}
		case c.Mines == len(c.Cells):
			for _, p := range c.Cells {
				add(&d.Mined, p)
			}
		}
	}
	return d
}
