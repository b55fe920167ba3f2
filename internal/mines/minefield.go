package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Oracle is the only channel through which ground truth about mine
// placement reaches a player. Open reports whether the cell at x, y holds
// a mine and, if it does not, the number of mines among its up-to-8
// neighbors.
type Oracle interface {
	Open(x, y int) (n int, mine bool)
}

// Minefield holds the true mine layout. It belongs to the game, not the
// solver; the solver only ever sees it through [Oracle].
type Minefield struct {
	GameParams
	grid []bool
}

// NewMinefield places MineCount mines uniformly at random.
func NewMinefield(params GameParams, r *rand.Rand) *Minefield {
	f := &Minefield{
		GameParams: params,
		grid:       make([]bool, params.CellCount()),
	}
	f.place(r, -1, -1)
	return f
}

// NewSafeMinefield places mines so that none lands at sx, sy or within one
// cell of it, guaranteeing a zero first reveal there. On boards too dense
// to keep the whole 3x3 zone clear, only the start cell itself is kept
// mine-free.
func NewSafeMinefield(params GameParams, sx, sy int, r *rand.Rand) *Minefield {
	f := &Minefield{
		GameParams: params,
		grid:       make([]bool, params.CellCount()),
	}
	f.place(r, sx, sy)
	return f
}

func (f *Minefield) place(r *rand.Rand, sx, sy int) {
	/*
	 * Write down the list of possible mine locations, then pick
	 * MineCount off the list at random.
	 */
	_, _, mineCount := f.Unpack()
	candidates := f.candidates(sx, sy, 1)
	if len(candidates) < mineCount {
		/* not enough room around the safe zone, keep only the
		 * start cell clear */
		candidates = f.candidates(sx, sy, 0)
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		f.grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}
}

// candidates lists cell indices further than radius (in Chebyshev
// distance) from sx, sy. A negative sx disables the exclusion zone.
func (f *Minefield) candidates(sx, sy, radius int) []int {
	w, h, _ := f.Unpack()
	cs := make([]int, 0, f.CellCount())
	for y := range h {
		for x := range w {
			if sx >= 0 && absDiff(sy, y) <= radius && absDiff(sx, x) <= radius {
				continue
			}
			cs = append(cs, y*w+x)
		}
	}
	return cs
}

func (f *Minefield) MineAt(x, y int) bool {
	return f.grid[y*f.Width+x]
}

func (f *Minefield) Mines() (count int) {
	for _, mine := range f.grid {
		if mine {
			count++
		}
	}
	return
}

// [Minefield] implements [Oracle]
func (f *Minefield) Open(x, y int) (int, bool) {
	if f.MineAt(x, y) {
		return 0, true /* *bang* */
	}
	n := 0
	for i := -1; i <= 1; i++ {
		if x+i < 0 || x+i >= f.Width {
			continue
		}
		for j := -1; j <= 1; j++ {
			if y+j < 0 || y+j >= f.Height {
				continue
			}
			if i == 0 && j == 0 {
				continue
			}
			if f.MineAt(x+i, y+j) {
				n++
			}
		}
	}
	return n, false
}

func (f *Minefield) String() string {
	var b strings.Builder
	for y := range f.Height {
		for x := range f.Width {
			if f.grid[y*f.Width+x] {
				fmt.Fprint(&b, "* ")
			} else {
				fmt.Fprint(&b, "- ")
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
