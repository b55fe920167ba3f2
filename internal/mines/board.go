package mines

// Board is the player-knowledge side of a game: it tracks what has been
// revealed or flagged and consults an [Oracle] on reveals. It never
// inspects mine placement directly.
type Board struct {
	GameParams
	grid     Grid
	oracle   Oracle
	revealed int
	flags    int
	exploded bool
}

func NewBoard(params GameParams, oracle Oracle) *Board {
	grid := make(Grid, params.CellCount())
	for i := range grid {
		grid[i] = Unknown
	}
	return &Board{
		GameParams: params,
		grid:       grid,
		oracle:     oracle,
	}
}

func (b *Board) At(x, y int) CellState {
	return b.grid[y*b.Width+x]
}

// Grid exposes the current player knowledge for rendering. Callers must
// not mutate it.
func (b *Board) Grid() Grid {
	return b.grid
}

// Neighbors returns every in-bounds cell at Chebyshev distance 1 from
// x, y: up to 8, fewer at edges and corners.
func (b *Board) Neighbors(x, y int) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.PointInBounds(x+dx, y+dy) {
				ns = append(ns, Point{x + dx, y + dy})
			}
		}
	}
	return ns
}

// Reveal opens a hidden cell. Stepping on a mine is not an error: the cell
// becomes [Exploded] and the board is dead. When FloodFill is set, opening
// a zero-count cell opens its hidden neighbors as well.
func (b *Board) Reveal(x, y int) (CellState, error) {
	if !b.PointInBounds(x, y) {
		return Unknown, InvalidMoveError{x, y, "out of bounds"}
	}
	i := y*b.Width + x
	if b.grid[i] != Unknown {
		return b.grid[i], InvalidMoveError{x, y, "cell is not hidden"}
	}
	return b.open(x, y), nil
}

func (b *Board) open(x, y int) CellState {
	i := y*b.Width + x
	n, mine := b.oracle.Open(x, y)
	if mine {
		b.exploded = true
		b.grid[i] = Exploded
		return Exploded
	}
	b.grid[i] = CellState(n)
	b.revealed++
	if n == 0 && b.FloodFill {
		for _, p := range b.Neighbors(x, y) {
			if b.grid[p.Y*b.Width+p.X] == Unknown {
				b.open(p.X, p.Y)
			}
		}
	}
	return b.grid[i]
}

// Flag marks a hidden cell as a believed mine. Flags are belief markers
// only; flagging never consults the oracle and never triggers a loss.
func (b *Board) Flag(x, y int) error {
	if !b.PointInBounds(x, y) {
		return InvalidMoveError{x, y, "out of bounds"}
	}
	i := y*b.Width + x
	if b.grid[i] != Unknown {
		return InvalidMoveError{x, y, "cell is not hidden"}
	}
	b.grid[i] = Flagged
	b.flags++
	return nil
}

func (b *Board) Exploded() bool {
	return b.exploded
}

// Solved reports whether every non-mine cell has been revealed.
func (b *Board) Solved() bool {
	return !b.exploded && b.revealed == b.CellCount()-b.MineCount
}

// Hidden counts cells that are neither revealed nor flagged.
func (b *Board) Hidden() (count int) {
	for _, s := range b.grid {
		if s == Unknown {
			count++
		}
	}
	return
}

func (b *Board) Revealed() int {
	return b.revealed
}

func (b *Board) Flags() int {
	return b.flags
}

func (b *Board) String() string {
	return b.grid.ToString(b.Width)
}
