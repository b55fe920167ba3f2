package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

// gridOracle serves a fixed layout ('*' = mine) for tests.
type gridOracle struct {
	width, height int
	mine          []bool
}

func makeOracle(t *testing.T, rows ...string) gridOracle {
	t.Helper()
	o := gridOracle{width: len(rows[0]), height: len(rows)}
	for _, row := range rows {
		require.Len(t, row, o.width)
		for _, c := range row {
			o.mine = append(o.mine, c == '*')
		}
	}
	return o
}

func (o gridOracle) mineCount() (n int) {
	for _, m := range o.mine {
		if m {
			n++
		}
	}
	return
}

func (o gridOracle) params(floodFill bool) mines.GameParams {
	return mines.GameParams{
		Width:     o.width,
		Height:    o.height,
		MineCount: o.mineCount(),
		FloodFill: floodFill,
	}
}

// [gridOracle] implements [mines.Oracle]
func (o gridOracle) Open(x, y int) (int, bool) {
	if o.mine[y*o.width+x] {
		return 0, true
	}
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < o.width && 0 <= yy && yy < o.height &&
				o.mine[yy*o.width+xx] {
				n++
			}
		}
	}
	return n, false
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func collect(events *[]Event) Observer {
	return ObserverFunc(func(e Event) {
		*events = append(*events, e)
	})
}

func TestEndgameDeduction(t *testing.T) {
	o := makeOracle(t, "-*-")
	b := mines.NewBoard(o.params(false), o)
	_, err := b.Reveal(0, 0)
	require.NoError(t, err)

	var events []Event
	s := New(b, testRand(), collect(&events))

	status, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, Won, status)

	// The count-1 cell with one hidden neighbor forces a flag, after
	// which the last cell is the only candidate left.
	require.Len(t, events, 2)
	assert.Equal(t, ActionFlag, events[0].Action.Kind)
	assert.Equal(t, mines.Point{X: 1, Y: 0}, events[0].Action.Cell)
	assert.False(t, events[0].Action.Guess)
	assert.Equal(t, ActionReveal, events[1].Action.Kind)
	assert.Equal(t, mines.Point{X: 2, Y: 0}, events[1].Action.Cell)
	assert.Equal(t, Won, events[1].Status)
}

func TestZeroDeducesAllNeighborsSafe(t *testing.T) {
	o := makeOracle(t,
		"--",
		"--",
	)
	b := mines.NewBoard(o.params(false), o)
	_, err := b.Reveal(0, 0)
	require.NoError(t, err)

	var events []Event
	s := New(b, testRand(), collect(&events))

	status, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, Won, status)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, ActionReveal, e.Action.Kind)
		assert.False(t, e.Action.Guess, "deduced-safe reveals are not guesses")
	}
}

func TestFloodFillWinsInOneStep(t *testing.T) {
	o := makeOracle(t,
		"--",
		"--",
	)
	b := mines.NewBoard(o.params(true), o)

	s := New(b, testRand())
	status, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, Won, status)
	assert.Equal(t, 1, s.Steps())
}

func TestLossIsTerminalNotError(t *testing.T) {
	o := makeOracle(t, "*")
	b := mines.NewBoard(o.params(false), o)

	var events []Event
	s := New(b, testRand(), collect(&events))

	status, err := s.Run()
	require.NoError(t, err, "losing is an outcome, not an error")
	assert.Equal(t, Lost, status)
	require.Len(t, events, 1)
	assert.Equal(t, mines.Exploded, events[0].Result)
	assert.Equal(t, Lost, events[0].Status)

	// A finished game stays finished.
	status, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, Lost, status)
	assert.Len(t, events, 1)
}

func TestDeterminism(t *testing.T) {
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}

	play := func() []Event {
		r := rand.New(rand.NewPCG(7, 11))
		f := mines.NewMinefield(params, r)
		var events []Event
		s := New(mines.NewBoard(params, f), r, collect(&events))
		_, err := s.Run()
		require.NoError(t, err)
		return events
	}

	assert.Equal(t, play(), play(),
		"same seed and same oracle must produce the same action sequence")
}

func TestTerminationAndConsistency(t *testing.T) {
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}

	for seed := range uint64(25) {
		r := rand.New(rand.NewPCG(seed, seed+1))
		f := mines.NewMinefield(params, r)
		b := mines.NewBoard(params, f)

		var events []Event
		s := New(b, r, collect(&events))

		status, err := s.Run()
		require.NoError(t, err)
		require.Contains(t, []Status{Won, Lost}, status)
		require.LessOrEqual(t, s.Steps(), params.CellCount())

		// No cell is ever acted on twice, and every step before the
		// last leaves the game in progress.
		seen := make(map[mines.Point]struct{})
		for i, e := range events {
			_, dup := seen[e.Action.Cell]
			require.False(t, dup, "cell %s acted on twice", e.Action.Cell)
			seen[e.Action.Cell] = struct{}{}
			if i < len(events)-1 {
				require.Equal(t, Playing, e.Status)
			}
		}
		require.Equal(t, status, events[len(events)-1].Status)
	}
}

func TestProgress(t *testing.T) {
	o := makeOracle(t,
		"*---",
		"----",
		"---*",
	)
	b := mines.NewBoard(o.params(false), o)
	s := New(b, testRand())

	hidden := b.Hidden()
	for {
		status, err := s.Step()
		require.NoError(t, err)
		require.Less(t, b.Hidden(), hidden,
			"every step must resolve at least one hidden cell")
		hidden = b.Hidden()
		if status != Playing {
			break
		}
	}
}
