package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

func TestPolicyPriority(t *testing.T) {
	o := makeOracle(t,
		"---",
		"---",
	)
	b := mines.NewBoard(o.params(false), o)
	p := NewPolicy(testRand())

	// Deduced mines come first.
	a, err := p.Next(b, Deduction{
		Safe:  []mines.Point{pt(0, 0)},
		Mined: []mines.Point{pt(1, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: ActionFlag, Cell: pt(1, 1)}, a)

	// Then deduced-safe reveals.
	a, err = p.Next(b, Deduction{Safe: []mines.Point{pt(0, 0)}})
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: ActionReveal, Cell: pt(0, 0)}, a)
}

func TestPolicyFallbackGuess(t *testing.T) {
	o := makeOracle(t,
		"*---",
		"----",
	)
	b := mines.NewBoard(o.params(false), o)
	p := NewPolicy(testRand())

	a, err := p.Next(b, Deduction{})
	require.NoError(t, err)
	assert.Equal(t, ActionReveal, a.Kind)
	assert.True(t, a.Guess)
	assert.True(t, b.PointInBounds(a.Cell.X, a.Cell.Y))
	assert.Equal(t, mines.Unknown, b.At(a.Cell.X, a.Cell.Y))
	assert.InDelta(t, 1.0/8.0, a.Risk, 1e-9)
}

func TestPolicyRiskAccountsForFlags(t *testing.T) {
	o := makeOracle(t,
		"**--",
	)
	b := mines.NewBoard(o.params(false), o)
	require.NoError(t, b.Flag(0, 0))

	p := NewPolicy(testRand())
	a, err := p.Next(b, Deduction{})
	require.NoError(t, err)
	// One of the three remaining hidden cells holds the last mine.
	assert.InDelta(t, 1.0/3.0, a.Risk, 1e-9)
	assert.NotEqual(t, pt(0, 0), a.Cell, "flagged cells are never guessed")
}

func TestPolicyNoMoves(t *testing.T) {
	o := makeOracle(t, "**")
	b := mines.NewBoard(o.params(false), o)
	require.NoError(t, b.Flag(0, 0))
	require.NoError(t, b.Flag(1, 0))

	p := NewPolicy(testRand())
	_, err := p.Next(b, Deduction{})
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestPolicyGuessIsSeeded(t *testing.T) {
	o := makeOracle(t,
		"----",
		"----",
	)
	pick := func() mines.Point {
		b := mines.NewBoard(o.params(false), o)
		a, err := NewPolicy(testRand()).Next(b, Deduction{})
		require.NoError(t, err)
		return a.Cell
	}
	assert.Equal(t, pick(), pick())
}
