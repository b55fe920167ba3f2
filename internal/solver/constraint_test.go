package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

func TestExtract(t *testing.T) {
	o := makeOracle(t,
		"*--",
		"-*-",
		"---",
	)
	b := mines.NewBoard(o.params(false), o)

	_, err := b.Reveal(2, 0)
	require.NoError(t, err)

	cs, err := Extract(b)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, mines.Point{X: 2, Y: 0}, cs[0].Cell)
	assert.Equal(t, 1, cs[0].Mines)
	assert.ElementsMatch(t, []mines.Point{
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}, cs[0].Cells)
}

func TestExtractAccountsForFlags(t *testing.T) {
	o := makeOracle(t,
		"*--",
		"-*-",
		"---",
	)
	b := mines.NewBoard(o.params(false), o)

	_, err := b.Reveal(2, 0)
	require.NoError(t, err)
	require.NoError(t, b.Flag(1, 1))

	cs, err := Extract(b)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, 0, cs[0].Mines, "flag must be deducted from the count")
	assert.ElementsMatch(t, []mines.Point{
		{X: 1, Y: 0}, {X: 2, Y: 1},
	}, cs[0].Cells)
}

func TestExtractSkipsExplainedCells(t *testing.T) {
	o := makeOracle(t,
		"--",
		"--",
	)
	b := mines.NewBoard(o.params(false), o)

	for _, p := range []mines.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		_, err := b.Reveal(p.X, p.Y)
		require.NoError(t, err)
	}

	cs, err := Extract(b)
	require.NoError(t, err)
	assert.Empty(t, cs, "cells with no hidden neighbors contribute nothing")
}

func TestExtractViolation(t *testing.T) {
	o := makeOracle(t,
		"---",
		"---",
	)
	b := mines.NewBoard(o.params(false), o)

	_, err := b.Reveal(0, 0)
	require.NoError(t, err)
	// A bogus flag next to a zero count makes the constraint unsatisfiable.
	require.NoError(t, b.Flag(1, 0))

	_, err = Extract(b)
	var cv ConstraintViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, mines.Point{X: 0, Y: 0}, cv.Cell)
	assert.Equal(t, -1, cv.Mines)
}
