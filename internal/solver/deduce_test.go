package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

func pt(x, y int) mines.Point { return mines.Point{X: x, Y: y} }

func TestDeduceRules(t *testing.T) {
	tests := []struct {
		name       string
		constraint Constraint
		safe       []mines.Point
		mined      []mines.Point
	}{
		{
			name: "all mines when count equals hidden",
			constraint: Constraint{
				Cell: pt(1, 1), Mines: 2,
				Cells: []mines.Point{pt(0, 0), pt(2, 2)},
			},
			mined: []mines.Point{pt(0, 0), pt(2, 2)},
		},
		{
			name: "single forced mine",
			constraint: Constraint{
				Cell: pt(0, 0), Mines: 1,
				Cells: []mines.Point{pt(1, 0)},
			},
			mined: []mines.Point{pt(1, 0)},
		},
		{
			name: "all safe when count is zero",
			constraint: Constraint{
				Cell: pt(1, 1), Mines: 0,
				Cells: []mines.Point{pt(0, 0), pt(1, 0), pt(2, 0)},
			},
			safe: []mines.Point{pt(0, 0), pt(1, 0), pt(2, 0)},
		},
		{
			name: "no conclusion in between",
			constraint: Constraint{
				Cell: pt(1, 1), Mines: 1,
				Cells: []mines.Point{pt(0, 0), pt(2, 2)},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Deduce([]Constraint{test.constraint})
			assert.Equal(t, test.safe, d.Safe)
			assert.Equal(t, test.mined, d.Mined)
			if test.safe == nil && test.mined == nil {
				assert.True(t, d.Empty())
			}
		})
	}
}

func TestDeduceNeverDoubleFires(t *testing.T) {
	// A constraint matches at most one rule: both would require
	// Mines == 0 == len(Cells), and empty constraints are never built.
	d := Deduce([]Constraint{
		{Cell: pt(0, 0), Mines: 1, Cells: []mines.Point{pt(1, 0)}},
	})
	for _, s := range d.Safe {
		assert.NotContains(t, d.Mined, s)
	}
}

func TestDeduceMergesConstraints(t *testing.T) {
	d := Deduce([]Constraint{
		{Cell: pt(0, 0), Mines: 1, Cells: []mines.Point{pt(1, 1)}},
		{Cell: pt(2, 2), Mines: 1, Cells: []mines.Point{pt(1, 1)}},
		{Cell: pt(0, 2), Mines: 0, Cells: []mines.Point{pt(0, 1)}},
	})
	assert.Equal(t, []mines.Point{pt(1, 1)}, d.Mined,
		"agreeing constraints must not duplicate a conclusion")
	assert.Equal(t, []mines.Point{pt(0, 1)}, d.Safe)
}

func TestDeduceIdempotent(t *testing.T) {
	cs := []Constraint{
		{Cell: pt(0, 0), Mines: 2, Cells: []mines.Point{pt(1, 0), pt(0, 1)}},
		{Cell: pt(2, 2), Mines: 0, Cells: []mines.Point{pt(2, 1)}},
	}
	assert.Equal(t, Deduce(cs), Deduce(cs))
}
