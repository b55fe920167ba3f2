package solver

import (
	"errors"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

type ActionKind int8

const (
	ActionReveal ActionKind = iota
	ActionFlag
)

func (k ActionKind) String() string {
	switch k {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	default:
		return "?"
	}
}

// Action is a single move the policy wants applied to the board. Guess is
// set when no certain deduction backed the choice; Risk is the estimated
// mine probability of the target cell at decision time.
type Action struct {
	Kind  ActionKind  `json:"kind"`
	Cell  mines.Point `json:"cell"`
	Guess bool        `json:"guess"`
	Risk  float64     `json:"risk"`
}

var ErrNoMoves = errors.New("no hidden cells left to act on")

// Policy picks the next action from the current deduction. Randomness is
// injected so a seeded generator makes whole games reproducible.
type Policy struct {
	rnd *rand.Rand
}

func NewPolicy(rnd *rand.Rand) *Policy {
	return &Policy{rnd: rnd}
}

// Next decides the single next action, in priority order: flag a deduced
// mine, reveal a deduced-safe cell, or guess. A guess picks uniformly at
// random among all hidden unflagged cells; they share one uniform risk
// estimate, so the minimum-risk set is all of them. Guessing is the
// documented point where the solver may lose.
func (p *Policy) Next(b *mines.Board, d Deduction) (Action, error) {
	if len(d.Mined) > 0 {
		return Action{Kind: ActionFlag, Cell: d.Mined[0]}, nil
	}
	if len(d.Safe) > 0 {
		return Action{Kind: ActionReveal, Cell: d.Safe[0]}, nil
	}

	var candidates []mines.Point
	for y := range b.Height {
		for x := range b.Width {
			if b.At(x, y) == mines.Unknown {
				candidates = append(candidates, mines.Point{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return Action{}, ErrNoMoves
	}
	remaining := b.MineCount - b.Flags()
	if remaining < 0 {
		remaining = 0
	}
	return Action{
		Kind:  ActionReveal,
		Cell:  candidates[p.rnd.IntN(len(candidates))],
		Guess: true,
		Risk:  float64(remaining) / float64(len(candidates)),
	}, nil
}
