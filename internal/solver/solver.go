package solver

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-bot/internal/mines"
)

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "?"
	}
}

// Event describes one applied action: what was done, the resulting state
// of the target cell, and the loop status after the action.
type Event struct {
	Step   int             `json:"step"`
	Action Action          `json:"action"`
	Result mines.CellState `json:"result"`
	Status Status          `json:"status"`
}

type Observer interface {
	OnAction(Event)
}

// ObserverFunc adapts a plain function to [Observer].
type ObserverFunc func(Event)

func (f ObserverFunc) OnAction(e Event) { f(e) }

// Solver plays one game on one board. It owns the board for the duration
// of the game and runs strictly one action per step; there is no
// concurrency and no retry of a lost game.
type Solver struct {
	board     *mines.Board
	policy    *Policy
	observers []Observer
	status    Status
	steps     int
}

func New(board *mines.Board, rnd *rand.Rand, observers ...Observer) *Solver {
	return &Solver{
		board:     board,
		policy:    NewPolicy(rnd),
		observers: observers,
	}
}

func (s *Solver) Board() *mines.Board { return s.board }
func (s *Solver) Status() Status      { return s.status }
func (s *Solver) Steps() int          { return s.steps }

// Step runs one extract → deduce → decide → apply iteration and reports
// the loop status after it. Calling Step on a finished game is a no-op.
// Errors (a constraint violation, or the board rejecting a move) are
// fatal; revealing a mine is not an error but a [Lost] status.
func (s *Solver) Step() (Status, error) {
	if s.status != Playing {
		return s.status, nil
	}

	cs, err := Extract(s.board)
	if err != nil {
		return s.status, err
	}

	action, err := s.policy.Next(s.board, Deduce(cs))
	if err != nil {
		return s.status, err
	}

	var result mines.CellState
	switch action.Kind {
	case ActionFlag:
		if err := s.board.Flag(action.Cell.X, action.Cell.Y); err != nil {
			return s.status, fmt.Errorf("apply %s: %w", action.Kind, err)
		}
		result = mines.Flagged
	case ActionReveal:
		result, err = s.board.Reveal(action.Cell.X, action.Cell.Y)
		if err != nil {
			return s.status, fmt.Errorf("apply %s: %w", action.Kind, err)
		}
	}
	s.steps++

	if s.board.Exploded() {
		s.status = Lost
	} else if s.board.Solved() {
		s.status = Won
	}

	e := Event{Step: s.steps, Action: action, Result: result, Status: s.status}
	for _, o := range s.observers {
		o.OnAction(e)
	}
	return s.status, nil
}

// Run steps until the game is won or lost. Every step resolves exactly
// one previously hidden cell, so the loop is bounded by the cell count.
func (s *Solver) Run() (Status, error) {
	for range s.board.CellCount() {
		status, err := s.Step()
		if err != nil || status != Playing {
			return status, err
		}
	}
	return s.status, fmt.Errorf(
		"no terminal state after %d steps", s.steps,
	)
}
