// Game state machine. Every user interaction is an Event applied by Reduce.

package model

import "math/rand/v2"

type Event interface {
	isEvent()
}

// NewGame discards the current round and deals a fresh batch.
type NewGame struct{}

// BeginDrag picks up a fragment from the unsorted pool.
type BeginDrag struct {
	FragmentID int
}

// AbandonDrag ends a drag that never reached a bin.
type AbandonDrag struct{}

// Drop releases the dragged fragment over a bin.
type Drop struct {
	Target Category
}

// ReturnFragment sends a placed fragment back to the pool.
type ReturnFragment struct {
	FragmentID int
	From       Category
}

type ToggleLibrary struct{}

func (NewGame) isEvent()        {}
func (BeginDrag) isEvent()      {}
func (AbandonDrag) isEvent()    {}
func (Drop) isEvent()           {}
func (ReturnFragment) isEvent() {}
func (ToggleLibrary) isEvent()  {}

// Reduce applies ev to g and returns the next state. rng is only drawn from
// by NewGame. Events that do not apply to the current state return g as is.
func Reduce(g Game, ev Event, rng *rand.Rand) Game {
	switch e := ev.(type) {
	case NewGame:
		return settle(Game{
			Round:       g.Round + 1,
			Board:       NewBoard(Generate(FragmentCount, rng)),
			ShowLibrary: g.ShowLibrary,
		})

	case BeginDrag:
		idx := indexOf(g.Board.Unsorted, e.FragmentID)
		if idx < 0 {
			return g
		}
		g.Drag = g.Drag.Begin(g.Board.Unsorted[idx])
		return g

	case AbandonDrag:
		g.Drag = g.Drag.Abandon()
		return g

	case Drop:
		if !g.Drag.Active {
			return g
		}
		g.Board, g.Drag, _ = g.Drag.Complete(g.Board, e.Target)
		return settle(g)

	case ReturnFragment:
		board, moved := g.Board.MoveToUnsorted(e.FragmentID, e.From)
		if !moved {
			return g
		}
		g.Board = board
		return settle(g)

	case ToggleLibrary:
		g.ShowLibrary = !g.ShowLibrary
		return g
	}

	return g
}

// settle recomputes the derived completion flag and score after a board change.
func settle(g Game) Game {
	g.Completed = g.Board.Total() > 0 && g.Board.Complete()
	if g.Completed {
		g.Score = Score(g.Board)
	} else {
		g.Score = 0
	}
	return g
}

func (g Game) Phase() Phase {
	total := g.Board.Total()
	switch {
	case total == 0:
		return PhaseUnstarted
	case g.Completed:
		return PhaseCompleted
	case len(g.Board.Unsorted) == total:
		return PhaseGenerated
	default:
		return PhaseSorting
	}
}
