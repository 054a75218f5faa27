package model

// Fragment is one DNA snippet of a batch. It never changes once generated;
// only the collection holding it does.
type Fragment struct {
	ID       int      `json:"id"`
	Category Category `json:"-"`
	Sequence string   `json:"sequence"`
}

// Board holds every fragment of a round, either in the unsorted pool or in
// exactly one bin.
type Board struct {
	Unsorted []Fragment
	Bins     [NumCategories][]Fragment
}

// DragSession is the fragment picked up but not yet dropped.
type DragSession struct {
	Fragment Fragment
	Active   bool
}

type Phase string

const (
	PhaseUnstarted Phase = "unstarted"
	PhaseGenerated Phase = "generated"
	PhaseSorting   Phase = "sorting"
	PhaseCompleted Phase = "completed"
)

// Verdict compares a placed fragment's true category against its bin.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// Game is the whole state of one browser's round. Values are never mutated
// in place: Reduce returns a new Game.
type Game struct {
	Round       int
	Board       Board
	Drag        DragSession
	ShowLibrary bool
	Completed   bool
	Score       int
}
