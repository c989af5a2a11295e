package solver

import "github.com/behrlich/echo-solver/pkg/game"

// Scope is one node of the unrolled game tree: a finished match (the
// battlefields have all been fought), a round left unexplored because
// the generator's turn horizon ran out, or a phase step whose decision
// matrices and children have been built.
type Scope struct {
	// Completed is true once the match has ended; Score is only
	// meaningful when it is true.
	Completed bool
	Score     game.Score

	// Unexplored marks a leaf cut off by a Generator's turn horizon
	// before the match concluded; UnexploredState is the KnownState at
	// the start of the round that was never expanded, kept so
	// generation could resume from it later.
	Unexplored      bool
	UnexploredState game.KnownState

	// Matrices and Next are only populated for a non-completed,
	// non-unexplored scope.
	Matrices DecisionMatrices
	Next     []Scope
}

// CompletedScope wraps a final score as a leaf of the tree.
func CompletedScope(score game.Score) Scope {
	return Scope{Completed: true, Score: score}
}

// UnexploredScope wraps a round's starting state as a leaf of the tree,
// marking the point a Generator's turn horizon cut generation short.
func UnexploredScope(state game.KnownState) Scope {
	return Scope{Unexplored: true, UnexploredState: state}
}
