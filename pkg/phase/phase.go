// Package phase implements the three-step state machine a round of play
// advances through: committing a creature and edict (Main), guessing
// the opponent's creature (Sabotage), and — when the seer effect is
// active — picking which of two committed creatures to keep (Seer).
package phase

import (
	"github.com/behrlich/echo-solver/pkg/battle"
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
)

// AdvanceResult is the outcome of advancing a phase: either the next
// phase paired with the next KnownState, or the match has concluded.
type AdvanceResult struct {
	Finished  bool
	Score     game.Score
	NextPhase Phase
	NextState game.KnownState
}

// Phase is one step of the Main -> Sabotage -> Seer state machine. Each
// implementation knows how many decisions/hidden states/reveals are
// possible at its step, and how to advance to the next one.
type Phase interface {
	Tag() game.PhaseTag

	// IsSymmetrical reports whether both players face the same
	// distribution of decisions and hidden states this step, letting the
	// solver share one regret table between them.
	IsSymmetrical(state game.KnownState) bool

	DecisionCounts(state game.KnownState) game.Pair[int]
	HiddenCounts(state game.KnownState) game.Pair[int]
	RevealCount(state game.KnownState) int

	AdvanceState(state game.KnownState, reveal indexing.RevealIndex) AdvanceResult

	// ValidHiddenStates enumerates every pair of hidden states reachable
	// at this phase, for exhaustive testing of the indexing layer.
	ValidHiddenStates(state game.KnownStateSummary) []game.Pair[indexing.EncodingInfo]

	// AdvanceHiddenIndices derives the next phase's hidden information
	// and the reveal index for this step, from both players' decisions.
	AdvanceHiddenIndices(
		state game.KnownStateSummary,
		hidden game.Pair[indexing.HiddenState],
		decisions game.Pair[indexing.DecisionIndex],
	) (game.Pair[indexing.EncodingInfo], indexing.RevealIndex, bool)
}

func defaultHiddenCounts(p Phase, state game.KnownState) game.Pair[int] {
	var counts game.Pair[int]
	for _, player := range game.Players {
		counts[player] = indexing.HiddenIndexCount(state, player, p.Tag())
	}
	return counts
}

// advanceTurn resolves a battle context and wraps its TurnResult into an
// AdvanceResult carrying the next phase (MainPhase for a new round).
func advanceTurn(ctx battle.Context) AdvanceResult {
	result := ctx.AdvanceKnownState()
	if result.Finished {
		return AdvanceResult{Finished: true, Score: result.Final}
	}
	return AdvanceResult{NextPhase: NewMainPhase(), NextState: *result.Next}
}
