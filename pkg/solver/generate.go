package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// UnlimitedTurns tells a Generator to explore every round until the
// match concludes, never truncating into an Unexplored leaf.
const UnlimitedTurns = -1

// Generator unrolls the game tree for a round of Echo, starting from a
// KnownState at the beginning of the Main phase. Turns bounds how many
// more rounds are explored before a new round is cut off into an
// Unexplored leaf instead of being expanded; UnlimitedTurns explores
// to the match's conclusion regardless of round count.
type Generator struct {
	State game.KnownState
	Turns int
}

// NewGenerator builds a Generator that explores every round to the
// match's conclusion, the shape most callers want.
func NewGenerator(state game.KnownState) Generator {
	return Generator{State: state, Turns: UnlimitedTurns}
}

// Generate builds the Scope covering every possible continuation of
// the match from g.State out to g.Turns rounds, logging the resulting
// tree's size as a structured event once generation completes.
func (g Generator) Generate() Scope {
	root := generatePhase(phase.NewMainPhase(), g.State, g.Turns)
	stats := EstimateTree(g.State, g.Turns)
	log.Info().
		Int("nodes", stats.Nodes).
		Uint64("estimated_bytes", stats.Bytes).
		Uint64("weight_cells", stats.WeightCells).
		Msg("generated game tree")
	return root
}

// nextTurns decrements the turn horizon exactly when a round concludes
// and a fresh Main phase begins, mirroring the original generator's
// GenerationContext::turns field (decremented only on the Seer ->
// Main transition, never mid-round).
func nextTurns(turns int, next phase.Phase) int {
	if turns == UnlimitedTurns || next.Tag() != game.MainPhase {
		return turns
	}
	return turns - 1
}

// generatePhase builds the decision matrices for one phase step and
// recursively unrolls every possible reveal into the next step (a
// completed match, an Unexplored leaf once turns runs out, or the next
// phase step).
func generatePhase(p phase.Phase, state game.KnownState, turns int) Scope {
	if p.Tag() == game.MainPhase && turns == 0 {
		return UnexploredScope(state)
	}

	matrices := NewDecisionMatrices(p.IsSymmetrical(state), p.HiddenCounts(state), p.DecisionCounts(state))

	revealCount := p.RevealCount(state)
	next := make([]Scope, revealCount)
	for i := 0; i < revealCount; i++ {
		result := p.AdvanceState(state, indexing.RevealIndex(i))
		if result.Finished {
			next[i] = CompletedScope(result.Score)
			continue
		}
		next[i] = generatePhase(result.NextPhase, result.NextState, nextTurns(turns, result.NextPhase))
	}

	return Scope{Matrices: matrices, Next: next}
}
