package solver

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// sizeOfDecisionVector, sizeOfDecisionMatrix and sizeOfDecisionMatrices
// mirror the struct layout
// decision.go actually allocates, for PhaseStats' byte estimates. They
// don't need to be exact down to alignment padding, just in the right
// ballpark for an operator deciding whether a tree fits in memory.
const (
	sizeOfDecisionVector   = 2*24 + 8 + 8 // two float64 slice headers, a float64, a mutex
	sizeOfDecisionMatrix   = 24           // one slice header
	sizeOfDecisionMatrices = 1 + sizeOfDecisionMatrix*3
)

// PhaseStats totals, without allocating a single DecisionVector, the
// size a Generator would build for a KnownState: how many decision
// matrices exist at each phase, and the memory a full Train run would
// need for regret and strategy sums. Grounded on
// DecisionVector::estimate_alloc / DecisionMatrix::estimate_alloc /
// DecisionMatrices::estimate_alloc in the original implementation.
type PhaseStats struct {
	Nodes       int
	Bytes       uint64
	WeightCells uint64
}

// EstimateTree walks every reachable phase step from state out to
// turns rounds (UnlimitedTurns for the whole match) without building
// any DecisionMatrices, accumulating PhaseStats. This is the
// "estimate" CLI mode: large hands blow up combinatorially, and an
// operator should see the projected footprint before committing to a
// Train run that might not fit in memory.
func EstimateTree(state game.KnownState, turns int) PhaseStats {
	return estimatePhase(phase.NewMainPhase(), state, turns)
}

func estimatePhase(p phase.Phase, state game.KnownState, turns int) PhaseStats {
	if p.Tag() == game.MainPhase && turns == 0 {
		return PhaseStats{Nodes: 1}
	}

	hiddenCounts := p.HiddenCounts(state)
	decisionCounts := p.DecisionCounts(state)
	symmetrical := p.IsSymmetrical(state)

	stats := PhaseStats{
		Nodes:       1,
		Bytes:       estimateMatricesAlloc(symmetrical, hiddenCounts, decisionCounts),
		WeightCells: estimateMatricesWeightStorage(symmetrical, hiddenCounts, decisionCounts),
	}

	revealCount := p.RevealCount(state)
	for i := 0; i < revealCount; i++ {
		result := p.AdvanceState(state, indexing.RevealIndex(i))
		if result.Finished {
			continue
		}
		child := estimatePhase(result.NextPhase, result.NextState, nextTurns(turns, result.NextPhase))
		stats.Nodes += child.Nodes
		stats.Bytes += child.Bytes
		stats.WeightCells += child.WeightCells
	}
	return stats
}

func estimateMatrixAlloc(matrixSize, vectorSize int) uint64 {
	if vectorSize == 1 {
		return sizeOfDecisionMatrix
	}
	return sizeOfDecisionMatrix + uint64(matrixSize)*sizeOfDecisionVector
}

func estimateMatrixWeightStorage(matrixSize, vectorSize int) uint64 {
	if vectorSize == 1 {
		return 1
	}
	return uint64(matrixSize) * uint64(vectorSize) * 2
}

func estimateMatricesAlloc(symmetrical bool, hiddenCounts, decisionCounts game.Pair[int]) uint64 {
	if symmetrical {
		return sizeOfDecisionMatrices + estimateMatrixAlloc(hiddenCounts[game.Me], decisionCounts[game.Me])
	}
	total := uint64(sizeOfDecisionMatrices)
	for _, player := range game.Players {
		total += estimateMatrixAlloc(hiddenCounts[player], decisionCounts[player])
	}
	return total
}

func estimateMatricesWeightStorage(symmetrical bool, hiddenCounts, decisionCounts game.Pair[int]) uint64 {
	if symmetrical {
		return estimateMatrixWeightStorage(hiddenCounts[game.Me], decisionCounts[game.Me])
	}
	var total uint64
	for _, player := range game.Players {
		total += estimateMatrixWeightStorage(hiddenCounts[player], decisionCounts[player])
	}
	return total
}

// String renders the estimate the way an operator reads it on the CLI:
// a node count and a humanized byte size, not raw integers.
func (s PhaseStats) String() string {
	return fmt.Sprintf("%s phase nodes, %s of regret/strategy tables (%s weight cells)",
		humanize.Comma(int64(s.Nodes)), humanize.Bytes(s.Bytes), humanize.Comma(int64(s.WeightCells)))
}
