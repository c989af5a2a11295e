// Package solver builds the full game tree for a round of Echo and runs
// counterfactual regret minimization over it, producing a strategy
// profile for both players.
package solver

import (
	"sync"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
)

// DecisionVector holds the regret-matching state for one hidden state's
// row of a decision matrix: the running regret for each possible
// choice, and the running strategy sum CFR averages over to converge to
// an equilibrium. mu guards concurrent updates when TrainParallel has
// more than one worker touching the same vector.
type DecisionVector struct {
	RegretSum               []float64
	StrategySum             []float64
	regretPositiveMagnitude float64
	mu                      sync.Mutex
}

// NewDecisionVector allocates a zeroed vector of the given width.
func NewDecisionVector(size int) *DecisionVector {
	return &DecisionVector{
		RegretSum:   make([]float64, size),
		StrategySum: make([]float64, size),
	}
}

// Len returns the number of choices this vector covers.
func (v *DecisionVector) Len() int { return len(v.RegretSum) }

// Strategy returns the current regret-matched probability of choice i.
// It reads the positive-regret magnitude cached by ApplyRegretUpdate, so
// a direct edit of RegretSum is not reflected until the next update.
func (v *DecisionVector) Strategy(i int) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.strategyLocked(i)
}

func (v *DecisionVector) strategyLocked(i int) float64 {
	if v.regretPositiveMagnitude > 0 {
		if v.RegretSum[i] > 0 {
			return v.RegretSum[i] / v.regretPositiveMagnitude
		}
		return 0
	}
	return 1.0 / float64(v.Len())
}

// CurrentStrategy returns the regret-matched probability of every choice
// in one locked pass, for callers (like CFR's traverse) that need the
// whole row rather than one entry at a time.
func (v *DecisionVector) CurrentStrategy() []float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.strategyLocked(i)
	}
	return out
}

// TryStrategy computes the strategy of a vector that might not exist
// (the Trivial case of a decision matrix): a nil vector always plays
// its single choice with probability 1.
func TryStrategy(v *DecisionVector, i int) float64 {
	if v == nil {
		return 1.0
	}
	return v.Strategy(i)
}

func (v *DecisionVector) recomputeRegretMagnitudeLocked() {
	sum := 0.0
	for _, r := range v.RegretSum {
		if r > 0 {
			sum += r
		}
	}
	v.regretPositiveMagnitude = sum
}

// ApplyRegretUpdate folds one CFR iteration's observation into this
// vector: perChoiceUtil[i] is the counterfactual value of always taking
// choice i (already marginalized over the opponent's strategy),
// nodeUtil is the value of the mixed strategy actually played, and
// reachOpp/reachOwn are the opponent's and this player's reach
// probabilities into this hidden state. The whole read-modify-write
// happens under one lock so concurrent workers in TrainParallel never
// interleave a regret update with a strategy read.
func (v *DecisionVector) ApplyRegretUpdate(perChoiceUtil []float64, nodeUtil, reachOpp, reachOwn float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, util := range perChoiceUtil {
		v.RegretSum[i] += reachOpp * (util - nodeUtil)
	}
	v.recomputeRegretMagnitudeLocked()
	for i := range v.StrategySum {
		v.StrategySum[i] += reachOwn * v.strategyLocked(i)
	}
}

// AverageStrategy returns the time-averaged strategy CFR converges to;
// unlike Strategy, this is the one to act on outside of training.
func (v *DecisionVector) AverageStrategy() []float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]float64, len(v.StrategySum))
	sum := 0.0
	for _, s := range v.StrategySum {
		sum += s
	}
	if sum <= 0 {
		uniform := 1.0 / float64(len(out))
		for i := range out {
			out[i] = uniform
		}
		return out
	}
	for i, s := range v.StrategySum {
		out[i] = s / sum
	}
	return out
}

// DecisionMatrix holds one player's regret-matching state across every
// hidden state possible at some phase. A matrix with only one possible
// choice carries no vectors at all: there's nothing to train, the
// single choice is always taken with probability 1.
type DecisionMatrix struct {
	vectors []DecisionVector
}

// NewDecisionMatrix allocates a matrix of matrixSize hidden states,
// each with vectorSize choices.
func NewDecisionMatrix(matrixSize, vectorSize int) DecisionMatrix {
	if vectorSize < 1 {
		panic("solver: a decision always has at least one choice")
	}
	if matrixSize < 1 {
		panic("solver: a player always has at least one hidden state to be in")
	}
	if vectorSize == 1 {
		return DecisionMatrix{}
	}
	vectors := make([]DecisionVector, matrixSize)
	for i := range vectors {
		vectors[i].RegretSum = make([]float64, vectorSize)
		vectors[i].StrategySum = make([]float64, vectorSize)
	}
	return DecisionMatrix{vectors: vectors}
}

// IsTrivial reports whether this matrix was built with a single choice.
func (m *DecisionMatrix) IsTrivial() bool { return m.vectors == nil }

// Node returns the vector for a hidden state, or nil for a trivial
// matrix (there is nothing to index into).
func (m *DecisionMatrix) Node(index indexing.HiddenIndex) *DecisionVector {
	if m.vectors == nil {
		return nil
	}
	return &m.vectors[int(index)]
}

// Len returns the number of choices every hidden state in this matrix
// faces.
func (m *DecisionMatrix) Len() int {
	if m.vectors == nil {
		return 1
	}
	return m.vectors[0].Len()
}

// DecisionMatrices is a pair of decision matrices, one per player. When
// a phase is symmetrical (both players face the same decision and
// hidden-state distribution) a single matrix is shared between them,
// pooling their regret and strategy statistics instead of training two
// independent copies.
type DecisionMatrices struct {
	symmetrical bool
	shared      DecisionMatrix
	pair        [2]DecisionMatrix
}

// NewDecisionMatrices builds the matrix pair for a phase step.
func NewDecisionMatrices(isSymmetrical bool, hiddenCounts, decisionCounts game.Pair[int]) DecisionMatrices {
	if isSymmetrical {
		if hiddenCounts[game.Me] != hiddenCounts[game.You] || decisionCounts[game.Me] != decisionCounts[game.You] {
			panic("solver: a symmetrical phase must have matching hidden/decision counts")
		}
		return DecisionMatrices{symmetrical: true, shared: NewDecisionMatrix(hiddenCounts[game.Me], decisionCounts[game.Me])}
	}
	var pair [2]DecisionMatrix
	for _, p := range game.Players {
		pair[p] = NewDecisionMatrix(hiddenCounts[p], decisionCounts[p])
	}
	return DecisionMatrices{pair: pair}
}

// Node returns one player's decision vector at a hidden index, or nil
// for a trivial matrix. Exposed for callers (the CLI's inspect
// subcommand) that want a single player's vector rather than the pair
// Nodes returns.
func (m *DecisionMatrices) Node(player game.Player, index indexing.HiddenIndex) *DecisionVector {
	if m.symmetrical {
		return m.shared.Node(index)
	}
	return m.pair[player].Node(index)
}

// DecisionCounts reports the number of choices each player currently
// faces.
func (m *DecisionMatrices) DecisionCounts() game.Pair[int] {
	if m.symmetrical {
		n := m.shared.Len()
		return game.Pair[int]{n, n}
	}
	return game.Pair[int]{m.pair[game.Me].Len(), m.pair[game.You].Len()}
}

// Nodes returns both players' decision vectors for a pair of hidden
// indices. For a symmetrical matrix the two pointers may alias the same
// underlying vector; regret and strategy updates from both players
// still apply independently, pooling into the shared cell by design.
func (m *DecisionMatrices) Nodes(indices game.Pair[indexing.HiddenIndex]) game.Pair[*DecisionVector] {
	if m.symmetrical {
		return game.Pair[*DecisionVector]{
			m.shared.Node(indices[game.Me]),
			m.shared.Node(indices[game.You]),
		}
	}
	return game.Pair[*DecisionVector]{
		m.pair[game.Me].Node(indices[game.Me]),
		m.pair[game.You].Node(indices[game.You]),
	}
}
