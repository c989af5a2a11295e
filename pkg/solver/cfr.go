package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// CFR runs vanilla counterfactual regret minimization over a generated
// Scope tree. Unlike a turn-based game, both players choose at once at
// every phase step, so each node's traversal enumerates the full cross
// product of both players' choices — a small simultaneous-move matrix
// game at every hidden state, rather than a single actor per node.
type CFR struct {
	root  Scope
	state game.KnownState
}

// NewCFR wraps an already-generated Scope tree for training.
func NewCFR(root Scope, state game.KnownState) *CFR {
	return &CFR{root: root, state: state}
}

// Root returns the tree being trained, for callers that want to
// inspect or persist it without running further iterations.
func (c *CFR) Root() *Scope { return &c.root }

// Train runs CFR for the given number of iterations and returns the
// trained tree. Every iteration starts from the same deal: the first
// valid pair of root Main-phase hands that rootHiddenStates picks.
func (c *CFR) Train(iterations int) *Scope {
	summary := c.state.ToSummary()
	hidden, hiddenIndices := rootHiddenStates(summary, c.state)

	checkpoint := iterations / 10
	if checkpoint == 0 {
		checkpoint = 1
	}

	for i := 0; i < iterations; i++ {
		c.Iterate(summary, hidden, hiddenIndices)
		if (i+1)%checkpoint == 0 || i+1 == iterations {
			log.Debug().Int("iteration", i+1).Int("of", iterations).Msg("CFR training progress")
		}
	}
	return &c.root
}

// Iterate runs a single CFR pass over the tree, for progress reporting
// between iterations (training loops, UIs).
func (c *CFR) Iterate(summary game.KnownStateSummary, hidden game.Pair[indexing.HiddenState], hiddenIndices game.Pair[indexing.HiddenIndex]) {
	c.traverse(&c.root, c.state, summary, phase.NewMainPhase(), hidden, hiddenIndices, game.Pair[float64]{1, 1})
}

// rootHiddenStates enumerates the possible Main-phase hands both
// players could hold and picks the first valid pair; callers that care
// about a specific deal should build their own hidden-state pair and
// call Iterate with it rather than going through Train.
func rootHiddenStates(summary game.KnownStateSummary, state game.KnownState) (game.Pair[indexing.HiddenState], game.Pair[indexing.HiddenIndex]) {
	valid := phase.NewMainPhase().ValidHiddenStates(summary)
	if len(valid) == 0 {
		panic("solver: no valid hidden states for the root Main phase")
	}
	info := valid[0]

	var hidden game.Pair[indexing.HiddenState]
	var indices game.Pair[indexing.HiddenIndex]
	for _, player := range game.Players {
		hidden[player] = info[player].ToHiddenState()
		indices[player] = indexing.EncodeHiddenIndex(summary, player, info[player])
	}
	return hidden, indices
}

// traverse recursively walks one node of the Scope tree, updating
// regrets and strategy sums for both players, and returns the node's
// expected utility from Me's perspective (You's is its negation, since
// the match is zero-sum).
func (c *CFR) traverse(
	scope *Scope,
	state game.KnownState,
	summary game.KnownStateSummary,
	p phase.Phase,
	hidden game.Pair[indexing.HiddenState],
	hiddenIndices game.Pair[indexing.HiddenIndex],
	reach game.Pair[float64],
) float64 {
	if scope.Completed {
		return float64(scope.Score)
	}
	if scope.Unexplored {
		panic("solver: CFR cannot train through an unexplored leaf; generate with a larger turn horizon")
	}

	decisionCounts := p.DecisionCounts(state)
	nodes := scope.Matrices.Nodes(hiddenIndices)
	strategies := currentStrategies(nodes, decisionCounts)

	actionUtil := make([][]float64, decisionCounts[game.Me])
	for i := range actionUtil {
		actionUtil[i] = make([]float64, decisionCounts[game.You])
	}
	nodeUtil := 0.0

	for dMe := 0; dMe < decisionCounts[game.Me]; dMe++ {
		for dYou := 0; dYou < decisionCounts[game.You]; dYou++ {
			decisions := game.Pair[indexing.DecisionIndex]{indexing.DecisionIndex(dMe), indexing.DecisionIndex(dYou)}
			nextInfo, revealIndex, ok := p.AdvanceHiddenIndices(summary, hidden, decisions)
			if !ok {
				continue
			}

			child := &scope.Next[int(revealIndex)]
			advance := p.AdvanceState(state, revealIndex)

			jointProb := strategies[game.Me][dMe] * strategies[game.You][dYou]
			nextReach := game.Pair[float64]{reach[game.Me] * strategies[game.Me][dMe], reach[game.You] * strategies[game.You][dYou]}

			var util float64
			if advance.Finished {
				util = float64(advance.Score)
			} else {
				nextSummary := advance.NextState.ToSummary()
				var nextHidden game.Pair[indexing.HiddenState]
				var nextIndices game.Pair[indexing.HiddenIndex]
				for _, player := range game.Players {
					nextHidden[player] = nextInfo[player].ToHiddenState()
					nextIndices[player] = indexing.EncodeHiddenIndex(nextSummary, player, nextInfo[player])
				}
				util = c.traverse(child, advance.NextState, nextSummary, advance.NextPhase, nextHidden, nextIndices, nextReach)
			}

			actionUtil[dMe][dYou] = util
			nodeUtil += jointProb * util
		}
	}

	// Me's counterfactual value for always playing i is the utility of
	// row i, marginalized over You's actual strategy; regret is that
	// minus the utility of the mixed strategy actually played. You's
	// utility is the negation of Me's (zero-sum), so the same
	// marginalization over Me's strategy, negated, gives You's regret.
	if node := nodes[game.Me]; node != nil {
		perChoiceUtil := make([]float64, decisionCounts[game.Me])
		for i := 0; i < decisionCounts[game.Me]; i++ {
			expected := 0.0
			for j := 0; j < decisionCounts[game.You]; j++ {
				expected += strategies[game.You][j] * actionUtil[i][j]
			}
			perChoiceUtil[i] = expected
		}
		node.ApplyRegretUpdate(perChoiceUtil, nodeUtil, reach[game.You], reach[game.Me])
	}

	if node := nodes[game.You]; node != nil {
		perChoiceUtil := make([]float64, decisionCounts[game.You])
		for j := 0; j < decisionCounts[game.You]; j++ {
			expected := 0.0
			for i := 0; i < decisionCounts[game.Me]; i++ {
				expected += strategies[game.Me][i] * actionUtil[i][j]
			}
			perChoiceUtil[j] = -expected
		}
		node.ApplyRegretUpdate(perChoiceUtil, -nodeUtil, reach[game.Me], reach[game.You])
	}

	return nodeUtil
}

// currentStrategies reads the regret-matched strategy for both
// players, treating a nil (trivial) vector as always playing its sole
// choice.
func currentStrategies(nodes game.Pair[*DecisionVector], decisionCounts game.Pair[int]) game.Pair[[]float64] {
	var strategies game.Pair[[]float64]
	for _, player := range game.Players {
		n := decisionCounts[player]
		strat := make([]float64, n)
		if nodes[player] == nil {
			strat[0] = 1
		} else {
			strat = nodes[player].CurrentStrategy()
		}
		strategies[player] = strat
	}
	return strategies
}
