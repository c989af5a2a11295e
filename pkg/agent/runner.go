package agent

import (
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// Runner plays two Choosers against each other through a full match,
// one phase step at a time, without ever building the full Scope tree
// — grounded on the original's EchoRunner.run_game.
type Runner struct {
	state  game.KnownState
	phase  phase.Phase
	agents game.Pair[Chooser]
	hidden game.Pair[indexing.EncodingInfo]
}

// NewRunner starts a match at the Main phase with the given starting
// state and hidden hands.
func NewRunner(state game.KnownState, agents game.Pair[Chooser], hidden game.Pair[indexing.EncodingInfo]) *Runner {
	return &Runner{state: state, phase: phase.NewMainPhase(), agents: agents, hidden: hidden}
}

func (r *Runner) inputFor(player game.Player) Input {
	return Input{Phase: r.phase, State: r.state, Player: player, Hidden: game.Select(player, r.hidden)}
}

// Run drives the match to completion, calling Choose on both agents at
// every phase step until a battle result emerges. Returns the final
// score from Me's perspective, positive meaning Me won.
func (r *Runner) Run() game.Score {
	for {
		summary := r.state.ToSummary()

		var decisions game.Pair[indexing.DecisionIndex]
		var hiddenState game.Pair[indexing.HiddenState]
		for _, player := range game.Players {
			decisions[player] = r.agents[player].Choose(r.inputFor(player))
			hiddenState[player] = game.Select(player, r.hidden).ToHiddenState()
		}

		nextInfo, revealIndex, ok := r.phase.AdvanceHiddenIndices(summary, hiddenState, decisions)
		if !ok {
			panic("agent: both choosers produced an invalid decision pair")
		}

		advance := r.phase.AdvanceState(r.state, revealIndex)

		for _, player := range game.Players {
			score := advance.Score
			if !advance.Finished {
				score = advance.NextState.Score
			}
			r.agents[player].RevealInfo(revealIndex, score)
		}

		if advance.Finished {
			for _, player := range game.Players {
				r.agents[player].GameFinished()
			}
			return advance.Score
		}

		r.state = advance.NextState
		r.phase = advance.NextPhase
		r.hidden = nextInfo
	}
}
