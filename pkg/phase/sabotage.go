package phase

import (
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
)

// SabotagePhase is the second step of a round: each player may guess
// which creature the opponent committed, if they played the Sabotage
// edict.
type SabotagePhase struct {
	EdictChoices game.Pair[game.Edict]
}

// NewSabotagePhase builds the Sabotage phase that follows both
// players' revealed Main phase edicts.
func NewSabotagePhase(edictChoices game.Pair[game.Edict]) SabotagePhase {
	return SabotagePhase{EdictChoices: edictChoices}
}

func (p SabotagePhase) sabotageStatus(player game.Player) bool {
	return p.EdictChoices[player] == game.Sabotage
}

func (p SabotagePhase) sabotageStatuses() game.Pair[bool] {
	var statuses game.Pair[bool]
	for _, player := range game.Players {
		statuses[player] = p.sabotageStatus(player)
	}
	return statuses
}

func (SabotagePhase) Tag() game.PhaseTag { return game.SabotagePhase }

// IsSymmetrical holds when both players played the same edict: they
// then face identical decision and hidden-state distributions.
func (p SabotagePhase) IsSymmetrical(game.KnownState) bool {
	return game.AreEqual(p.EdictChoices)
}

func (p SabotagePhase) DecisionCounts(state game.KnownState) game.Pair[int] {
	var counts game.Pair[int]
	for _, player := range game.Players {
		if !p.sabotageStatus(player) {
			counts[player] = 1
			continue
		}
		handSize := game.PostMainHandSize(state, player)
		seerActive := game.SeerStatus(state, player)
		counts[player] = indexing.SabotagePhaseIndexCount(handSize, state.Graveyard(), seerActive)
	}
	return counts
}

func (p SabotagePhase) HiddenCounts(state game.KnownState) game.Pair[int] {
	return defaultHiddenCounts(p, state)
}

func (p SabotagePhase) RevealCount(state game.KnownState) int {
	seerPlayer := game.ForcedSeerPlayer(state)
	return indexing.SabotagePhaseCount(p.sabotageStatuses(), seerPlayer, state.Graveyard())
}

func (p SabotagePhase) AdvanceState(state game.KnownState, reveal indexing.RevealIndex) AdvanceResult {
	seerPlayer := game.ForcedSeerPlayer(state)
	sabotageChoices, revealed, ok := indexing.DecodeSabotagePhaseReveal(reveal, p.sabotageStatuses(), seerPlayer, state.Graveyard())
	if !ok {
		panic("phase: invalid sabotage phase reveal index")
	}
	return AdvanceResult{NextPhase: NewSeerPhase(p.EdictChoices, sabotageChoices, revealed), NextState: state}
}

func (SabotagePhase) ValidHiddenStates(state game.KnownStateSummary) []game.Pair[indexing.EncodingInfo] {
	var out []game.Pair[indexing.EncodingInfo]
	for _, pair := range NewMainPhase().ValidHiddenStates(state) {
		var perPlayer [2][]indexing.EncodingInfo
		for _, player := range game.Players {
			hand := pair[player].Hand
			size := game.CreatureChoiceSize(state, player)
			for _, choice := range hand.SubsetsOfSize(size) {
				perPlayer[player] = append(perPlayer[player], indexing.SabotageEncodingInfo(hand, choice))
			}
		}
		for _, a := range perPlayer[game.Me] {
			for _, b := range perPlayer[game.You] {
				out = append(out, game.Pair[indexing.EncodingInfo]{a, b})
			}
		}
	}
	return out
}

func (p SabotagePhase) AdvanceHiddenIndices(
	state game.KnownStateSummary,
	hidden game.Pair[indexing.HiddenState],
	decisions game.Pair[indexing.DecisionIndex],
) (game.Pair[indexing.EncodingInfo], indexing.RevealIndex, bool) {
	var guesses game.Pair[game.SabotagePhaseChoice]
	for _, player := range game.Players {
		if !p.sabotageStatus(player) {
			continue
		}
		guess, ok := indexing.DecodeSabotageIndex(decisions[player], hidden[player].Hand, hidden[player].Choice, state.Graveyard())
		if !ok {
			return game.Pair[indexing.EncodingInfo]{}, 0, false
		}
		g := guess
		guesses[player] = &g
	}

	seerPlayer := game.ForcedSeerPlayer(state)
	revealedElements := hidden[seerPlayer.Other()].Choice.Elements()
	if len(revealedElements) != 1 {
		return game.Pair[indexing.EncodingInfo]{}, 0, false
	}
	revealedCreature := revealedElements[0]

	var hiddenInfo game.Pair[indexing.EncodingInfo]
	for _, player := range game.Players {
		hiddenInfo[player] = indexing.SeerEncodingInfo(hidden[player].Hand, hidden[player].Choice, revealedCreature)
	}

	revealIndex := indexing.EncodeSabotagePhaseReveal(guesses, seerPlayer, revealedCreature, state.Graveyard())
	return hiddenInfo, revealIndex, true
}
