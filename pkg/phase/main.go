package phase

import (
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
)

// MainPhase is the first step of a round: each player privately commits
// to a creature (two, under the seer effect) and an edict.
type MainPhase struct{}

// NewMainPhase returns the Main phase singleton; it carries no state of
// its own.
func NewMainPhase() MainPhase { return MainPhase{} }

func (MainPhase) Tag() game.PhaseTag { return game.MainPhase }

// IsSymmetrical is always true for the Main phase: both players face
// the same decision and hidden-state distributions before anything is
// revealed.
func (MainPhase) IsSymmetrical(game.KnownState) bool { return true }

func (p MainPhase) DecisionCounts(state game.KnownState) game.Pair[int] {
	var counts game.Pair[int]
	for _, player := range game.Players {
		edicts := game.PlayerEdicts(state, player)
		hand := game.HandSize(state)
		seerActive := game.SeerStatus(state, player)
		counts[player] = indexing.MainPhaseIndexCount(edicts.Len(), hand, seerActive)
	}
	return counts
}

// HiddenCounts overrides the generic per-phase computation: during the
// Main phase both players draw from hands of the same size out of the
// same graveyard, so their hidden-state counts are always equal.
func (p MainPhase) HiddenCounts(state game.KnownState) game.Pair[int] {
	count := indexing.HiddenIndexCount(state, game.Me, p.Tag())
	return game.Pair[int]{count, count}
}

func (MainPhase) RevealCount(state game.KnownState) int {
	return indexing.MainPhaseRevealCount(state.EdictSets())
}

func (MainPhase) AdvanceState(state game.KnownState, reveal indexing.RevealIndex) AdvanceResult {
	edictChoices, ok := indexing.DecodeMainPhaseReveal(reveal, state.EdictSets())
	if !ok {
		panic("phase: invalid main phase reveal index")
	}
	return AdvanceResult{NextPhase: NewSabotagePhase(edictChoices), NextState: state}
}

func (MainPhase) ValidHiddenStates(state game.KnownStateSummary) []game.Pair[indexing.EncodingInfo] {
	possibilities := state.Graveyard().Not()
	handSize := game.HandSize(state)

	var out []game.Pair[indexing.EncodingInfo]
	for _, myHand := range possibilities.SubsetsOfSize(handSize) {
		remaining := possibilities.Minus(myHand)
		for _, theirHand := range remaining.SubsetsOfSize(handSize) {
			out = append(out, game.Pair[indexing.EncodingInfo]{
				indexing.MainEncodingInfo(myHand),
				indexing.MainEncodingInfo(theirHand),
			})
		}
	}
	return out
}

func (MainPhase) AdvanceHiddenIndices(
	state game.KnownStateSummary,
	hidden game.Pair[indexing.HiddenState],
	decisions game.Pair[indexing.DecisionIndex],
) (game.Pair[indexing.EncodingInfo], indexing.RevealIndex, bool) {
	var creatureChoices game.Pair[game.CreatureSet]
	var edicts game.Pair[game.Edict]

	for _, player := range game.Players {
		edictSet := game.PlayerEdicts(state, player)
		hand := hidden[player].Hand
		seerActive := game.SeerStatus(state, player)

		creatures, edict, ok := indexing.DecodeMainPhaseIndex(decisions[player], edictSet, hand, seerActive)
		if !ok {
			return game.Pair[indexing.EncodingInfo]{}, 0, false
		}
		creatureChoices[player] = creatures
		edicts[player] = edict
	}

	var hiddenInfo game.Pair[indexing.EncodingInfo]
	for _, player := range game.Players {
		hiddenInfo[player] = indexing.SabotageEncodingInfo(hidden[player].Hand, creatureChoices[player])
	}

	revealIndex := indexing.EncodeMainPhaseReveal(edicts, state.EdictSets())
	return hiddenInfo, revealIndex, true
}
