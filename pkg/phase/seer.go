package phase

import (
	"github.com/behrlich/echo-solver/pkg/battle"
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
)

// SeerPhase is the final step of a round: whichever player holds the
// seer effect picks which of their two committed creatures to keep,
// having already seen the opponent's publicly revealed creature.
type SeerPhase struct {
	EdictChoices     game.Pair[game.Edict]
	SabotageChoices  game.Pair[game.SabotagePhaseChoice]
	RevealedCreature game.Creature
}

// NewSeerPhase builds the Seer phase that follows the sabotage reveal:
// revealed is the creature the non-seer player already committed to,
// made public at the end of the Sabotage phase.
func NewSeerPhase(edictChoices game.Pair[game.Edict], sabotageChoices game.Pair[game.SabotagePhaseChoice], revealed game.Creature) SeerPhase {
	return SeerPhase{EdictChoices: edictChoices, SabotageChoices: sabotageChoices, RevealedCreature: revealed}
}

// graveyard returns base with the already-revealed creature added,
// since it can no longer be a candidate for the seer player's kept
// creature.
func (p SeerPhase) graveyard(base game.CreatureSet) game.CreatureSet {
	return base.Add(p.RevealedCreature)
}

func (SeerPhase) Tag() game.PhaseTag { return game.SeerPhase }

// IsSymmetrical is always false: only one player (the forced seer
// player) ever faces a real decision here.
func (SeerPhase) IsSymmetrical(game.KnownState) bool { return false }

func (p SeerPhase) DecisionCounts(state game.KnownState) game.Pair[int] {
	seerPlayer := game.ForcedSeerPlayer(state)
	seerPlayerDecisions := 1
	if game.SeerIsActive(state) {
		seerPlayerDecisions = 2
	}
	return game.OrderAs(seerPlayer, game.Pair[int]{seerPlayerDecisions, 1})
}

func (p SeerPhase) HiddenCounts(state game.KnownState) game.Pair[int] {
	return defaultHiddenCounts(p, state)
}

func (p SeerPhase) RevealCount(state game.KnownState) int {
	return indexing.SeerPhaseCount(p.graveyard(state.Graveyard()))
}

func (p SeerPhase) AdvanceState(state game.KnownState, reveal indexing.RevealIndex) AdvanceResult {
	seerPlayer := game.ForcedSeerPlayer(state)
	kept, ok := indexing.DecodeSeerPhaseReveal(reveal, p.graveyard(state.Graveyard()))
	if !ok {
		panic("phase: invalid seer phase reveal index")
	}

	creatures := game.OrderAs(seerPlayer, game.Pair[game.Creature]{kept, p.RevealedCreature})
	var mainChoices game.Pair[game.FinalMainPhaseChoice]
	for _, player := range game.Players {
		mainChoices[player] = game.FinalMainPhaseChoice{Creature: creatures[player], Edict: p.EdictChoices[player]}
	}

	ctx := battle.Context{MainChoices: mainChoices, SabotageChoices: p.SabotageChoices, State: state}
	result := advanceTurn(ctx)
	if !result.Finished {
		result.NextState.SpentCreatures = result.NextState.SpentCreatures.Add(creatures[game.Me]).Add(creatures[game.You])
	}
	return result
}

func (p SeerPhase) ValidHiddenStates(state game.KnownStateSummary) []game.Pair[indexing.EncodingInfo] {
	seerPlayer := game.ForcedSeerPlayer(state)
	var out []game.Pair[indexing.EncodingInfo]

	for _, pair := range NewSabotagePhase(p.EdictChoices).ValidHiddenStates(state) {
		other := pair[seerPlayer.Other()]
		if other.Choice.Len() != 1 || !other.Choice.Has(p.RevealedCreature) {
			continue
		}

		seer := pair[seerPlayer]
		var result game.Pair[indexing.EncodingInfo]
		result[seerPlayer] = indexing.SeerEncodingInfo(seer.Hand, seer.Choice, p.RevealedCreature)
		result[seerPlayer.Other()] = indexing.SeerEncodingInfo(other.Hand, other.Choice, p.RevealedCreature)
		out = append(out, result)
	}
	return out
}

// AdvanceHiddenIndices resolves each player's final kept creature and
// folds it out of their hand, producing the Main phase hidden state the
// next round (if any) begins from. The reveal index mirrors
// AdvanceState's own decode: the creature the forced seer player kept.
//
// Ordering convention: where a player picks between two committed
// creatures, the two values of their Choice set are addressed by
// CreatureSet.Elements() order (ascending bit index) — the same order
// indexing.EncodeSeerIndex/DecodeSeerIndex agree on at every call site.
func (p SeerPhase) AdvanceHiddenIndices(
	state game.KnownStateSummary,
	hidden game.Pair[indexing.HiddenState],
	decisions game.Pair[indexing.DecisionIndex],
) (game.Pair[indexing.EncodingInfo], indexing.RevealIndex, bool) {
	seerPlayer := game.ForcedSeerPlayer(state)

	var kept game.Pair[game.Creature]
	for _, player := range game.Players {
		elems := hidden[player].Choice.Elements()
		if player == seerPlayer && len(elems) == 2 {
			creature, ok := indexing.DecodeSeerIndex(decisions[player], [2]game.Creature{elems[0], elems[1]})
			if !ok {
				return game.Pair[indexing.EncodingInfo]{}, 0, false
			}
			kept[player] = creature
			continue
		}
		if len(elems) != 1 {
			return game.Pair[indexing.EncodingInfo]{}, 0, false
		}
		kept[player] = elems[0]
	}

	var hiddenInfo game.Pair[indexing.EncodingInfo]
	for _, player := range game.Players {
		newHand := hidden[player].Hand.Remove(kept[player])
		hiddenInfo[player] = indexing.MainEncodingInfo(newHand)
	}

	revealIndex := indexing.EncodeSeerPhaseReveal(kept[seerPlayer], p.graveyard(state.Graveyard()))
	return hiddenInfo, revealIndex, true
}

