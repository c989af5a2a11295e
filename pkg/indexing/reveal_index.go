package indexing

import (
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/mix"
)

// RevealIndex addresses one cell of the information revealed to both
// players at the end of a phase (both edicts, both sabotage guesses plus
// the non-seer player's committed creature, or the creature kept after a
// seer pick).
type RevealIndex int

// EncodeMainPhaseReveal encodes the pair of edicts both players
// revealed at the end of the main phase.
func EncodeMainPhaseReveal(choices game.Pair[game.Edict], edicts game.Pair[game.EdictSet]) RevealIndex {
	p2Rank, ok := edicts[game.You].IndexOf(choices[game.You])
	if !ok {
		panic("indexing: revealed edict not held by player")
	}
	return RevealIndex(mix.MixIndexOf(p2Rank, int(choices[game.Me]), edicts[game.Me].Bits()))
}

// DecodeMainPhaseReveal is the inverse of EncodeMainPhaseReveal.
func DecodeMainPhaseReveal(r RevealIndex, edictSets game.Pair[game.EdictSet]) (game.Pair[game.Edict], bool) {
	p2Index, p1Bit, ok := mix.UnmixIndexOf(int(r), edictSets[game.Me].Bits())
	if !ok {
		return game.Pair[game.Edict]{}, false
	}
	p2Edict, ok := edictSets[game.You].Index(p2Index)
	if !ok {
		return game.Pair[game.Edict]{}, false
	}
	return game.Pair[game.Edict]{game.Edict(p1Bit), p2Edict}, true
}

// MainPhaseRevealCount is one more than the maximum value
// EncodeMainPhaseReveal can produce.
func MainPhaseRevealCount(playerEdicts game.Pair[game.EdictSet]) int {
	return playerEdicts[game.Me].Len() * playerEdicts[game.You].Len()
}

// sabotagePossibilities is the pool of creatures a sabotage guess, or a
// seer-phase reveal, can legally name: anything not in the graveyard.
func sabotagePossibilities(graveyard game.CreatureSet) game.CreatureSet {
	return graveyard.Not()
}

// EncodeSabotagePhaseReveal encodes what became public at the end of
// the sabotage phase: both players' sabotage guesses (if they made
// one), and the creature the non-seer player revealed by committing to
// only one creature.
func EncodeSabotagePhaseReveal(
	sabotageChoices game.Pair[game.SabotagePhaseChoice],
	seerPlayer game.Player,
	revealedCreature game.Creature,
	graveyard game.CreatureSet,
) RevealIndex {
	if graveyard.Has(revealedCreature) {
		panic("indexing: revealed creature cannot be in the graveyard")
	}

	possibilities := sabotagePossibilities(graveyard)
	revealedPossibilities := possibilities

	nonSeer := seerPlayer.Other()
	if sabotagedByNonSeer := sabotageChoices[nonSeer]; sabotagedByNonSeer != nil {
		revealedPossibilities = revealedPossibilities.Remove(*sabotagedByNonSeer)
	}

	result, ok := revealedPossibilities.IndexOf(revealedCreature)
	if !ok {
		panic("indexing: revealed creature not among its own possibilities")
	}

	for _, p := range game.Players {
		if sabotaged := sabotageChoices[p]; sabotaged != nil {
			if graveyard.Has(*sabotaged) {
				panic("indexing: cannot sabotage a dead creature")
			}
			result = mix.MixIndexOf(result, int(*sabotaged), possibilities.Bits())
		}
	}

	return RevealIndex(result)
}

// DecodeSabotagePhaseReveal is the inverse of EncodeSabotagePhaseReveal.
func DecodeSabotagePhaseReveal(
	r RevealIndex,
	sabotageStatuses game.Pair[bool],
	seerPlayer game.Player,
	graveyard game.CreatureSet,
) (game.Pair[game.SabotagePhaseChoice], game.Creature, bool) {
	possibilities := sabotagePossibilities(graveyard)
	encoded := int(r)
	var sabotageChoices game.Pair[game.SabotagePhaseChoice]

	for i := len(game.Players) - 1; i >= 0; i-- {
		p := game.Players[i]
		if !sabotageStatuses[p] {
			continue
		}
		remaining, sabotagedBit, ok := mix.UnmixIndexOf(encoded, possibilities.Bits())
		if !ok {
			return game.Pair[game.SabotagePhaseChoice]{}, 0, false
		}
		encoded = remaining
		sabotaged := game.Creature(sabotagedBit)
		sabotageChoices[p] = &sabotaged
	}

	revealedPossibilities := possibilities
	nonSeer := seerPlayer.Other()
	if sabotagedByNonSeer := sabotageChoices[nonSeer]; sabotagedByNonSeer != nil {
		revealedPossibilities = revealedPossibilities.Remove(*sabotagedByNonSeer)
	}

	revealedCreature, ok := revealedPossibilities.Index(encoded)
	if !ok {
		return game.Pair[game.SabotagePhaseChoice]{}, 0, false
	}

	return sabotageChoices, revealedCreature, true
}

// SabotagePhaseCount is one more than the maximum value
// EncodeSabotagePhaseReveal can produce.
func SabotagePhaseCount(sabotageStatuses game.Pair[bool], seerPlayer game.Player, graveyard game.CreatureSet) int {
	playCount := 0
	for _, status := range sabotageStatuses {
		if status {
			playCount++
		}
	}

	revealPossibilities := graveyard.Not().Len()
	if sabotageStatuses[seerPlayer.Other()] {
		revealPossibilities--
	}

	sabotagePossibilityCount := graveyard.Not().Len()

	var sabotageCount int
	switch playCount {
	case 0:
		sabotageCount = 1
	case 1:
		sabotageCount = sabotagePossibilityCount
	case 2:
		sabotageCount = sabotagePossibilityCount * sabotagePossibilityCount
	default:
		panic("indexing: more than two players")
	}

	return revealPossibilities * sabotageCount
}

// EncodeSeerPhaseReveal encodes the single creature kept after a Seer
// phase pick.
func EncodeSeerPhaseReveal(creature game.Creature, graveyard game.CreatureSet) RevealIndex {
	rank, ok := graveyard.Not().IndexOf(creature)
	if !ok {
		panic("indexing: kept creature not among the living")
	}
	return RevealIndex(rank)
}

// DecodeSeerPhaseReveal is the inverse of EncodeSeerPhaseReveal.
func DecodeSeerPhaseReveal(r RevealIndex, graveyard game.CreatureSet) (game.Creature, bool) {
	return graveyard.Not().Index(int(r))
}

// SeerPhaseCount is one more than the maximum value
// EncodeSeerPhaseReveal can produce.
func SeerPhaseCount(graveyard game.CreatureSet) int {
	return graveyard.Not().Len()
}
