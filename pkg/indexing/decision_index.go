package indexing

import (
	"github.com/behrlich/echo-solver/pkg/bits"
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/mix"
)

// DecisionIndex addresses one row of a decision matrix: the choice a
// player made during whichever phase is currently being indexed.
type DecisionIndex int

// EncodeMainPhaseIndex encodes a main phase choice (the creature(s)
// committed plus the edict played) into a decision index.
func EncodeMainPhaseIndex(creatures game.CreatureSet, edict game.Edict, edicts game.EdictSet, hand game.CreatureSet) DecisionIndex {
	choice := EncodeCreatureChoice(creatures, hand)
	return DecisionIndex(mix.MixIndexOf(int(choice), int(edict), edicts.Bits()))
}

// DecodeMainPhaseIndex is the inverse of EncodeMainPhaseIndex.
// seerActive selects whether one or two creatures are expected.
func DecodeMainPhaseIndex(d DecisionIndex, edicts game.EdictSet, hand game.CreatureSet, seerActive bool) (game.CreatureSet, game.Edict, bool) {
	choice, edictBit, ok := mix.UnmixIndexOf(int(d), edicts.Bits())
	if !ok {
		return game.EmptyCreatureSet, 0, false
	}
	length := creatureChoiceLength(seerActive)
	creatures, ok := DecodeCreatureChoice(CreatureChoice(choice), hand, length)
	if !ok {
		return game.EmptyCreatureSet, 0, false
	}
	return creatures, game.Edict(edictBit), true
}

// MainPhaseIndexCount is one more than the maximum value
// EncodeMainPhaseIndex can produce.
func MainPhaseIndexCount(edictCount, handSize int, seerActive bool) int {
	return ChoiceCount(handSize, creatureChoiceLength(seerActive)) * edictCount
}

func creatureChoiceLength(seerActive bool) int {
	if seerActive {
		return 2
	}
	return 1
}

// sabotageDecisionPossibilities computes which creatures are legal
// sabotage guesses: anything not in hand, not in the graveyard, and not
// among the creatures just committed this round.
func sabotageDecisionPossibilities(hand, choice, graveyard game.CreatureSet) game.CreatureSet {
	return hand.Union(graveyard).Union(choice).Not()
}

// EncodeSabotageIndex encodes a sabotage guess. It assumes the current
// player's own hidden information (hand, choice) is already known.
func EncodeSabotageIndex(guess game.Creature, hand, choice, graveyard game.CreatureSet) DecisionIndex {
	possibilities := sabotageDecisionPossibilities(hand, choice, graveyard)
	return DecisionIndex(game.SingletonCreature(guess).Bits().EncodeOnesRelativeTo(possibilities.Bits()))
}

// DecodeSabotageIndex is the inverse of EncodeSabotageIndex.
func DecodeSabotageIndex(d DecisionIndex, hand, choice, graveyard game.CreatureSet) (game.Creature, bool) {
	possibilities := sabotageDecisionPossibilities(hand, choice, graveyard)
	decoded, ok := bits.DecodeOnesRelativeTo(int(d), 1, possibilities.Bits())
	if !ok {
		return 0, false
	}
	elements := game.CreatureSetFromBits(decoded).Elements()
	if len(elements) == 0 {
		return 0, false
	}
	return elements[0], true
}

// SabotagePhaseIndexCountOldHand is one more than the maximum value
// EncodeSabotageIndex can produce, computed from the pre-main-phase
// hand size (i.e. before creatures were set aside for this round).
func SabotagePhaseIndexCountOldHand(oldHandSize int, graveyard game.CreatureSet) int {
	return game.NumCreatures() - oldHandSize - graveyard.Len()
}

// SabotagePhaseIndexCount is one more than the maximum value
// EncodeSabotageIndex can produce, computed from the post-main-phase
// hand size.
func SabotagePhaseIndexCount(handSize int, graveyard game.CreatureSet, seerActive bool) int {
	return SabotagePhaseIndexCountOldHand(handSize+creatureChoiceLength(seerActive), graveyard)
}

// EncodeSeerIndex encodes the choice of which of the two played
// creatures to keep. It returns (0, false) if choice is neither of
// playedCards.
func EncodeSeerIndex(playedCards [2]game.Creature, choice game.Creature) (DecisionIndex, bool) {
	switch choice {
	case playedCards[0]:
		return DecisionIndex(0), true
	case playedCards[1]:
		return DecisionIndex(1), true
	default:
		return 0, false
	}
}

// DecodeSeerIndex is the inverse of EncodeSeerIndex.
func DecodeSeerIndex(d DecisionIndex, playedCards [2]game.Creature) (game.Creature, bool) {
	switch d {
	case 0:
		return playedCards[0], true
	case 1:
		return playedCards[1], true
	default:
		return 0, false
	}
}

// SeerPhaseIndexCount is one more than the maximum value
// EncodeSeerIndex can produce: it is always 2.
func SeerPhaseIndexCount() int { return 2 }
