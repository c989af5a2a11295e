package indexing

import (
	"github.com/behrlich/echo-solver/pkg/bits"
	"github.com/behrlich/echo-solver/pkg/comb"
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/mix"
)

// HiddenState is the hidden information a player holds at some point in
// a round: their hand, and (once they've committed to one) the
// creature(s) set aside this round.
type HiddenState struct {
	Hand   game.CreatureSet
	Choice game.CreatureSet
	HasChoice bool
}

// EncodingInfo carries everything needed to compute a HiddenIndex for a
// player at a given phase. Hand is always required; Choice is required
// from the Sabotage phase onward; Revealed is required only in the Seer
// phase, naming the creature the non-seer player committed to, which
// became public at the end of the Sabotage phase.
type EncodingInfo struct {
	Phase       game.PhaseTag
	Hand        game.CreatureSet
	Choice      game.CreatureSet
	HasChoice   bool
	Revealed    game.Creature
	HasRevealed bool
}

// MainEncodingInfo builds the EncodingInfo for the Main phase, where
// only the hand is known.
func MainEncodingInfo(hand game.CreatureSet) EncodingInfo {
	return EncodingInfo{Phase: game.MainPhase, Hand: hand}
}

// SabotageEncodingInfo builds the EncodingInfo for the Sabotage phase.
func SabotageEncodingInfo(hand, choice game.CreatureSet) EncodingInfo {
	return EncodingInfo{Phase: game.SabotagePhase, Hand: hand, Choice: choice, HasChoice: true}
}

// SeerEncodingInfo builds the EncodingInfo for the Seer phase.
func SeerEncodingInfo(hand, choice game.CreatureSet, revealed game.Creature) EncodingInfo {
	return EncodingInfo{
		Phase: game.SeerPhase, Hand: hand, Choice: choice, HasChoice: true,
		Revealed: revealed, HasRevealed: true,
	}
}

// ToHiddenState converts an EncodingInfo directly into the HiddenState
// it would decode to; useful for tests.
func (info EncodingInfo) ToHiddenState() HiddenState {
	return HiddenState{Hand: info.Hand, Choice: info.Choice, HasChoice: info.HasChoice}
}

// DecodingInfo carries the one piece of information (the non-seer
// player's creature, public in the Seer phase) needed to decode a
// HiddenIndex that doesn't embed it directly.
type DecodingInfo struct {
	Phase       game.PhaseTag
	Revealed    game.Creature
	HasRevealed bool
}

// HiddenIndex addresses one cell of a phase's set of possible hidden
// states for a single player.
type HiddenIndex int

// indexContainsChoice reports whether a hidden index for player at phase
// embeds that player's creature choice, as opposed to it being
// reconstructable from already-public information.
func indexContainsChoice(state game.KnownStateEssentials, player game.Player, phase game.PhaseTag) bool {
	switch phase {
	case game.MainPhase:
		return false
	case game.SabotagePhase:
		return true
	case game.SeerPhase:
		return player == game.LastCreatureRevealer(state)
	default:
		return false
	}
}

// EncodeHiddenIndex encodes everything a player privately knows at some
// phase into a single dense index.
func EncodeHiddenIndex(state game.KnownStateEssentials, player game.Player, info EncodingInfo) HiddenIndex {
	var revealedSet game.CreatureSet
	if info.HasRevealed {
		revealedSet = game.SingletonCreature(info.Revealed)
	}
	handPossibilities := state.Graveyard().Not().Minus(revealedSet)
	irlHand := info.Hand
	if info.HasChoice {
		irlHand = irlHand.Minus(info.Choice)
	}
	encodedHand := irlHand.Bits().EncodeOnesRelativeTo(handPossibilities.Bits())

	if !info.HasChoice {
		return HiddenIndex(encodedHand)
	}

	if info.HasRevealed && player != game.LastCreatureRevealer(state) {
		// This player only ever commits one creature, which is already
		// public via the reveal index; no need to embed it again.
		return HiddenIndex(encodedHand)
	}

	choicePossibilities := handPossibilities.Minus(irlHand)
	encodedChoice := info.Choice.Bits().EncodeOnesRelativeTo(choicePossibilities.Bits())
	return HiddenIndex(mix.Mix(encodedHand, encodedChoice, comb.Choose(choicePossibilities.Len(), info.Choice.Len())))
}

// DecodeHiddenIndex is the inverse of EncodeHiddenIndex.
func DecodeHiddenIndex(h HiddenIndex, state game.KnownStateEssentials, player game.Player, info DecodingInfo) (HiddenState, bool) {
	var revealedSet game.CreatureSet
	if info.HasRevealed {
		revealedSet = game.SingletonCreature(info.Revealed)
	}
	handPossibilities := state.Graveyard().Not().Minus(revealedSet)
	selfContainsChoice := indexContainsChoice(state, player, info.Phase)

	irlHandSize := game.HandSizeDuring(state, player, info.Phase)
	choiceSize := game.CreatureChoiceSize(state, player)

	encodedHand := int(h)
	var remaining int
	haveRemaining := false

	if selfContainsChoice {
		maxChoiceValue := comb.Choose(handPossibilities.Len()-irlHandSize, choiceSize)
		if maxChoiceValue == 0 {
			return HiddenState{}, false
		}
		encodedHand, remaining = mix.Unmix(int(h), maxChoiceValue)
		haveRemaining = true
	}

	irlHand, ok := bits.DecodeOnesRelativeTo(encodedHand, irlHandSize, handPossibilities.Bits())
	if !ok {
		return HiddenState{}, false
	}
	irlHandSet := game.CreatureSetFromBits(irlHand)

	if haveRemaining {
		choicePossibilities := handPossibilities.Minus(irlHandSet)
		decoded, ok := bits.DecodeOnesRelativeTo(remaining, choiceSize, choicePossibilities.Bits())
		if !ok {
			return HiddenState{}, false
		}
		choiceSet := game.CreatureSetFromBits(decoded)
		return HiddenState{Hand: irlHandSet.Union(choiceSet), Choice: choiceSet, HasChoice: true}, true
	}

	if info.HasRevealed {
		choiceSet := game.SingletonCreature(info.Revealed)
		return HiddenState{Hand: irlHandSet.Union(choiceSet), Choice: choiceSet, HasChoice: true}, true
	}

	return HiddenState{Hand: irlHandSet}, true
}

// HiddenIndexCount is one more than the maximum value EncodeHiddenIndex
// can produce for player at phase.
func HiddenIndexCount(state game.KnownStateEssentials, player game.Player, phase game.PhaseTag) int {
	handPossibilityCount := state.Graveyard().Not().Len()
	if phase == game.SeerPhase {
		handPossibilityCount--
	}

	handSize := game.HandSizeDuring(state, player, phase)
	handCount := comb.Choose(handPossibilityCount, handSize)

	choiceCount := 1
	if indexContainsChoice(state, player, phase) {
		choiceCount = comb.Choose(handPossibilityCount-handSize, game.CreatureChoiceSize(state, player))
	}

	return handCount * choiceCount
}
