// Package indexing implements the bijections between game choices and
// the dense integer indices the solver's decision matrices, hidden
// states and reveal tables are addressed by.
package indexing

import (
	"github.com/behrlich/echo-solver/pkg/bits"
	"github.com/behrlich/echo-solver/pkg/comb"
	"github.com/behrlich/echo-solver/pkg/game"
)

// CreatureChoice is a one- or two-creature commitment a player makes
// during the main phase, stripped of any information about the hand it
// was drawn from or whether one or two creatures were chosen — both of
// those are implied by context at decode time.
type CreatureChoice int

// EncodeCreatureChoice encodes a user-facing (one or two creature)
// choice relative to the hand it was drawn from.
func EncodeCreatureChoice(choice game.CreatureSet, hand game.CreatureSet) CreatureChoice {
	return CreatureChoice(choice.Bits().EncodeOnesRelativeTo(hand.Bits()))
}

// DecodeCreatureChoice is the inverse of EncodeCreatureChoice. length
// must be 1 or 2 (2 exactly when the seer effect is active for the
// choosing player). It returns (set, false) if encoded is out of range.
func DecodeCreatureChoice(c CreatureChoice, hand game.CreatureSet, length int) (game.CreatureSet, bool) {
	decoded, ok := bits.DecodeOnesRelativeTo(int(c), length, hand.Bits())
	if !ok {
		return game.EmptyCreatureSet, false
	}
	return game.CreatureSetFromBits(decoded), true
}

// ChoiceCount is one more than the maximum value EncodeCreatureChoice
// can produce for a hand of the given size and commitment length.
func ChoiceCount(handSize, length int) int {
	return comb.Choose(handSize, length)
}
