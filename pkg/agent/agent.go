// Package agent provides the external driver interface promised by the
// solver core: something to play full matches against, rather than
// training on the full tree. Grounded on the original implementation's
// ai/echo_ai.rs EchoAgent trait and EchoRunner struct.
package agent

import (
	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/indexing"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// Input is everything a Chooser needs to make one decision: the phase
// it's choosing within, the fully known public state, which player it
// is acting as, and that player's own hidden information (hand, and
// any committed choice already made this phase).
type Input struct {
	Phase  phase.Phase
	State  game.KnownState
	Player game.Player
	Hidden indexing.EncodingInfo
}

// Chooser is the minimal interface an external driver (a fuzzer, a
// human UI, a fixed-strategy bot) implements to play Echo. RevealInfo
// and GameFinished are optional hooks with no-op defaults via
// NopChooser, mirroring the original trait's default method bodies.
type Chooser interface {
	Choose(Input) indexing.DecisionIndex
	RevealInfo(reveal indexing.RevealIndex, updatedScore game.Score)
	GameFinished()
}

// NopChooser supplies no-op RevealInfo/GameFinished bodies; embed it in
// a Chooser that only cares about Choose.
type NopChooser struct{}

func (NopChooser) RevealInfo(indexing.RevealIndex, game.Score) {}
func (NopChooser) GameFinished()                               {}

// AlwaysFirstChoice always plays the first option it's offered,
// equivalent to the original's AlwaysZeroAgent — useful as a
// deterministic baseline opponent.
type AlwaysFirstChoice struct {
	NopChooser
}

func (AlwaysFirstChoice) Choose(Input) indexing.DecisionIndex {
	return indexing.DecisionIndex(0)
}

// Rand is the minimal random source RandomChoice needs, satisfied by
// *math/rand.Rand.
type Rand interface {
	Intn(n int) int
}

// RandomChoice plays uniformly at random among the choices on offer at
// every decision, equivalent to the original's RandomAgent.
type RandomChoice struct {
	NopChooser
	Rng Rand
}

func (c RandomChoice) Choose(in Input) indexing.DecisionIndex {
	counts := in.Phase.DecisionCounts(in.State)
	count := game.Select(in.Player, counts)
	return indexing.DecisionIndex(c.Rng.Intn(count))
}
