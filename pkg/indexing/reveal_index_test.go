package indexing

import (
	"testing"

	"github.com/behrlich/echo-solver/pkg/game"
)

func TestMainPhaseRevealRoundTrip(t *testing.T) {
	edictSets := game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()}
	for _, meEdict := range game.Edicts {
		for _, youEdict := range game.Edicts {
			choices := game.Pair[game.Edict]{meEdict, youEdict}
			r := EncodeMainPhaseReveal(choices, edictSets)
			decoded, ok := DecodeMainPhaseReveal(r, edictSets)
			if !ok {
				t.Fatalf("DecodeMainPhaseReveal failed for %v", choices)
			}
			if decoded != choices {
				t.Errorf("round trip mismatch: got %v, want %v", decoded, choices)
			}
		}
	}
}

func TestMainPhaseRevealCount(t *testing.T) {
	edictSets := game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()}
	if got, want := MainPhaseRevealCount(edictSets), 25; got != want {
		t.Errorf("MainPhaseRevealCount(all edicts) = %d, want %d", got, want)
	}
}

func TestSabotagePhaseRevealRoundTripNoSabotage(t *testing.T) {
	graveyard := game.EmptyCreatureSet
	seerPlayer := game.Me
	var choices game.Pair[game.SabotagePhaseChoice]

	for _, revealed := range sabotagePossibilities(graveyard).Elements() {
		r := EncodeSabotagePhaseReveal(choices, seerPlayer, revealed, graveyard)
		decodedChoices, decodedCreature, ok := DecodeSabotagePhaseReveal(r, game.Pair[bool]{false, false}, seerPlayer, graveyard)
		if !ok {
			t.Fatalf("DecodeSabotagePhaseReveal failed for revealed=%v", revealed)
		}
		if decodedChoices != choices || decodedCreature != revealed {
			t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)", decodedChoices, decodedCreature, choices, revealed)
		}
	}
}

func TestSabotagePhaseRevealRoundTripBothSabotage(t *testing.T) {
	graveyard := game.SingletonCreature(game.Wall)
	seerPlayer := game.Me

	meGuess := game.Rogue
	youGuess := game.Bard
	choices := game.Pair[game.SabotagePhaseChoice]{&meGuess, &youGuess}

	possibilities := sabotagePossibilities(graveyard)
	revealedPossibilities := possibilities.Remove(youGuess) // seerPlayer.Other() == You sabotaged
	for _, revealed := range revealedPossibilities.Elements() {
		r := EncodeSabotagePhaseReveal(choices, seerPlayer, revealed, graveyard)
		decodedChoices, decodedCreature, ok := DecodeSabotagePhaseReveal(r, game.Pair[bool]{true, true}, seerPlayer, graveyard)
		if !ok {
			t.Fatalf("DecodeSabotagePhaseReveal failed for revealed=%v", revealed)
		}
		if decodedCreature != revealed {
			t.Errorf("revealed creature mismatch: got %v, want %v", decodedCreature, revealed)
		}
		if *decodedChoices[game.Me] != meGuess || *decodedChoices[game.You] != youGuess {
			t.Errorf("sabotage guesses mismatch: got %+v", decodedChoices)
		}
	}
}

func TestSabotagePhaseCount(t *testing.T) {
	graveyard := game.EmptyCreatureSet
	seerPlayer := game.Me
	if got, want := SabotagePhaseCount(game.Pair[bool]{false, false}, seerPlayer, graveyard), 11; got != want {
		t.Errorf("SabotagePhaseCount(no sabotage) = %d, want %d", got, want)
	}
}

func TestSeerPhaseRevealRoundTrip(t *testing.T) {
	graveyard := game.SingletonCreature(game.Wall).Add(game.Rogue)
	for _, creature := range graveyard.Not().Elements() {
		r := EncodeSeerPhaseReveal(creature, graveyard)
		decoded, ok := DecodeSeerPhaseReveal(r, graveyard)
		if !ok {
			t.Fatalf("DecodeSeerPhaseReveal failed for %v", creature)
		}
		if decoded != creature {
			t.Errorf("round trip mismatch: got %v, want %v", decoded, creature)
		}
	}
}

func TestSeerPhaseCount(t *testing.T) {
	graveyard := game.SingletonCreature(game.Wall).Add(game.Rogue)
	if got, want := SeerPhaseCount(graveyard), 9; got != want {
		t.Errorf("SeerPhaseCount = %d, want %d", got, want)
	}
}

func TestEncodeSabotagePhaseRevealPanicsOnDeadReveal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when the revealed creature is in the graveyard")
		}
	}()
	graveyard := game.SingletonCreature(game.Wall)
	var choices game.Pair[game.SabotagePhaseChoice]
	EncodeSabotagePhaseReveal(choices, game.Me, game.Wall, graveyard)
}
