package indexing

import (
	"testing"

	"github.com/behrlich/echo-solver/pkg/game"
)

func TestMainPhaseIndexRoundTrip(t *testing.T) {
	hand := game.SingletonCreature(game.Wall).Add(game.Rogue).Add(game.Bard).Add(game.Witch).Add(game.Monarch)
	edicts := game.AllEdicts()

	for _, creatures := range hand.SubsetsOfSize(1) {
		for _, edict := range game.Edicts {
			d := EncodeMainPhaseIndex(creatures, edict, edicts, hand)
			decodedCreatures, decodedEdict, ok := DecodeMainPhaseIndex(d, edicts, hand, false)
			if !ok {
				t.Fatalf("DecodeMainPhaseIndex failed for creatures=%v edict=%v", creatures, edict)
			}
			if decodedCreatures != creatures || decodedEdict != edict {
				t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)", decodedCreatures, decodedEdict, creatures, edict)
			}
		}
	}
}

func TestMainPhaseIndexRoundTripSeerActive(t *testing.T) {
	hand := game.SingletonCreature(game.Wall).Add(game.Rogue).Add(game.Bard).Add(game.Witch).Add(game.Monarch)
	edicts := game.AllEdicts()

	for _, creatures := range hand.SubsetsOfSize(2) {
		edict := game.Sabotage
		d := EncodeMainPhaseIndex(creatures, edict, edicts, hand)
		decodedCreatures, decodedEdict, ok := DecodeMainPhaseIndex(d, edicts, hand, true)
		if !ok {
			t.Fatalf("DecodeMainPhaseIndex failed for creatures=%v", creatures)
		}
		if decodedCreatures != creatures || decodedEdict != edict {
			t.Errorf("round trip mismatch: got (%v, %v), want (%v, %v)", decodedCreatures, decodedEdict, creatures, edict)
		}
	}
}

func TestMainPhaseIndexCount(t *testing.T) {
	if got, want := MainPhaseIndexCount(5, 5, false), 25; got != want {
		t.Errorf("MainPhaseIndexCount(5, 5, false) = %d, want %d", got, want)
	}
	if got, want := MainPhaseIndexCount(5, 5, true), 50; got != want {
		t.Errorf("MainPhaseIndexCount(5, 5, true) = %d, want %d", got, want)
	}
}

func TestSabotageIndexRoundTrip(t *testing.T) {
	hand := game.SingletonCreature(game.Wall).Add(game.Rogue)
	choice := game.SingletonCreature(game.Bard)
	graveyard := game.SingletonCreature(game.Witch)

	possibilities := sabotageDecisionPossibilities(hand, choice, graveyard)
	for _, guess := range possibilities.Elements() {
		d := EncodeSabotageIndex(guess, hand, choice, graveyard)
		decoded, ok := DecodeSabotageIndex(d, hand, choice, graveyard)
		if !ok {
			t.Fatalf("DecodeSabotageIndex failed for guess %v", guess)
		}
		if decoded != guess {
			t.Errorf("round trip mismatch: started with %v, got %v", guess, decoded)
		}
	}
}

func TestSeerIndexRoundTrip(t *testing.T) {
	played := [2]game.Creature{game.Rogue, game.Bard}
	for _, choice := range played {
		d, ok := EncodeSeerIndex(played, choice)
		if !ok {
			t.Fatalf("EncodeSeerIndex failed for choice %v among %v", choice, played)
		}
		decoded, ok := DecodeSeerIndex(d, played)
		if !ok {
			t.Fatalf("DecodeSeerIndex failed for index %v", d)
		}
		if decoded != choice {
			t.Errorf("round trip mismatch: started with %v, got %v", choice, decoded)
		}
	}
}

func TestEncodeSeerIndexRejectsUncommittedChoice(t *testing.T) {
	played := [2]game.Creature{game.Rogue, game.Bard}
	if _, ok := EncodeSeerIndex(played, game.Witch); ok {
		t.Errorf("expected EncodeSeerIndex to reject a creature that wasn't played")
	}
}

func TestSeerPhaseIndexCount(t *testing.T) {
	if got, want := SeerPhaseIndexCount(), 2; got != want {
		t.Errorf("SeerPhaseIndexCount() = %d, want %d", got, want)
	}
}
