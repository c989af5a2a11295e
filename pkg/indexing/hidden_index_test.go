package indexing

import (
	"testing"

	"github.com/behrlich/echo-solver/pkg/game"
)

func TestHiddenIndexRoundTripMainPhase(t *testing.T) {
	state := game.NewKnownStateSummary(game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()})
	state.GraveyardSet = game.SingletonCreature(game.Wall)

	hand := game.SingletonCreature(game.Rogue).Add(game.Bard).Add(game.Witch).Add(game.Monarch).Add(game.Diplomat)

	info := MainEncodingInfo(hand)
	h := EncodeHiddenIndex(state, game.Me, info)
	decoded, ok := DecodeHiddenIndex(h, state, game.Me, DecodingInfo{Phase: game.MainPhase})
	if !ok {
		t.Fatalf("DecodeHiddenIndex failed for a Main phase hand")
	}
	if decoded != info.ToHiddenState() {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info.ToHiddenState())
	}
}

func TestHiddenIndexRoundTripSabotagePhase(t *testing.T) {
	state := game.NewKnownStateSummary(game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()})
	state.GraveyardSet = game.SingletonCreature(game.Wall)

	hand := game.SingletonCreature(game.Rogue).Add(game.Bard).Add(game.Witch).Add(game.Monarch).Add(game.Diplomat)
	choice := game.SingletonCreature(game.Bard)

	info := SabotageEncodingInfo(hand, choice)
	h := EncodeHiddenIndex(state, game.Me, info)
	decoded, ok := DecodeHiddenIndex(h, state, game.Me, DecodingInfo{Phase: game.SabotagePhase})
	if !ok {
		t.Fatalf("DecodeHiddenIndex failed for a Sabotage phase hand/choice")
	}
	if decoded != info.ToHiddenState() {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info.ToHiddenState())
	}
}

func TestHiddenIndexRoundTripSeerPhaseLastRevealer(t *testing.T) {
	seer := game.You
	state := game.KnownStateSummary{
		Edicts: game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()},
		Seer:   &seer,
	}

	hand := game.SingletonCreature(game.Monarch).Add(game.Witch).Add(game.Wall).Add(game.Rogue).Add(game.Bard)
	choice := game.SingletonCreature(game.Monarch).Add(game.Witch)
	// The revealed creature is the one Me (the non-seer) committed to,
	// so it is never in You's hand.
	revealed := game.Steward

	info := SeerEncodingInfo(hand, choice, revealed)
	h := EncodeHiddenIndex(state, game.You, info)
	decoded, ok := DecodeHiddenIndex(h, state, game.You, DecodingInfo{Phase: game.SeerPhase, Revealed: revealed, HasRevealed: true})
	if !ok {
		t.Fatalf("DecodeHiddenIndex failed for the Seer-phase last revealer")
	}
	if decoded != info.ToHiddenState() {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info.ToHiddenState())
	}
}

func TestHiddenIndexRoundTripSeerPhaseOtherPlayer(t *testing.T) {
	seer := game.You
	state := game.KnownStateSummary{
		Edicts: game.Pair[game.EdictSet]{game.AllEdicts(), game.AllEdicts()},
		Seer:   &seer,
	}

	revealedForMe := game.Steward
	hand := game.SingletonCreature(revealedForMe).Add(game.Ranger).Add(game.Diplomat).Add(game.Barbarian).Add(game.Mercenary)
	choice := game.SingletonCreature(revealedForMe)

	info := SeerEncodingInfo(hand, choice, revealedForMe)
	h := EncodeHiddenIndex(state, game.Me, info)
	decoded, ok := DecodeHiddenIndex(h, state, game.Me, DecodingInfo{Phase: game.SeerPhase, Revealed: revealedForMe, HasRevealed: true})
	if !ok {
		t.Fatalf("DecodeHiddenIndex failed for the Seer-phase non-last-revealer")
	}
	if decoded != info.ToHiddenState() {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info.ToHiddenState())
	}
}

func TestHiddenIndexCountMainPhase(t *testing.T) {
	state := game.NewKnownStateSummaryAllEdicts()
	got := HiddenIndexCount(state, game.Me, game.MainPhase)
	want := 462 // choose(11, 5): every possible starting hand
	if got != want {
		t.Errorf("HiddenIndexCount(Main) = %d, want %d", got, want)
	}
}
