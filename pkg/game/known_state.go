package game

// KnownPlayerState is the part of one player's state both players can
// see: the edicts still in hand, and active lingering status effects.
type KnownPlayerState struct {
	Edicts  EdictSet
	Effects StatusEffectSet
}

// KnownState is everything about the match both players can see: the
// public half of each player's state, the battlefield sequence and
// cursor, the graveyard of spent creatures, and the running score.
type KnownState struct {
	PlayerStates   Pair[KnownPlayerState]
	Battlefields   Battlefields
	SpentCreatures CreatureSet
	Score          Score
}

// NewKnownState builds the starting state of a match: both players hold
// all five edicts, no effects, an empty graveyard, zero score.
func NewKnownState(battlefields [4]Battlefield) KnownState {
	full := KnownPlayerState{Edicts: AllEdicts()}
	return KnownState{
		PlayerStates: Pair[KnownPlayerState]{full, full},
		Battlefields: Battlefields{Sequence: battlefields},
	}
}

// KnownStateEssentials is the minimal read-only surface the indexing
// and phase packages need from a known state. KnownState itself and the
// lighter KnownStateSummary (used heavily by tests) both implement it.
type KnownStateEssentials interface {
	Graveyard() CreatureSet
	EdictSets() Pair[EdictSet]
	SeerPlayer() (Player, bool)
}

// SeerStatuses reports, for each player, whether they hold the seer
// status effect.
func SeerStatuses(s KnownStateEssentials) Pair[bool] {
	seer, ok := s.SeerPlayer()
	return Pair[bool]{ok && seer == Me, ok && seer == You}
}

// SeerStatus reports whether player holds the seer status effect.
func SeerStatus(s KnownStateEssentials, player Player) bool {
	seer, ok := s.SeerPlayer()
	return ok && seer == player
}

// CreatureChoiceSize returns how many creatures player commits to this
// round: two under the seer effect, one otherwise.
func CreatureChoiceSize(s KnownStateEssentials, player Player) int {
	if SeerStatus(s, player) {
		return 2
	}
	return 1
}

// HandSize returns the number of creatures each player currently holds.
func HandSize(s KnownStateEssentials) int {
	return 5 - s.Graveyard().Len()/2
}

// PostMainHandSize returns the hand size once player's main-phase choice
// has been set aside but not yet resolved.
func PostMainHandSize(s KnownStateEssentials, player Player) int {
	return HandSize(s) - CreatureChoiceSize(s, player)
}

// HandSizeDuring returns the hand size visible during the given phase
// tag (Main sees the full hand; Sabotage/Seer see it post-choice).
func HandSizeDuring(s KnownStateEssentials, player Player, phase PhaseTag) int {
	if phase == MainPhase {
		return HandSize(s)
	}
	return PostMainHandSize(s, player)
}

// ForcedSeerPlayer names a last-revealer even when the seer effect is
// inactive, where the choice is arbitrary: Me is used by convention.
func ForcedSeerPlayer(s KnownStateEssentials) Player {
	if seer, ok := s.SeerPlayer(); ok {
		return seer
	}
	return Me
}

// LastCreatureRevealer is the player who commits their creature last in
// the Seer phase. It is the seer player when the effect is active, and
// an arbitrary (but consistent) choice of Me otherwise.
func LastCreatureRevealer(s KnownStateEssentials) Player {
	return ForcedSeerPlayer(s)
}

// SeerIsActive reports whether either player currently holds the seer
// effect.
func SeerIsActive(s KnownStateEssentials) bool {
	_, ok := s.SeerPlayer()
	return ok
}

// PlayerEdicts returns the edicts in player's hand.
func PlayerEdicts(s KnownStateEssentials, player Player) EdictSet {
	return Select(player, s.EdictSets())
}

// Graveyard implements KnownStateEssentials.
func (s KnownState) Graveyard() CreatureSet { return s.SpentCreatures }

// EdictSets implements KnownStateEssentials.
func (s KnownState) EdictSets() Pair[EdictSet] {
	return Pair[EdictSet]{s.PlayerStates[Me].Edicts, s.PlayerStates[You].Edicts}
}

// SeerPlayer reports which player currently holds the seer effect, if
// either does. Holding the effect on both sides is not reachable under
// normal play; if it ever occurs Me takes priority.
func (s KnownState) SeerPlayer() (Player, bool) {
	for _, p := range Players {
		if s.PlayerStates[p].Effects.Has(SeerEffect) {
			return p, true
		}
	}
	return Me, false
}

// ToSummary reduces a KnownState to the lightweight KnownStateSummary
// used by tests and by agents that only need public information.
func (s KnownState) ToSummary() KnownStateSummary {
	seer, ok := s.SeerPlayer()
	summary := KnownStateSummary{Edicts: s.EdictSets(), GraveyardSet: s.SpentCreatures}
	if ok {
		summary.Seer = &seer
	}
	return summary
}

// KnownStateSummary is the minimal public view of a KnownState: enough
// to drive indexing and testing without carrying the full state around.
type KnownStateSummary struct {
	Edicts       Pair[EdictSet]
	GraveyardSet CreatureSet
	Seer         *Player
}

// NewKnownStateSummary builds a summary with explicit edict sets, an
// empty graveyard, and no active seer.
func NewKnownStateSummary(edicts Pair[EdictSet]) KnownStateSummary {
	return KnownStateSummary{Edicts: edicts}
}

// NewKnownStateSummaryAllEdicts builds a summary as at the start of a
// match: both players hold every edict, nothing spent, no seer active.
func NewKnownStateSummaryAllEdicts() KnownStateSummary {
	return NewKnownStateSummary(Pair[EdictSet]{AllEdicts(), AllEdicts()})
}

// Graveyard implements KnownStateEssentials.
func (s KnownStateSummary) Graveyard() CreatureSet { return s.GraveyardSet }

// EdictSets implements KnownStateEssentials.
func (s KnownStateSummary) EdictSets() Pair[EdictSet] { return s.Edicts }

// SeerPlayer implements KnownStateEssentials.
func (s KnownStateSummary) SeerPlayer() (Player, bool) {
	if s.Seer == nil {
		return Me, false
	}
	return *s.Seer, true
}
