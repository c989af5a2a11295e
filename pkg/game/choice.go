package game

// MainPhaseChoice is what a player commits to during the main phase:
// an edict, plus one creature (two under the seer effect).
type MainPhaseChoice struct {
	Edict     Edict
	Creature  Creature
	Second    Creature
	HasSecond bool
}

// NewMainPhaseChoice builds a single-creature choice.
func NewMainPhaseChoice(edict Edict, creature Creature) MainPhaseChoice {
	return MainPhaseChoice{Edict: edict, Creature: creature}
}

// NewSeerMainPhaseChoice builds a two-creature choice, made under the
// seer effect.
func NewSeerMainPhaseChoice(edict Edict, first, second Creature) MainPhaseChoice {
	return MainPhaseChoice{Edict: edict, Creature: first, Second: second, HasSecond: true}
}

// Creatures returns the committed creature(s) as a set.
func (c MainPhaseChoice) Creatures() CreatureSet {
	s := SingletonCreature(c.Creature)
	if c.HasSecond {
		s = s.Add(c.Second)
	}
	return s
}

// ToFinal resolves a (possibly two-creature) main phase choice down to
// the single creature actually played, once the Seer phase (if any) has
// picked one.
func (c MainPhaseChoice) ToFinal(kept Creature) FinalMainPhaseChoice {
	return FinalMainPhaseChoice{Creature: kept, Edict: c.Edict}
}

// FinalMainPhaseChoice is the single creature and edict a player ends up
// committing to a battle, after any Seer-phase pick has been resolved.
type FinalMainPhaseChoice struct {
	Creature Creature
	Edict    Edict
}

// SabotagePhaseChoice is a player's optional guess of the opponent's
// creature during the Sabotage phase: nil if they didn't hold the
// Sabotage edict this round.
type SabotagePhaseChoice = *Creature

// SeerPhaseChoice is a player's optional pick of which of two committed
// creatures to keep: nil unless the seer effect was active for them.
type SeerPhaseChoice = *Creature
