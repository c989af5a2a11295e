package game

import "github.com/behrlich/echo-solver/pkg/bits"

// StatusEffect is a lingering bonus that carries into the next round.
type StatusEffect int

const (
	MountainEffect StatusEffect = iota
	GladeEffect
	NightEffect
	SeerEffect
	BardEffect
	MercenaryEffect
	BarbarianEffect
	numStatusEffects
)

var statusEffectNames = [numStatusEffects]string{
	"Mountain", "Glade", "Night", "Seer", "Bard", "Mercenary", "Barbarian",
}

func (e StatusEffect) String() string {
	if e < 0 || int(e) >= len(statusEffectNames) {
		return "Unknown"
	}
	return statusEffectNames[e]
}

// StatusEffectSet is the set of status effects active for one player.
type StatusEffectSet bits.Bitfield16

func (s StatusEffectSet) bf() bits.Bitfield16 { return bits.Bitfield16(s) }

// Has reports whether e is active.
func (s StatusEffectSet) Has(e StatusEffect) bool { return s.bf().Has(int(e)) }

// Add returns s with e activated. Unlike Bitfield16.Insert this is
// idempotent, since several code paths re-derive "is this effect set"
// without tracking whether they've already added it this round.
func (s StatusEffectSet) Add(e StatusEffect) StatusEffectSet {
	if s.Has(e) {
		return s
	}
	b := s.bf()
	b.Insert(int(e))
	return StatusEffectSet(b)
}

// Clear returns the empty effect set, discarding all lingering effects;
// called at the end of every round.
func (s StatusEffectSet) Clear() StatusEffectSet {
	return 0
}
