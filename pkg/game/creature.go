// Package game holds the Echo domain model: the fixed enumerations of
// creatures, edicts, battlefields and status effects, the bitset types
// built from them, and the KnownState a round is played against.
package game

import (
	"github.com/behrlich/echo-solver/pkg/bits"
	"github.com/behrlich/echo-solver/pkg/comb"
)

// Creature is one of the eleven playable creature cards.
type Creature int

const (
	Wall Creature = iota
	Seer
	Rogue
	Bard
	Diplomat
	Ranger
	Steward
	Barbarian
	Witch
	Mercenary
	Monarch
	numCreatures
)

// Creatures lists every creature in canonical (bit-index) order.
var Creatures = [numCreatures]Creature{
	Wall, Seer, Rogue, Bard, Diplomat, Ranger, Steward, Barbarian, Witch, Mercenary, Monarch,
}

var creatureNames = [numCreatures]string{
	"Wall", "Seer", "Rogue", "Bard", "Diplomat", "Ranger", "Steward", "Barbarian", "Witch", "Mercenary", "Monarch",
}

func (c Creature) String() string {
	if c < 0 || int(c) >= len(creatureNames) {
		return "Unknown"
	}
	return creatureNames[c]
}

var creatureStrength = [numCreatures]int{
	Wall: 0, Seer: 0, Rogue: 1, Bard: 2, Diplomat: 2, Ranger: 2,
	Steward: 2, Barbarian: 3, Witch: 3, Mercenary: 4, Monarch: 6,
}

// Strength returns the base strength printed on the creature's card.
func (c Creature) Strength() int {
	return creatureStrength[c]
}

// CreatureSet is a set of creatures, packed into a Bitfield16.
type CreatureSet bits.Bitfield16

// EmptyCreatureSet is the set with no creatures.
const EmptyCreatureSet CreatureSet = 0

// NumCreatures is the number of playable creature cards (11).
func NumCreatures() int { return int(numCreatures) }

// AllCreatures is the set containing every creature.
func AllCreatures() CreatureSet {
	return CreatureSet(bits.All(int(numCreatures)))
}

// SingletonCreature returns the set containing only c.
func SingletonCreature(c Creature) CreatureSet {
	return CreatureSet(bits.Singleton(int(c)))
}

// OptSingletonCreature returns SingletonCreature(*c) if c is non-nil,
// else the empty set. It mirrors the Rust source's opt_singleton, used
// when a creature may or may not have been revealed yet.
func OptSingletonCreature(c *Creature) CreatureSet {
	if c == nil {
		return EmptyCreatureSet
	}
	return SingletonCreature(*c)
}

func (s CreatureSet) bf() bits.Bitfield16 { return bits.Bitfield16(s) }

// Bits exposes the underlying Bitfield16, for packages (such as
// indexing) that need to mix it into a larger encoded index.
func (s CreatureSet) Bits() bits.Bitfield16 { return s.bf() }

// CreatureSetFromBits wraps a raw Bitfield16 as a CreatureSet.
func CreatureSetFromBits(b bits.Bitfield16) CreatureSet { return CreatureSet(b) }

// Has reports whether c is a member of s.
func (s CreatureSet) Has(c Creature) bool { return s.bf().Has(int(c)) }

// Add returns s with c inserted. It panics if c is already present.
func (s CreatureSet) Add(c Creature) CreatureSet {
	b := s.bf()
	b.Insert(int(c))
	return CreatureSet(b)
}

// Remove returns s with c removed. It panics if c is absent.
func (s CreatureSet) Remove(c Creature) CreatureSet {
	b := s.bf()
	b.Remove(int(c))
	return CreatureSet(b)
}

// Len returns the number of creatures in s.
func (s CreatureSet) Len() int { return s.bf().Len() }

// IndexOf returns the rank of c within s (ordered by bit index).
func (s CreatureSet) IndexOf(c Creature) (int, bool) { return s.bf().IndexOf(int(c)) }

// Index returns the k-th creature (by bit index) in s.
func (s CreatureSet) Index(k int) (Creature, bool) {
	i, ok := s.bf().Index(k)
	if !ok {
		return 0, false
	}
	return Creature(i), true
}

// Not complements s within the eleven creatures.
func (s CreatureSet) Not() CreatureSet {
	return CreatureSet(s.bf().Not(int(numCreatures)))
}

// Union returns the union of s and other.
func (s CreatureSet) Union(other CreatureSet) CreatureSet {
	return CreatureSet(s.bf() | other.bf())
}

// Intersect returns the intersection of s and other.
func (s CreatureSet) Intersect(other CreatureSet) CreatureSet {
	return CreatureSet(s.bf() & other.bf())
}

// Minus returns s with every element of other removed, regardless of
// whether it was present (unlike Remove, this never panics).
func (s CreatureSet) Minus(other CreatureSet) CreatureSet {
	return CreatureSet(s.bf() &^ other.bf())
}

// IsSubsetOf reports whether every creature in s is also in other.
func (s CreatureSet) IsSubsetOf(other CreatureSet) bool { return s.bf().IsSubsetOf(other.bf()) }

// EncodeRelativeTo encodes s as a subset of other; see bits.Bitfield16.EncodeRelativeTo.
func (s CreatureSet) EncodeRelativeTo(other CreatureSet) bits.Bitfield16 {
	return s.bf().EncodeRelativeTo(other.bf())
}

// DecodeCreatureSetRelativeTo is the inverse of EncodeRelativeTo.
func DecodeCreatureSetRelativeTo(encoded bits.Bitfield16, other CreatureSet) (CreatureSet, bool) {
	b, ok := bits.DecodeRelativeTo(encoded, other.bf())
	return CreatureSet(b), ok
}

// HandsOfSize returns the number of size-element subsets of s.
func (s CreatureSet) HandsOfSize(size int) int {
	return comb.Choose(s.Len(), size)
}

// SubsetsOfSize returns every size-element subset of s.
func (s CreatureSet) SubsetsOfSize(size int) []CreatureSet {
	raw := s.bf().SubsetsOfSize(size)
	out := make([]CreatureSet, len(raw))
	for i, b := range raw {
		out[i] = CreatureSet(b)
	}
	return out
}

// Elements returns the creatures in s in canonical order.
func (s CreatureSet) Elements() []Creature {
	raw := s.bf().Elements()
	out := make([]Creature, len(raw))
	for i, e := range raw {
		out[i] = Creature(e)
	}
	return out
}

// AllCreatureSets returns every possible CreatureSet (2^11 of them), used
// by exhaustive tests of the indexing layer.
func AllCreatureSets() []CreatureSet {
	raw := bits.Members(int(numCreatures))
	out := make([]CreatureSet, len(raw))
	for i, b := range raw {
		out[i] = CreatureSet(b)
	}
	return out
}
