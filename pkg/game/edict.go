package game

import "github.com/behrlich/echo-solver/pkg/bits"

// Edict is one of the five edicts a player may commit to each round.
type Edict int

const (
	RileThePublic Edict = iota
	DivertAttention
	Sabotage
	Gambit
	Ambush
	numEdicts
)

// Edicts lists every edict in canonical (bit-index) order.
var Edicts = [numEdicts]Edict{RileThePublic, DivertAttention, Sabotage, Gambit, Ambush}

var edictNames = [numEdicts]string{"RileThePublic", "DivertAttention", "Sabotage", "Gambit", "Ambush"}

func (e Edict) String() string {
	if e < 0 || int(e) >= len(edictNames) {
		return "Unknown"
	}
	return edictNames[e]
}

// EdictSet is a set of edicts, packed into a Bitfield16.
type EdictSet bits.Bitfield16

// AllEdicts is the set containing all five edicts; players start each
// game holding it.
func AllEdicts() EdictSet {
	return EdictSet(bits.All(int(numEdicts)))
}

func (s EdictSet) bf() bits.Bitfield16 { return bits.Bitfield16(s) }

// Bits exposes the underlying Bitfield16, for packages (such as
// indexing) that need to mix it into a larger encoded index.
func (s EdictSet) Bits() bits.Bitfield16 { return s.bf() }

// Has reports whether e is a member of s.
func (s EdictSet) Has(e Edict) bool { return s.bf().Has(int(e)) }

// Add returns s with e inserted.
func (s EdictSet) Add(e Edict) EdictSet {
	b := s.bf()
	b.Insert(int(e))
	return EdictSet(b)
}

// Remove returns s with e removed. It panics if e is absent, matching
// the "discarding a card you don't hold" precondition violation.
func (s EdictSet) Remove(e Edict) EdictSet {
	b := s.bf()
	b.Remove(int(e))
	return EdictSet(b)
}

// Len returns the number of edicts remaining in s.
func (s EdictSet) Len() int { return s.bf().Len() }

// IndexOf returns the rank of e within s.
func (s EdictSet) IndexOf(e Edict) (int, bool) { return s.bf().IndexOf(int(e)) }

// Index returns the k-th edict (by bit index) in s.
func (s EdictSet) Index(k int) (Edict, bool) {
	i, ok := s.bf().Index(k)
	if !ok {
		return 0, false
	}
	return Edict(i), true
}

// Elements returns the edicts in s in canonical order.
func (s EdictSet) Elements() []Edict {
	raw := s.bf().Elements()
	out := make([]Edict, len(raw))
	for i, e := range raw {
		out[i] = Edict(e)
	}
	return out
}
