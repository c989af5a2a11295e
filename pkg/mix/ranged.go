// Package mix folds several bounded integers into one dense index, and
// unfolds them again. It is the glue the decision/hidden/reveal indexers
// use to combine independent sub-choices (a creature subset, an edict,
// a sabotage guess) into the single flat index a decision matrix is
// addressed by.
package mix

import "github.com/behrlich/echo-solver/pkg/bits"

// Mix folds a and b into one index, given that b is always < maxB.
// Unmix is its exact inverse.
func Mix(a, b, maxB int) int {
	return a*maxB + b
}

// Unmix is the inverse of Mix: given n and the same maxB, it recovers
// (a, b).
func Unmix(n, maxB int) (a, b int) {
	return n / maxB, n % maxB
}

// MixIndexOf mixes a with the rank of element e within the bitfield
// possibilities (i.e. possibilities.IndexOf(e)). It panics if e is not a
// member of possibilities.
func MixIndexOf(a int, e int, possibilities bits.Bitfield16) int {
	rank, ok := possibilities.IndexOf(e)
	if !ok {
		panic("mix: element not a member of possibilities")
	}
	return Mix(a, rank, possibilities.Len())
}

// UnmixIndexOf is the inverse of MixIndexOf: given n and the same
// possibilities set, it recovers (a, e).
func UnmixIndexOf(n int, possibilities bits.Bitfield16) (a int, e int, ok bool) {
	a, rank := Unmix(n, possibilities.Len())
	elem, ok := possibilities.Index(rank)
	if !ok {
		return 0, 0, false
	}
	return a, elem, true
}

// MixSubset mixes a with the rank (via the constant-size ones-codec) of
// subset within possibilities. subset must be a subset of possibilities.
func MixSubset(a int, subset bits.Bitfield16, possibilities bits.Bitfield16) int {
	maxB := bits.CountWithNOnes(subset.Len())
	return Mix(a, subset.EncodeOnesRelativeTo(possibilities), maxB)
}

// UnmixSubset is the inverse of MixSubset: given n, the subset size, and
// possibilities, it recovers (a, subset).
func UnmixSubset(n int, size int, possibilities bits.Bitfield16) (a int, subset bits.Bitfield16, ok bool) {
	maxB := bits.CountWithNOnes(size)
	a, encoded := Unmix(n, maxB)
	subset, ok = bits.DecodeOnesRelativeTo(encoded, size, possibilities)
	if !ok {
		return 0, 0, false
	}
	return a, subset, true
}
