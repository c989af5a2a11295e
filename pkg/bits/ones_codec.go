package bits

import "github.com/behrlich/echo-solver/pkg/comb"

// decodedCount is the number of distinct 16-bit values this codec covers.
const decodedCount = 1 << 16

// bitCases is the number of distinct popcounts a 16-bit value can have.
const bitCases = 17

// magicIndices[k] is the offset into the decode table at which the
// entries for popcount k begin; it is the running sum of choose(16, j)
// for j < k.
var magicIndices [bitCases]int

// encodeTable[v] maps a raw 16-bit value to its rank among values with
// the same popcount (i.e. the value with the ones-count removed).
var encodeTable [decodedCount]uint16

// decodeTable concatenates one lookup table per popcount; decodeTable[
// magicIndices[k]+i] is the i-th 16-bit value (in increasing numeric
// order) with popcount k.
var decodeTable [decodedCount]uint16

// tableLengths[k] is the number of 16-bit values with popcount k, i.e.
// choose(16, k).
var tableLengths [bitCases]int

func init() {
	for k := 1; k < bitCases; k++ {
		magicIndices[k] = magicIndices[k-1] + comb.Choose(16, k-1)
	}

	for decoded := 0; decoded < decodedCount; decoded++ {
		count := Bitfield16(decoded).Len()
		encoded := tableLengths[count]
		decodeTable[magicIndices[count]+encoded] = uint16(decoded)
		encodeTable[decoded] = uint16(encoded)
		tableLengths[count]++
	}
}

// CountWithNOnes returns the number of 16-bit bitfields with exactly
// ones set bits, i.e. choose(16, ones).
func CountWithNOnes(ones int) int {
	return tableLengths[ones]
}

// EncodeOnes drops the information redundant with b.Len(), yielding a
// dense index in [0, CountWithNOnes(b.Len())).
func (b Bitfield16) EncodeOnes() int {
	return int(encodeTable[uint16(b)])
}

// DecodeOnes is the inverse of EncodeOnes: given the encoded index and
// the known popcount, it reconstructs the original bitfield. It returns
// (0, false) when encoded is out of range for that popcount.
func DecodeOnes(encoded int, ones int) (Bitfield16, bool) {
	if ones < 0 || ones >= bitCases || encoded < 0 || encoded >= tableLengths[ones] {
		return 0, false
	}
	return Bitfield16(decodeTable[magicIndices[ones]+encoded]), true
}

// EncodeOnesRelativeTo composes EncodeRelativeTo with EncodeOnes: it
// encodes b as a subset of other, then strips the popcount.
func (b Bitfield16) EncodeOnesRelativeTo(other Bitfield16) int {
	return b.EncodeRelativeTo(other).EncodeOnes()
}

// DecodeOnesRelativeTo is the inverse of EncodeOnesRelativeTo.
func DecodeOnesRelativeTo(encoded int, ones int, other Bitfield16) (Bitfield16, bool) {
	relative, ok := DecodeOnes(encoded, ones)
	if !ok {
		return 0, false
	}
	return DecodeRelativeTo(relative, other)
}
