package bitset

import "math/bits"

// WordBits is the width of a Word and therefore the span of one chunk.
// Other widths work identically if One, shifts, and masks are adjusted.
const WordBits = 128

// Word is a fixed 128-bit unsigned word, the unit of chunk storage.
// The zero value is the empty word.
//
// Bit i lives in Word[i>>6] at position i&63; the expressions are kept
// inline (not factored into helpers) so the methods stay cheap to inline.
type Word [2]uint64

// Any reports whether at least one bit is set.
func (w Word) Any() bool {
	return w[0] != 0 || w[1] != 0
}

// Test reports whether bit i (0 <= i < WordBits) is set.
func (w Word) Test(i uint) bool {
	return w[i>>6]&(1<<(i&63)) != 0
}

// Or returns the union of w and o.
func (w Word) Or(o Word) Word {
	return Word{w[0] | o[0], w[1] | o[1]}
}

// And returns the intersection of w and o.
func (w Word) And(o Word) Word {
	return Word{w[0] & o[0], w[1] & o[1]}
}

// AndNot returns the bits of w that are not in o.
func (w Word) AndNot(o Word) Word {
	return Word{w[0] &^ o[0], w[1] &^ o[1]}
}

// OnesCount is the number of set bits (popcount).
func (w Word) OnesCount() int {
	return bits.OnesCount64(w[0]) + bits.OnesCount64(w[1])
}

// wordOne returns a Word with only bit i (0 <= i < WordBits) set.
func wordOne(i uint) Word {
	var w Word
	w[i>>6] = 1 << (i & 63)

	return w
}
