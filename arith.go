package apint

import (
	"math/bits"
)

// All helpers in this file operate on little-endian magnitudes and never
// modify their inputs. Every result is a freshly allocated slice.

// cmpWords compares the magnitudes x and y. Both must be trimmed: a longer
// slice is taken to be the larger magnitude without looking at its words.
func cmpWords(x, y []uint64) int {
	if len(x) > len(y) {
		return 1
	} else if len(x) < len(y) {
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// addWords returns x + y. A carry out of the top word grows the result by one
// word rather than wrapping.
func addWords(x, y []uint64) []uint64 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint64, len(x), len(x)+1)

	var carry uint64
	for i := range y {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	for i := len(y); i < len(x); i++ {
		z[i], carry = bits.Add64(x[i], 0, carry)
	}
	if carry != 0 {
		z = append(z, 1)
	}
	return z
}

// subWords returns x - y, with the same length as x. The result is not
// trimmed.
//
// The caller must guarantee |x| >= |y|, which also implies len(x) >= len(y)
// for trimmed inputs. Add establishes this with cmpWords before calling.
func subWords(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))

	var borrow uint64
	for i := range y {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	for i := len(y); i < len(x); i++ {
		z[i], borrow = bits.Sub64(x[i], 0, borrow)
	}
	if borrow != 0 {
		panic("apint: subtrahend magnitude exceeds minuend")
	}
	return z
}

// trimWords drops most-significant zero words in place, keeping at least one.
func trimWords(z []uint64) []uint64 {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	return z[:n]
}

func isZeroWords(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// highestBitWords returns the index of the most significant set bit of x, or
// -1 if x is zero.
func highestBitWords(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*wordBits + (wordBits - 1 - bits.LeadingZeros64(x[i]))
		}
	}
	return -1
}

// lshWords returns x << n. hsb is highestBitWords(x) and must be >= 0; the
// result has exactly enough words to hold hsb+1+n bits.
func lshWords(x []uint64, hsb, n int) []uint64 {
	total := hsb + 1 + n
	count := total / wordBits
	if total%wordBits > 0 {
		count++
	}
	if count < 1 {
		count = 1
	}
	z := make([]uint64, count)

	ws, bs := n/wordBits, uint(n%wordBits)
	if bs == 0 {
		for i := ws; i < count; i++ {
			if src := i - ws; src < len(x) {
				z[i] = x[src]
			}
		}
		return z
	}

	var overflow uint64
	for i := 0; i+ws < count; i++ {
		var w uint64
		if i < len(x) {
			w = x[i]
		}
		z[i+ws] = (w << bs) | overflow
		overflow = w >> (wordBits - bs)
	}
	return z
}
