package apint

import (
	"fortio.org/safecast"
	"github.com/cockroachdb/errors"
)

// Int is an arbitrary-precision signed integer stored as a sign and a
// little-endian sequence of 64-bit words.
//
// The zero value is ready to use and represents 0. Values are never modified
// in place; every operation allocates the words of its result, so an Int can
// be read from multiple goroutines at once.
type Int struct {
	neg   bool
	words []uint64
}

// newInt takes ownership of words, which must be trimmed. A zero magnitude
// is never tagged negative.
func newInt(neg bool, words []uint64) Int {
	if len(words) == 0 || isZeroWords(words) {
		return Int{words: []uint64{0}}
	}
	return Int{neg: neg, words: words}
}

func IntFromU64(v uint64) Int { return Int{words: []uint64{v}} }

func IntFrom64(v int64) Int {
	if v < 0 {
		// Two's complement negation wraps MinInt64 onto 1<<63, which is the
		// magnitude we want.
		return Int{neg: true, words: []uint64{uint64(-v)}}
	}
	return Int{words: []uint64{uint64(v)}}
}

// IntFromRaw creates an Int from little-endian magnitude words. words is
// copied; high zero words are discarded. See Int.Words() for the counterpart.
func IntFromRaw(neg bool, words ...uint64) Int {
	cp := make([]uint64, len(words))
	copy(cp, words)
	return newInt(neg, trimWords(cp))
}

// Release drops the words owned by i, leaving it equal to zero. Other copies
// of the same Int are unaffected.
func (i *Int) Release() {
	i.neg = false
	i.words = nil
}

func (i Int) mag() []uint64 {
	if len(i.words) == 0 {
		return zeroWords
	}
	return i.words
}

func (i Int) clone() Int {
	m := i.mag()
	cp := make([]uint64, len(m))
	copy(cp, m)
	return Int{neg: i.neg, words: cp}
}

func (i Int) IsZero() bool { return isZeroWords(i.words) }

// IsNegative reports whether i < 0. Zero is never negative.
func (i Int) IsNegative() bool { return i.neg && !i.IsZero() }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Len returns the number of words in the magnitude. It is always at least 1.
func (i Int) Len() int { return len(i.mag()) }

// Word returns word n of the magnitude, counting from the least significant.
// Words beyond Len() are 0.
func (i Int) Word(n uint) uint64 {
	if n >= uint(len(i.words)) {
		return 0
	}
	return i.words[n]
}

// Words returns a copy of the little-endian magnitude words. See IntFromRaw()
// for the counterpart.
func (i Int) Words() []uint64 {
	return i.clone().words
}

// HighestSetBit returns the index of the most significant set bit of the
// magnitude, where bit 0 is the least significant bit of word 0. It returns
// -1 if i is zero.
func (i Int) HighestSetBit() int { return highestBitWords(i.words) }

// BitLen returns the number of bits needed to represent the magnitude of i.
func (i Int) BitLen() int { return highestBitWords(i.words) + 1 }

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.IsNegative() && i.BitLen() <= wordBits
}

// AsUint64 truncates the magnitude of i to its lowest word, discarding the
// sign. See IsUint64() if you want to check before you convert.
func (i Int) AsUint64() uint64 { return i.Word(0) }

func (i Int) Neg() Int {
	out := i.clone()
	out.neg = !i.neg && !i.IsZero()
	return out
}

func (i Int) Abs() Int {
	out := i.clone()
	out.neg = false
	return out
}

func (i Int) Add(n Int) Int {
	x, y := i.mag(), n.mag()
	if i.neg == n.neg {
		return newInt(i.neg, addWords(x, y))
	}

	switch cmpWords(x, y) {
	case 1:
		return newInt(i.neg, trimWords(subWords(x, y)))
	case -1:
		return newInt(n.neg, trimWords(subWords(y, x)))
	default:
		return Int{words: []uint64{0}}
	}
}

// Sub returns i - n, computed as i + (-n).
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Inc() Int { return i.Add(IntFromU64(1)) }
func (i Int) Dec() Int { return i.Sub(IntFromU64(1)) }

// Cmp compares i and n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	in, nn := i.IsNegative(), n.IsNegative()
	switch {
	case in && nn:
		return cmpWords(n.mag(), i.mag())
	case in:
		return -1
	case nn:
		return 1
	default:
		return cmpWords(i.mag(), n.mag())
	}
}

// CmpAbs compares the magnitudes of i and n, ignoring sign.
func (i Int) CmpAbs(n Int) int {
	return cmpWords(i.mag(), n.mag())
}

func (i Int) Equal(n Int) bool {
	return i.IsNegative() == n.IsNegative() && cmpWords(i.mag(), n.mag()) == 0
}

func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// Lsh1 returns i shifted left by one bit.
func (i Int) Lsh1() Int { return i.Lsh(1) }

// Lsh returns i shifted left by n bits. The sign is preserved; shifting zero
// by any amount yields zero.
func (i Int) Lsh(n uint) Int {
	hsb := i.HighestSetBit()
	if hsb < 0 {
		return Int{words: []uint64{0}}
	}
	shift, err := safecast.Conv[int](n)
	if err != nil {
		panic(errors.Wrapf(err, "apint: shift by %d bits", n))
	}
	return Int{neg: i.neg, words: lshWords(i.mag(), hsb, shift)}
}
