package apint

import (
	"math/big"
)

// IntFromBigInt creates an Int holding exactly the value of v.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var out []uint64
	switch intSize {
	case 64:
		out = make([]uint64, len(words))
		for i, w := range words {
			out[i] = uint64(w)
		}

	case 32:
		out = make([]uint64, (len(words)+1)/2)
		for i, w := range words {
			out[i/2] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("apint: unsupported bit size")
	}

	return newInt(v.Sign() < 0, trimWords(out))
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	bits := b.Bits()[:0]

	switch intSize {
	case 64:
		for _, w := range i.mag() {
			bits = append(bits, big.Word(w))
		}

	case 32:
		for _, w := range i.mag() {
			bits = append(bits, big.Word(w&0xFFFFFFFF), big.Word(w>>32))
		}

	default:
		panic("apint: unsupported bit size")
	}

	b.SetBits(bits)
	if i.IsNegative() {
		b.Neg(b)
	}
}

func (i Int) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}
