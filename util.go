package apint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of up to the given number
// of words from an external source. words less than 1 is treated as 1.
func RandInt(source RandSource, words int) Int {
	if words < 1 {
		words = 1
	}
	out := make([]uint64, words)
	for i := range out {
		out[i] = source.Uint64()
	}
	return newInt(false, trimWords(out))
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	return a.Sub(b)
}

func Larger(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b.clone()
	}
	return a.clone()
}

func Smaller(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b.clone()
	}
	return a.clone()
}
