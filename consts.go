package apint

const (
	maxUint64 = 1<<64 - 1

	// wordBits is the width of a single magnitude word.
	wordBits = 64

	// hexPerWord is the number of hex digits packed into each word.
	hexPerWord = wordBits / 4

	intSize = 32 << (^uint(0) >> 63)

	// maxDecodeWords bounds the word count accepted from binary encodings so a
	// hostile length prefix can't force an enormous allocation.
	maxDecodeWords = 1 << 20
)

// zeroWords is the magnitude of the zero value Int{}. It must never be
// written to or handed out inside a returned Int.
var zeroWords = []uint64{0}

const hexDigits = "0123456789abcdef"

// hexValue returns the numeric value of the hex digit c, or -1.
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
