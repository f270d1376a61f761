package apint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IntFromHex parses s, which must match [-]h+ where h is a case-insensitive
// hex digit. Leading zeros are ignored; any string of zeros, with or without
// a sign, yields zero.
//
// On failure the returned error is a *ParseError wrapping ErrInvalidHex or
// ErrEmptyHex, and the returned Int is zero.
func IntFromHex(s string) (out Int, err error) {
	var neg bool
	start := 0
	if strings.HasPrefix(s, "-") {
		neg = true
		start = 1
	}
	if start == len(s) {
		return out, &ParseError{Input: s, Offset: start, Err: ErrEmptyHex}
	}

	// Validate everything before allocating so nothing is held on failure.
	for idx := start; idx < len(s); idx++ {
		if hexValue(s[idx]) < 0 {
			return out, &ParseError{Input: s, Offset: idx, Char: s[idx], Err: ErrInvalidHex}
		}
	}

	for start < len(s) && s[start] == '0' {
		start++
	}
	digits := s[start:]
	if len(digits) == 0 {
		return Int{words: []uint64{0}}, nil
	}

	// digits[0] is non-zero, so the top word is too.
	words := make([]uint64, (len(digits)+hexPerWord-1)/hexPerWord)
	for k := 0; k < len(digits); k++ {
		v := uint64(hexValue(digits[len(digits)-1-k]))
		words[k/hexPerWord] |= v << (4 * uint(k%hexPerWord))
	}
	return Int{neg: neg, words: words}, nil
}

// MustIntFromHex is like IntFromHex but panics if s can't be parsed. It is
// intended for constants and tests.
func MustIntFromHex(s string) Int {
	out, err := IntFromHex(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Hex returns the canonical hex form of i: lowercase, no leading zeros, and
// a leading '-' only if i is negative.
func (i Int) Hex() string {
	return string(i.appendHex(nil))
}

func (i Int) appendHex(buf []byte) []byte {
	w := trimWords(i.mag())
	if isZeroWords(w) {
		return append(buf, '0')
	}
	if i.neg {
		buf = append(buf, '-')
	}

	// The top word is unpadded; every word below it keeps all 16 digits.
	buf = strconv.AppendUint(buf, w[len(w)-1], 16)
	for j := len(w) - 2; j >= 0; j-- {
		for shift := wordBits - 4; shift >= 0; shift -= 4 {
			buf = append(buf, hexDigits[(w[j]>>uint(shift))&0xf])
		}
	}
	return buf
}

func (i Int) String() string { return i.Hex() }

// Format implements fmt.Formatter. Only hexadecimal output is supported:
// 'x', 's' and 'v' print lowercase, 'X' prints uppercase, and the '#' flag
// adds a 0x/0X prefix to 'x' and 'X'. Width, '-' and '0' are honoured.
func (i Int) Format(s fmt.State, c rune) {
	var body string
	switch c {
	case 'x', 's', 'v':
		body = i.Hex()
	case 'X':
		body = strings.ToUpper(i.Hex())
	default:
		fmt.Fprintf(s, "%%!%c(apint.Int=%s)", c, i.Hex())
		return
	}

	var sign, prefix string
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}
	if s.Flag('#') {
		switch c {
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	pad := 0
	if w, ok := s.Width(); ok {
		pad = w - len(sign) - len(prefix) - len(body)
	}

	var out strings.Builder
	switch {
	case pad <= 0:
		out.WriteString(sign + prefix + body)
	case s.Flag('-'):
		out.WriteString(sign + prefix + body + strings.Repeat(" ", pad))
	case s.Flag('0'):
		out.WriteString(sign + prefix + strings.Repeat("0", pad) + body)
	default:
		out.WriteString(strings.Repeat(" ", pad) + sign + prefix + body)
	}
	_, _ = io.WriteString(s, out.String())
}
