package apint

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidHex is the cause of a ParseError raised for a character
	// outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("apint: invalid hex digit")

	// ErrEmptyHex is the cause of a ParseError raised when no digits follow
	// the optional sign.
	ErrEmptyHex = errors.New("apint: hex string has no digits")

	// ErrInvalidEncoding marks errors returned when unmarshalling text, JSON,
	// CBOR or msgpack input.
	ErrInvalidEncoding = errors.New("apint: invalid encoding")
)

// ParseError is returned by IntFromHex. No partially parsed value escapes
// alongside it.
type ParseError struct {
	Input  string
	Offset int  // Byte offset of the offending character in Input.
	Char   byte // Offending character; unset for ErrEmptyHex.
	Err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmptyHex) {
		return fmt.Sprintf("%v: %q", e.Err, e.Input)
	}
	return fmt.Sprintf("%v %q at offset %d in %q", e.Err, e.Char, e.Offset, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func markEncoding(err error, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrInvalidEncoding)
}
