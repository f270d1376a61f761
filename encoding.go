package apint

import (
	"bytes"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
	_ cbor.Marshaler        = Int{}
	_ cbor.Unmarshaler      = (*Int)(nil)
)

func (i Int) MarshalText() ([]byte, error) {
	return i.appendHex(nil), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromHex(string(bts))
	if err != nil {
		return markEncoding(err, "apint: text")
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+1+i.Len()*hexPerWord)
	buf = append(buf, '"')
	buf = i.appendHex(buf)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON accepts a quoted hex string. Bare JSON numbers are rejected
// rather than read as hex.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if bytes.Equal(bts, []byte("null")) {
		return nil
	}
	ln := len(bts)
	if ln < 2 || bts[0] != '"' || bts[ln-1] != '"' {
		return errors.Mark(errors.Newf("apint: invalid JSON %q, expected a hex string", string(bts)), ErrInvalidEncoding)
	}
	bts = bts[1 : ln-1]

	v, err := IntFromHex(string(bts))
	if err != nil {
		return markEncoding(err, "apint: JSON")
	}
	*i = v
	return nil
}

// MarshalCBOR encodes i as a CBOR integer when it fits in one, otherwise as an
// RFC 8949 bignum (tag 2 for positive, tag 3 for negative values).
func (i Int) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(i.AsBigInt())
}

func (i *Int) UnmarshalCBOR(data []byte) error {
	var b big.Int
	if err := cbor.Unmarshal(data, &b); err != nil {
		return markEncoding(err, "apint: CBOR")
	}
	*i = IntFromBigInt(&b)
	return nil
}

// EncodeMsgpack writes i as the two-element array [negative, words], where
// words is the little-endian magnitude.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	mag := i.mag()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(i.IsNegative()); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(len(mag)); err != nil {
		return err
	}
	for _, w := range mag {
		if err := enc.EncodeUint(w); err != nil {
			return err
		}
	}
	return nil
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return markEncoding(err, "apint: msgpack")
	}
	if n != 2 {
		return errors.Mark(errors.Newf("apint: msgpack array has %d elements, expected 2", n), ErrInvalidEncoding)
	}

	neg, err := dec.DecodeBool()
	if err != nil {
		return markEncoding(err, "apint: msgpack sign")
	}

	wn, err := dec.DecodeArrayLen()
	if err != nil {
		return markEncoding(err, "apint: msgpack words")
	}
	if wn < 1 || wn > maxDecodeWords {
		return errors.Mark(errors.Newf("apint: msgpack word count %d out of range", wn), ErrInvalidEncoding)
	}

	words := make([]uint64, wn)
	for k := range words {
		if words[k], err = dec.DecodeUint64(); err != nil {
			return markEncoding(err, "apint: msgpack word %d", k)
		}
	}
	*i = newInt(neg, trimWords(words))
	return nil
}
