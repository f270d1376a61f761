/*
Package apint provides an arbitrary-precision signed integer (Int) with a
deliberately small API: construction, hex parsing and formatting, comparison,
addition, subtraction and left shifts.

Int is a value type; all operations return new values and never share word
storage with their operands.

Simple example:

	a := IntFromU64(math.MaxUint64)
	b := IntFromU64(1)
	fmt.Println(a.Add(b))
	// Output: 10000000000000000

Int can be created from a variety of sources:

	IntFromU64(v uint64) Int
	IntFrom64(v int64) Int
	IntFromRaw(neg bool, words ...uint64) Int
	IntFromHex(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

Int is printed and parsed in hexadecimal only. It supports the following
formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- cbor.Marshaler / cbor.Unmarshaler (github.com/fxamacker/cbor/v2)
	- msgpack.CustomEncoder / msgpack.CustomDecoder (github.com/vmihailenco/msgpack/v5)

*/
package apint
