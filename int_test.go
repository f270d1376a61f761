package apint

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = IntFromU64
var i64 = IntFrom64

const (
	big384 = "98e2566a4f03c5a76b8aae935759304beedba68692afc477f5aa151248d37483575ac902da12f9595e13ae8c359c9554"
	big368 = "33d94c8042117410238aca99b998b81886c63ecdabf4d7eba99db79acc7c9fa7a3dc8663f75536bb4e1fe1198981"
)

func TestIntFromU64(t *testing.T) {
	for _, tc := range []uint64{0, 1, 110660361, maxUint64} {
		t.Run(fmt.Sprintf("%d", tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := u64(tc)
			tt.MustEqual(1, v.Len())
			tt.MustEqual(tc, v.Word(0))
			tt.MustAssert(!v.IsNegative())
			tt.MustOK(checkCanonical(v))
		})
	}
}

func TestIntFrom64(t *testing.T) {
	for _, tc := range []struct {
		in  int64
		out string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{math.MaxInt64, "7fffffffffffffff"},
		{math.MinInt64, "-8000000000000000"},
		{math.MinInt64 + 1, "-7fffffffffffffff"},
	} {
		t.Run(fmt.Sprintf("%d=%s", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, i64(tc.in).Hex())
			tt.MustAssert(i64(tc.in).AsBigInt().Cmp(big.NewInt(tc.in)) == 0)
		})
	}
}

func TestIntFromRaw(t *testing.T) {
	tt := assert.WrapTB(t)

	words := []uint64{1, 2, 0, 0}
	v := IntFromRaw(true, words...)
	tt.MustEqual(2, v.Len())
	tt.MustEqual("-20000000000000001", v.Hex())

	// The input slice is copied:
	words[0] = 99
	tt.MustEqual(uint64(1), v.Word(0))

	z := IntFromRaw(true, 0, 0, 0)
	tt.MustOK(checkCanonical(z))
	tt.MustAssert(z.IsZero())
	tt.MustAssert(!z.IsNegative())
	tt.MustEqual(1, z.Len())

	tt.MustOK(checkCanonical(IntFromRaw(false)))
}

func TestIntRelease(t *testing.T) {
	tt := assert.WrapTB(t)

	v := MustIntFromHex("-" + big368)
	cp := v
	v.Release()
	tt.MustAssert(v.IsZero())
	tt.MustEqual("0", v.Hex())
	tt.MustEqual(1, v.Len())

	// Releasing twice is harmless:
	v.Release()
	tt.MustAssert(v.IsZero())

	// Other copies keep their own view of the value:
	tt.MustEqual("-"+big368, cp.Hex())
}

func TestIntZeroValue(t *testing.T) {
	tt := assert.WrapTB(t)

	var z Int
	tt.MustAssert(z.IsZero())
	tt.MustAssert(!z.IsNegative())
	tt.MustEqual(0, z.Sign())
	tt.MustEqual(1, z.Len())
	tt.MustEqual(uint64(0), z.Word(0))
	tt.MustEqual(-1, z.HighestSetBit())
	tt.MustEqual("0", z.Hex())
	tt.MustAssert(z.Equal(u64(0)))
	tt.MustEqual(0, z.Cmp(u64(0)))
	tt.MustEqual("1", z.Add(u64(1)).Hex())
	tt.MustEqual("-1", z.Sub(u64(1)).Hex())
	tt.MustOK(checkCanonical(z.Neg()))
	tt.MustOK(checkCanonical(z.Lsh(100)))
}

func TestIntIsNegative(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		neg bool
	}{
		{u64(0), false},
		{u64(1), false},
		{i64(-1), true},
		{MustIntFromHex("-0"), false},
		{MustIntFromHex("-7e6b"), true},
		{u64(0).Neg(), false},
		{i64(-5).Neg(), false},
	} {
		t.Run(fmt.Sprintf("%s", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.neg, tc.in.IsNegative())
		})
	}
}

func TestIntWord(t *testing.T) {
	tt := assert.WrapTB(t)

	v := hexs("3 0000000000000002 0000000000000001")
	tt.MustEqual(3, v.Len())
	tt.MustEqual(uint64(1), v.Word(0))
	tt.MustEqual(uint64(2), v.Word(1))
	tt.MustEqual(uint64(3), v.Word(2))
	tt.MustEqual(uint64(0), v.Word(3))
	tt.MustEqual(uint64(0), v.Word(math.MaxUint32))
	tt.MustEqual([]uint64{1, 2, 3}, v.Words())

	// Words is a copy:
	v.Words()[0] = 99
	tt.MustEqual(uint64(1), v.Word(0))
}

func TestIntHighestSetBit(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		out int
	}{
		{u64(0), -1},
		{u64(1), 0},
		{u64(110660361), 26},
		{u64(maxUint64), 63},
		{hexs("1 0000000000000000"), 64},
		{MustIntFromHex(big384), 383},
		{MustIntFromHex("-" + big384), 383},
		{MustIntFromHex(strings.Repeat("0", 243)), -1},
	} {
		t.Run(fmt.Sprintf("%s", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.HighestSetBit())
			tt.MustEqual(tc.out+1, tc.in.BitLen())
		})
	}
}

func TestIntIsUint64(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		out bool
	}{
		{u64(0), true},
		{u64(maxUint64), true},
		{i64(-1), false},
		{hexs("1 0000000000000000"), false},
	} {
		t.Run(fmt.Sprintf("%s", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.IsUint64())
			tt.MustEqual(tc.in.Word(0), tc.in.AsUint64())
		})
	}
}

func TestIntNeg(t *testing.T) {
	for _, tc := range []struct {
		a, b Int
	}{
		{u64(0), u64(0)},
		{u64(1), i64(-1)},
		{i64(-1), u64(1)},
		{u64(maxUint64), MustIntFromHex("-ffffffffffffffff")},
		{MustIntFromHex(big368), MustIntFromHex("-" + big368)},
	} {
		t.Run(fmt.Sprintf("-(%s)=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			n := tc.a.Neg()
			tt.MustOK(checkCanonical(n))
			tt.MustAssert(tc.b.Equal(n), "found %s", n)
		})
	}
}

func TestIntAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("7e6b", MustIntFromHex("-7e6b").Abs().Hex())
	tt.MustEqual("7e6b", MustIntFromHex("7e6b").Abs().Hex())
	tt.MustEqual("0", u64(0).Abs().Hex())
}

func TestIntAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Int
	}{
		{u64(0), u64(0), u64(0)},
		{u64(1), u64(0), u64(1)},
		{u64(1), u64(1), u64(2)},
		{u64(0), i64(-1), i64(-1)},
		{i64(-1), u64(1), u64(0)},
		{i64(-1), i64(-1), i64(-2)},
		{i64(-2), i64(-1), i64(-3)},
		{i64(-2), u64(1), i64(-1)},
		{MustIntFromHex("6988b09"), u64(1), MustIntFromHex("6988b0a")},
		{u64(maxUint64), u64(1), hexs("1 0000000000000000")}, // carry grows the value
		{hexs("ffffffffffffffff ffffffffffffffff"), u64(1), hexs("1 0000000000000000 0000000000000000")},
		{hexs("1 0000000000000000"), i64(-1), u64(maxUint64)}, // borrow shrinks the value
		{
			MustIntFromHex("539de8758b19e823b1badcccc9d587172a8117e2466f06c15bfd8ca26033661b8377b6795060c5feefab6975ec86634e"),
			MustIntFromHex("f2229c93c3f42f893e398c4ca6e5b120dfb7c8d386f626d9aa08010543c52"),
			MustIntFromHex("539de8758b19e823b1badcccc9d587172a903a0c0fab46045491703b24fdd4769585b1f5dd9935615d4609f5fcda9fa0"),
		},
		{
			MustIntFromHex("446572ec28bf1ce7ed6295b4cca3fcc4fe8e1d33f3fae4f"),
			MustIntFromHex("-fc70d28a3a58af237e01831253dfa8119"),
			MustIntFromHex("446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36"),
		},
		{MustIntFromHex(big368), MustIntFromHex("-" + big368), u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for _, r := range []Int{tc.a.Add(tc.b), tc.b.Add(tc.a)} {
				tt.MustOK(checkCanonical(r))
				tt.MustAssert(tc.c.Equal(r), "found %s", r)
			}
		})
	}
}

func TestIntSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Int
	}{
		{u64(0), u64(0), u64(0)},
		{u64(0), u64(1), i64(-1)},
		{u64(0), i64(-1), u64(1)},
		{i64(-1), u64(0), i64(-1)},
		{i64(-1), u64(1), i64(-2)},
		{i64(-1), i64(-1), u64(0)},
		{i64(-2), i64(-1), i64(-1)},
		{i64(-2), u64(1), i64(-3)},
		{u64(maxUint64), u64(1), MustIntFromHex("fffffffffffffffe")},
		{
			MustIntFromHex("7e35207519b6b06429378631ca460905c19537644f31dc50114e9dc90bb4e4ebc43cfebe6b86d"),
			MustIntFromHex("9fa0fb165441ade7cb8b17c3ab3653465e09e8078e09631ec8f6fe3a5b301dc"),
			MustIntFromHex("7e35207519b6afc4883c6fdd8898213a367d73b918de95f20766963b0251c622cd3ec4633b691"),
		},
		{
			MustIntFromHex("9fa0fb165441ade7cb8b17c3ab3653465e09e8078e09631ec8f6fe3a5b301dc"),
			MustIntFromHex("7e35207519b6b06429378631ca460905c19537644f31dc50114e9dc90bb4e4ebc43cfebe6b86d"),
			MustIntFromHex("-7e35207519b6afc4883c6fdd8898213a367d73b918de95f20766963b0251c622cd3ec4633b691"),
		},
		{
			MustIntFromHex("fc70d28a3a58af237e01831253dfa8119"),
			MustIntFromHex("446572ec28bf1ce7ed6295b4cca3fcc4fe8e1d33f3fae4f"),
			MustIntFromHex("-446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36"),
		},
		{MustIntFromHex(big368), MustIntFromHex(big368), u64(0)},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Sub(tc.b)
			tt.MustOK(checkCanonical(r))
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(r.Equal(tc.a.Add(tc.b.Neg())))
		})
	}
}

func TestIntIncDec(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("10000000000000000", u64(maxUint64).Inc().Hex())
	tt.MustEqual("ffffffffffffffff", hexs("1 0000000000000000").Dec().Hex())
	tt.MustEqual("0", i64(-1).Inc().Hex())
	tt.MustEqual("-1", u64(0).Dec().Hex())
}

func TestIntCmp(t *testing.T) {
	var (
		big61  = MustIntFromHex("f70156b2dbeed0a8e03910fac6b48d1e0a6ff33168b03e05d992cfc6e5130")
		small  = MustIntFromHex("d6250cfe8185987fbc8")
		nbig61 = big61.Neg()
		nsmall = small.Neg()
		minMax = u64(maxUint64).Neg()
	)

	for _, tc := range []struct {
		a, b Int
		out  int
	}{
		{u64(1), u64(0), 1},
		{u64(110660361), u64(1), 1},
		{i64(-1), u64(1), -1},
		{i64(-1), u64(0), -1},
		{u64(110660361), i64(-1), 1},
		{minMax, i64(-1), -1},
		{i64(-1), i64(-1), 0},
		{u64(0), u64(0), 0},
		{u64(0), MustIntFromHex("-0"), 0},
		{big61, small, 1},
		{nbig61, small, -1},
		{nbig61, nsmall, -1},
		{nbig61, big61.Neg(), 0},
	} {
		t.Run(fmt.Sprintf("%s<=>%s=%d", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.out, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.out == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.out > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.out >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.out < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.out <= 0, tc.a.LessOrEqualTo(tc.b))
		})
	}
}

func TestIntCmpAbs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(-5).CmpAbs(u64(5)))
	tt.MustEqual(1, i64(-6).CmpAbs(u64(5)))
	tt.MustEqual(-1, u64(maxUint64).CmpAbs(hexs("-1 0000000000000000")))
}

func TestIntLsh(t *testing.T) {
	for _, tc := range []struct {
		in  Int
		by  uint
		out string
		len int
	}{
		{u64(0), 1, "0", 1},
		{u64(0), 1000, "0", 1},
		{u64(1), 1, "2", 1},
		{u64(maxUint64), 1, "1fffffffffffffffe", 2},
		{u64(2), 66, "80000000000000000", 2},
		{u64(2), 3, "10", 1},
		{u64(1), 63, "8000000000000000", 1},
		{u64(1), 64, "10000000000000000", 2},
		{u64(1), 128, "100000000000000000000000000000000", 3},
		{u64(1), 0, "1", 1},
		{i64(-3), 70, "-c00000000000000000", 2},
		{MustIntFromHex(big368), 832, big368 + strings.Repeat("0", 208), 19},
		{MustIntFromHex("-" + big368), 832, "-" + big368 + strings.Repeat("0", 208), 19},
	} {
		t.Run(fmt.Sprintf("%s<<%d=%s", tc.in, tc.by, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.in.Lsh(tc.by)
			tt.MustOK(checkCanonical(r))
			tt.MustEqual(tc.out, r.Hex())
			tt.MustEqual(tc.len, r.Len())
			if tc.by == 1 {
				tt.MustEqual(tc.out, tc.in.Lsh1().Hex())
			}
		})
	}
}

func TestIntLshCountOverflow(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("0", u64(0).Lsh(math.MaxUint).Hex())

	defer func() {
		r := recover()
		tt.MustAssert(r != nil)
		err, ok := r.(error)
		tt.MustAssert(ok)
		tt.MustAssert(strings.Contains(err.Error(), "apint: shift by"), "%v", err)
	}()
	u64(1).Lsh(math.MaxUint)
}

func TestIntResultsDoNotAlias(t *testing.T) {
	tt := assert.WrapTB(t)

	a := MustIntFromHex(big368)
	b := u64(0)

	for _, r := range []Int{a.Add(b), b.Add(a), a.Sub(b), a.Neg().Neg(), a.Abs(), a.Lsh(0), Larger(a, b)} {
		tt.MustAssert(&r.words[0] != &a.words[0], "result shares storage with operand")
		tt.MustAssert(r.Equal(a))
	}
}
