package selftest

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"time"

	"github.com/shabbyrobe/go-apint"
	"github.com/shabbyrobe/go-apint/internal/assert"
	"github.com/shabbyrobe/go-apint/internal/config"
)

const (
	maxUint64 = 1<<64 - 1

	hex384 = "98e2566a4f03c5a76b8aae935759304beedba68692afc477f5aa151248d37483575ac902da12f9595e13ae8c359c9554"
	hex368 = "33d94c8042117410238aca99b998b81886c63ecdabf4d7eba99db79acc7c9fa7a3dc8663f75536bb4e1fe1198981"
	hex309 = "7e35207519b6b06429378631ca460905c19537644f31dc50114e9dc90bb4e4ebc43cfebe6b86d"
)

var (
	ap0         = apint.IntFromU64(0)
	ap1         = apint.IntFromU64(1)
	ap110660361 = apint.IntFromU64(110660361)
	max1        = apint.IntFromU64(maxUint64)
	minus1      = apint.IntFromU64(1).Neg()
	minusMax1   = apint.IntFromU64(maxUint64).Neg()
	ap2         = apint.IntFromU64(2)
	minus2      = apint.IntFromU64(2).Neg()
)

// Default returns a registry holding the literal scenarios, the fixed
// regression cases, and randomized property checks seeded from
// cfg.Check.Seed (0 picks a time-based seed).
func Default(cfg config.Config) *Registry {
	r := NewRegistry()
	registerScenarios(r)
	registerRegression(r)

	seed := cfg.Check.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	iterations := cfg.Check.Iterations
	if iterations < 1 {
		iterations = config.DefaultIterations
	}
	registerProperties(r, seed, iterations)
	return r
}

func mustHex(tt assert.T, s string) apint.Int {
	tt.Helper()
	v, err := apint.IntFromHex(s)
	tt.MustOK(err)
	return v
}

func registerScenarios(r *Registry) {
	r.Register("scenario/parse-then-add-one", func(tt assert.T) {
		tt.MustHex("6988b0a", mustHex(tt, "6988b09").Add(apint.IntFromU64(1)))
	})

	r.Register("scenario/add-grows-length", func(tt assert.T) {
		v := max1.Add(ap1)
		tt.MustHex("10000000000000000", v)
		tt.MustEqual(2, v.Len())
	})

	r.Register("scenario/parse-negative", func(tt assert.T) {
		v := mustHex(tt, "-7e6b")
		tt.MustAssert(v.IsNegative())
		tt.MustHex("-7e6b", v)
	})

	r.Register("scenario/sub-below-zero", func(tt assert.T) {
		v := ap0.Sub(ap1)
		tt.MustHex("-1", v)
		tt.MustEqual(0, v.Cmp(ap1.Neg()))
	})

	r.Register("scenario/shift-across-words", func(tt assert.T) {
		tt.MustHex("80000000000000000", ap2.Lsh(66))
	})

	r.Register("scenario/parse-leading-zeros", func(tt assert.T) {
		v := mustHex(tt, "-00000000000ef2345abde789878")
		tt.MustHex("-ef2345abde789878", v)
		tt.MustEqual(1, v.Len())
	})
}

func registerRegression(r *Registry) {
	r.Register("regression/create-from-u64", func(tt assert.T) {
		for _, tc := range []struct {
			v    apint.Int
			word uint64
		}{
			{ap0, 0},
			{ap1, 1},
			{ap110660361, 110660361},
			{max1, maxUint64},
		} {
			tt.MustEqual(1, tc.v.Len())
			tt.MustEqual(tc.word, tc.v.Word(0))
			tt.MustAssert(!tc.v.IsNegative())
		}
	})

	r.Register("regression/release", func(tt assert.T) {
		v := mustHex(tt, "-"+hex368)
		v.Release()
		tt.MustAssert(v.IsZero())
		tt.MustHex("0", v)
	})

	r.Register("regression/highest-bit-set", func(tt assert.T) {
		for _, tc := range []struct {
			v   apint.Int
			bit int
		}{
			{ap0, -1},
			{ap1, 0},
			{ap110660361, 26},
			{max1, 63},
			{mustHex(tt, hex384), 383},
			{mustHex(tt, "-"+hex384), 383},
			{mustHex(tt, strings.Repeat("0", 243)), -1},
		} {
			tt.Equals(tc.bit, tc.v.HighestSetBit(), "%s", tc.v)
		}
	})

	r.Register("regression/compare", func(tt assert.T) {
		big61 := mustHex(tt, "f70156b2dbeed0a8e03910fac6b48d1e0a6ff33168b03e05d992cfc6e5130")
		small := mustHex(tt, "d6250cfe8185987fbc8")
		for _, tc := range []struct {
			a, b apint.Int
			out  int
		}{
			{ap1, ap0, 1},
			{ap110660361, ap1, 1},
			{minus1, ap1, -1},
			{ap110660361, minus1, 1},
			{minusMax1, minus1, -1},
			{minus1, minus1, 0},
			{big61, small, 1},
			{big61.Neg(), small, -1},
			{big61.Neg(), small.Neg(), -1},
			{big61.Neg(), mustHex(tt, "-f70156b2dbeed0a8e03910fac6b48d1e0a6ff33168b03e05d992cfc6e5130"), 0},
		} {
			tt.Equals(tc.out, tc.a.Cmp(tc.b), "%s <=> %s", tc.a, tc.b)
		}
	})

	r.Register("regression/format-as-hex", func(tt assert.T) {
		tt.Hex("0", ap0)
		tt.Hex("1", ap1)
		tt.Hex("6988b09", ap110660361)
		tt.Hex("ffffffffffffffff", max1)
		tt.Hex("-1", minus1)
		tt.Hex("-ffffffffffffffff", minusMax1)
		tt.Hex("5e0", mustHex(tt, "005e0"))

		for _, s := range []string{
			"-" + hex309,
			"-" + strings.Repeat("ef", 32),
			"-" + strings.Repeat("ef12", 32),
			"-7e6b",
		} {
			tt.Hex(s, mustHex(tt, s))
		}
	})

	r.Register("regression/add", func(tt assert.T) {
		a := mustHex(tt, "539de8758b19e823b1badcccc9d587172a8117e2466f06c15bfd8ca26033661b8377b6795060c5feefab6975ec86634e")
		b := mustHex(tt, "f2229c93c3f42f893e398c4ca6e5b120dfb7c8d386f626d9aa08010543c52")
		sum := "539de8758b19e823b1badcccc9d587172a903a0c0fab46045491703b24fdd4769585b1f5dd9935615d4609f5fcda9fa0"
		tt.Hex(sum, a.Add(b))
		tt.Hex(sum, b.Add(a))
		tt.Hex("-"+sum, a.Neg().Add(b.Neg()))

		c := mustHex(tt, "446572ec28bf1ce7ed6295b4cca3fcc4fe8e1d33f3fae4f")
		d := mustHex(tt, "-fc70d28a3a58af237e01831253dfa8119")
		tt.Hex("446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36", c.Add(d))
		tt.Hex("446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36", d.Add(c))

		e := mustHex(tt, hex368)
		tt.Hex("0", e.Add(e.Neg()))
	})

	r.Register("regression/add-without-hex", func(tt assert.T) {
		for _, tc := range []struct {
			a, b apint.Int
			out  string
		}{
			{ap0, ap0, "0"},
			{ap0, ap1, "1"},
			{ap0, minus1, "-1"},
			{minus1, ap1, "0"},
			{minus1, minus1, "-2"},
			{minus2, minus1, "-3"},
			{minus2, ap1, "-1"},
			{max1, ap1, "10000000000000000"},
		} {
			tt.Hex(tc.out, tc.a.Add(tc.b), "%s + %s", tc.a, tc.b)
		}
	})

	r.Register("regression/sub", func(tt assert.T) {
		tt.Hex("fffffffffffffffe", max1.Sub(ap1))
		tt.Hex("1", ap1.Sub(ap0))
		tt.Hex("0", ap1.Sub(ap1))
		tt.Hex("-1", ap0.Sub(ap1))

		a := mustHex(tt, hex309)
		b := mustHex(tt, "9fa0fb165441ade7cb8b17c3ab3653465e09e8078e09631ec8f6fe3a5b301dc")
		diff := "7e35207519b6afc4883c6fdd8898213a367d73b918de95f20766963b0251c622cd3ec4633b691"
		tt.Hex(diff, a.Sub(b))
		tt.Hex("-"+diff, b.Sub(a))

		c := mustHex(tt, "-539de8758b19e823b1badcccc9d587172a8117e2466f06c15bfd8ca26033661b8377b6795060c5feefab6975ec86634e")
		d := mustHex(tt, "f2229c93c3f42f893e398c4ca6e5b120dfb7c8d386f626d9aa08010543c52")
		tt.Hex("-539de8758b19e823b1badcccc9d587172a903a0c0fab46045491703b24fdd4769585b1f5dd9935615d4609f5fcda9fa0", c.Sub(d))

		e := mustHex(tt, "446572ec28bf1ce7ed6295b4cca3fcc4fe8e1d33f3fae4f")
		f := mustHex(tt, "fc70d28a3a58af237e01831253dfa8119")
		tt.Hex("446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36", e.Sub(f))
		tt.Hex("-446572ec28bf1beb7c900b7a73f4d946fd0b0ae01452d36", f.Sub(e))

		g := mustHex(tt, hex368)
		tt.Hex("0", g.Sub(g))
	})

	r.Register("regression/sub-without-hex", func(tt assert.T) {
		for _, tc := range []struct {
			a, b apint.Int
			out  string
		}{
			{ap0, ap0, "0"},
			{ap0, ap1, "-1"},
			{ap0, minus1, "1"},
			{minus1, ap0, "-1"},
			{minus1, ap1, "-2"},
			{minus1, minus1, "0"},
			{minus2, minus1, "-1"},
			{minus2, ap1, "-3"},
		} {
			tt.Hex(tc.out, tc.a.Sub(tc.b), "%s - %s", tc.a, tc.b)
		}
	})

	r.Register("regression/create-from-hex", func(tt assert.T) {
		v := mustHex(tt, "7e6b")
		tt.MustEqual(uint64(0x7e6b), v.Word(0))

		for _, s := range []string{"-0", "-" + strings.Repeat("0", 100)} {
			z := mustHex(tt, s)
			tt.Equals(1, z.Len())
			tt.Equals(uint64(0), z.Word(0))
			tt.Assert(!z.IsNegative(), "%q parsed as negative", s)
		}

		n := mustHex(tt, "-00000000000ef2345abde789878")
		tt.Equals(1, n.Len())
		tt.Assert(n.IsNegative())
		tt.Hex("-ef2345abde789878", n)

		tt.Equals(uint64(maxUint64), mustHex(tt, "ffffffffffffffff").Word(0))
		tt.Equals(5, mustHex(tt, hex309).Len())
		tt.Equals(uint64(0x5e0), mustHex(tt, "005e0").Word(0))
		tt.Assert(mustHex(tt, "-7e6b").IsNegative())

		for _, bad := range []string{"", "-", "12g", "0x1", " 1"} {
			_, err := apint.IntFromHex(bad)
			tt.Assert(err != nil, "%q parsed", bad)
		}
	})

	r.Register("regression/left-shift-by-1", func(tt assert.T) {
		tt.Hex("0", ap0.Lsh1())
		tt.Hex("2", ap1.Lsh1())
		v := max1.Lsh1()
		tt.Hex("1fffffffffffffffe", v)
		tt.Equals(2, v.Len())
	})

	r.Register("regression/left-shift-by-n", func(tt assert.T) {
		tt.Hex("80000000000000000", ap2.Lsh(66))
		tt.Hex("10", ap2.Lsh(3))
		tt.Hex("1"+strings.Repeat("0", 32), ap1.Lsh(128))
		tt.Hex("1", ap1.Lsh(0))

		v := mustHex(tt, hex368)
		s := v.Lsh(832)
		tt.Equals(13+v.Len(), s.Len())
		tt.Hex(hex368+strings.Repeat("0", 208), s)

		ns := v.Neg().Lsh(832)
		tt.Equals(13+v.Len(), ns.Len())
		tt.Hex("-"+hex368+strings.Repeat("0", 208), ns)
	})
}

// randInt returns a signed value of up to six words. About one in eight is a
// run of all-one words so carries and borrows cross every word.
func randInt(rng *rand.Rand) apint.Int {
	words := rng.Intn(6) + 1
	var v apint.Int
	switch rng.Intn(8) {
	case 0:
		w := make([]uint64, words)
		for i := range w {
			w[i] = maxUint64
		}
		v = apint.IntFromRaw(false, w...)
	case 1:
		v = apint.IntFromU64(uint64(rng.Intn(3)))
	default:
		v = apint.RandInt(rng, words)
	}
	if rng.Intn(2) == 0 {
		v = v.Neg()
	}
	return v
}

type property struct {
	name  string
	arity int
	check func(tt assert.T, rng *rand.Rand, args []apint.Int)
}

var properties = []property{
	{"hex-round-trip", 1, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		s := a[0].Hex()
		p, err := apint.IntFromHex(s)
		tt.MustOK(err)
		tt.MustHex(s, p)
	}},
	{"additive-identity", 1, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		var zero apint.Int
		tt.MustAssert(a[0].Add(zero).Equal(a[0]), "%s + 0", a[0])
		tt.MustAssert(zero.Add(a[0]).Equal(a[0]), "0 + %s", a[0])
	}},
	{"additive-inverse", 1, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		r := a[0].Add(a[0].Neg())
		tt.MustHex("0", r, "%s + -(%s)", a[0], a[0])
		tt.MustAssert(!r.IsNegative() && r.Len() == 1)
	}},
	{"add-commutes", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		tt.MustHex(a[0].Add(a[1]).Hex(), a[1].Add(a[0]), "%s + %s", a[0], a[1])
	}},
	{"sub-is-add-negated", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		tt.MustHex(a[0].Add(a[1].Neg()).Hex(), a[0].Sub(a[1]), "%s - %s", a[0], a[1])
	}},
	{"cmp-antisymmetric", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		tt.MustEqual(-a[0].Cmp(a[1]), a[1].Cmp(a[0]), "%s <=> %s", a[0], a[1])
	}},
	{"shift-composes", 1, func(tt assert.T, rng *rand.Rand, a []apint.Int) {
		m, n := uint(rng.Intn(200)), uint(rng.Intn(200))
		tt.MustHex(a[0].Lsh(m+n).Hex(), a[0].Lsh(m).Lsh(n), "%s << %d << %d", a[0], m, n)
	}},
	{"shift-moves-highest-bit", 1, func(tt assert.T, rng *rand.Rand, a []apint.Int) {
		n := rng.Intn(500)
		exp := -1
		if !a[0].IsZero() {
			exp = a[0].HighestSetBit() + n
		}
		tt.MustEqual(exp, a[0].Lsh(uint(n)).HighestSetBit(), "%s << %d", a[0], n)
	}},
	{"add-matches-big", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		exp := new(big.Int).Add(a[0].AsBigInt(), a[1].AsBigInt())
		tt.MustHex(exp.Text(16), a[0].Add(a[1]), "%s + %s", a[0], a[1])
	}},
	{"sub-matches-big", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		exp := new(big.Int).Sub(a[0].AsBigInt(), a[1].AsBigInt())
		tt.MustHex(exp.Text(16), a[0].Sub(a[1]), "%s - %s", a[0], a[1])
	}},
	{"cmp-matches-big", 2, func(tt assert.T, _ *rand.Rand, a []apint.Int) {
		tt.MustEqual(a[0].AsBigInt().Cmp(a[1].AsBigInt()), a[0].Cmp(a[1]), "%s <=> %s", a[0], a[1])
	}},
	{"lsh-matches-big", 1, func(tt assert.T, rng *rand.Rand, a []apint.Int) {
		n := uint(rng.Intn(300))
		exp := new(big.Int).Lsh(a[0].AsBigInt(), n)
		tt.MustHex(exp.Text(16), a[0].Lsh(n), "%s << %d", a[0], n)
	}},
}

func registerProperties(r *Registry, seed int64, iterations int) {
	for idx, p := range properties {
		p, stream := p, seed+int64(idx)
		r.Register("property/"+p.name, func(tt assert.T) {
			// Each property gets its own stream so running a subset of cases
			// reproduces the same inputs.
			rng := rand.New(rand.NewSource(stream))
			args := make([]apint.Int, p.arity)
			for i := 0; i < iterations; i++ {
				for j := range args {
					args[j] = randInt(rng)
				}
				p.check(withContext(tt, seed, i), rng, args)
			}
		})
	}
}

// withContext prefixes failures with the seed and iteration so a failing
// property can be replayed with [check] seed.
func withContext(tt assert.T, seed int64, iteration int) assert.T {
	return assert.WrapTB(contextTB{TB: tt.TB, prefix: fmt.Sprintf("seed %d, iteration %d:", seed, iteration)})
}

type contextTB struct {
	assert.TB
	prefix string
}

func (c contextTB) Fatal(args ...interface{}) {
	c.TB.Fatal(append([]interface{}{c.prefix}, args...)...)
}

func (c contextTB) Error(args ...interface{}) {
	c.TB.Error(append([]interface{}{c.prefix}, args...)...)
}
