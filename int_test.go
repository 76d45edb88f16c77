package bignum

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestIntZeroValue(t *testing.T) {
	tt := assert.WrapTB(t)

	var z Int
	tt.MustAssert(z.IsZero())
	tt.MustEqual(Zero, z.Sign())
	tt.MustEqual([]uint64{0}, z.Limbs())
	tt.MustEqual("0", z.AsBigInt().String())
	tt.MustAssert(z.Equal(i64(0)))
	tt.MustAssert(z.Equal(i64(5).Sub(i64(5))))
}

func TestIntFromLimbs(t *testing.T) {
	for idx, tc := range []struct {
		limbs []uint64
		sign  Sign
		out   string
		err   error
	}{
		{[]uint64{1}, Positive, "1", nil},
		{[]uint64{1}, Negative, "-1", nil},
		{[]uint64{0, 1}, Positive, "18446744073709551616", nil},
		{[]uint64{5, 0, 0}, Negative, "-5", nil},
		{[]uint64{0}, Zero, "0", nil},
		{[]uint64{0, 0}, Zero, "0", nil},
		{nil, Zero, "0", nil},

		{[]uint64{0}, Positive, "", ErrSignMismatch},
		{[]uint64{0}, Negative, "", ErrSignMismatch},
		{nil, Positive, "", ErrSignMismatch},
		{[]uint64{1}, Zero, "", ErrSignMismatch},
		{[]uint64{1}, Sign(2), "", ErrSignMismatch},
	} {
		t.Run(fmt.Sprintf("%d/%s%v", idx, tc.sign, tc.limbs), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := IntFromLimbs(tc.limbs, tc.sign)
			tt.MustEqual(tc.err, err)
			if err == nil {
				tt.MustEqual(tc.out, v.AsBigInt().String())
			}
		})
	}
}

func TestIntFromLimbsCopies(t *testing.T) {
	tt := assert.WrapTB(t)

	limbs := []uint64{1, 2}
	v, err := IntFromLimbs(limbs, Positive)
	tt.MustOK(err)
	limbs[0] = 99
	tt.MustEqual([]uint64{1, 2}, v.Limbs())

	out := v.Limbs()
	out[0] = 99
	tt.MustEqual([]uint64{1, 2}, v.Limbs())
}

func TestNewIntZeroSignPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		v := recover()
		iv, ok := v.(*InvariantViolation)
		tt.MustAssert(ok, "expected *InvariantViolation, found %#v", v)
		tt.MustAssert(iv.Error() != "")
	}()
	newInt(nat{1}, Zero)
}

func TestIntAdd(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Int
	}{
		{i64(1), i64(2), i64(3)},
		{i64(-1), i64(-2), i64(-3)},
		{i64(-5), i64(2), i64(-3)},
		{i64(5), i64(-2), i64(3)},
		{i64(2), i64(-5), i64(-3)},
		{i64(5), i64(-5), i64(0)},
		{i64(0), i64(-5), i64(-5)},
		{i64(-5), i64(0), i64(-5)},
		{IntFromU64(math.MaxUint64), i64(1), ints("18446744073709551616")},
		{ints("-18446744073709551616"), i64(1), IntFromU64(math.MaxUint64).Neg()},
		{ints("18446744073709551616"), ints("-18446744073709551616"), i64(0)},
		{ints("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), i64(1), ints("0x1 0000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a.AsBigInt(), tc.b.AsBigInt(), tc.c.AsBigInt()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))
			tt.MustEqual(tc.c, tc.b.Add(tc.a))
		})
	}
}

func TestIntSub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Int
	}{
		{i64(3), i64(2), i64(1)},
		{i64(2), i64(3), i64(-1)},
		{i64(-2), i64(-3), i64(1)},
		{i64(-2), i64(3), i64(-5)},
		{i64(2), i64(-3), i64(5)},
		{i64(0), i64(3), i64(-3)},
		{i64(7), i64(7), i64(0)},
		{ints("18446744073709551616"), i64(1), IntFromU64(math.MaxUint64)},
		{i64(0), ints("18446744073709551616"), ints("-18446744073709551616")},
		{i64(1), ints("18446744073709551616"), IntFromU64(math.MaxUint64).Neg()},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a.AsBigInt(), tc.b.AsBigInt(), tc.c.AsBigInt()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))
		})
	}
}

func TestIntMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c Int
	}{
		{i64(3), i64(7), i64(21)},
		{i64(-3), i64(7), i64(-21)},
		{i64(3), i64(-7), i64(-21)},
		{i64(-3), i64(-7), i64(21)},
		{i64(0), i64(-7), i64(0)},
		{i64(-7), i64(0), i64(0)},
		{IntFromU64(math.MaxUint64), i64(2), ints("36893488147419103230")},
		{IntFromU64(math.MaxUint64), i64(-2), ints("-36893488147419103230")},
		{ints("18446744073709551616"), ints("18446744073709551616"), ints("0x1 0000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s=%s", idx, tc.a.AsBigInt(), tc.b.AsBigInt(), tc.c.AsBigInt()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))
			tt.MustEqual(tc.c, tc.b.Mul(tc.a))
		})
	}
}

func TestIntNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(i64(-5), i64(5).Neg())
	tt.MustEqual(i64(5), i64(-5).Neg())
	tt.MustEqual(Int{}, Int{}.Neg())
	tt.MustEqual(Zero, Int{}.Neg().Sign())

	tt.MustEqual(i64(5), i64(-5).Abs())
	tt.MustEqual(i64(5), i64(5).Abs())
	tt.MustEqual(Int{}, Int{}.Abs())
}

func TestIntArithmeticProperties(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		a, b, c := randInt(globalRNG, 6), randInt(globalRNG, 6), randInt(globalRNG, 6)

		// a + (-a) is Zero, never a negative zero.
		sum := a.Add(a.Neg())
		tt.MustEqual(Zero, sum.Sign())
		tt.MustEqual(Int{}, sum)

		tt.MustEqual(a.Add(b), b.Add(a))
		tt.MustEqual(a.Add(b).Add(c), a.Add(b.Add(c)))
		tt.MustEqual(a.Mul(b), b.Mul(a))
		tt.MustEqual(a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)))
		tt.MustEqual(a, a.Sub(b).Add(b))
		tt.MustEqual(a.Sign().Mul(b.Sign()), a.Mul(b).Sign())
	}
}

func TestIntCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b Int
		c    int
	}{
		{i64(1), i64(2), -1},
		{i64(2), i64(1), 1},
		{i64(2), i64(2), 0},
		{i64(-2), i64(1), -1},
		{i64(-2), i64(-1), -1},
		{i64(0), i64(-1), 1},
		{i64(0), i64(0), 0},
		{ints("18446744073709551616"), IntFromU64(math.MaxUint64), 1},
		{ints("-18446744073709551616"), IntFromU64(math.MaxUint64).Neg(), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a.AsBigInt(), tc.b.AsBigInt()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.c, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.c == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.c < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.c <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.c > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.c >= 0, tc.a.GreaterOrEqualTo(tc.b))
		})
	}
}

func TestIntDoesNotModify(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := ints("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), i64(-3)
	a.Add(b)
	a.Sub(b)
	a.Mul(b)
	a.QuoRem(b)
	tt.MustEqual("340282366920938463463374607431768211455", a.AsBigInt().String())
	tt.MustEqual("-3", b.AsBigInt().String())
}

func TestUtil(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(i64(7), DifferenceInt(i64(-2), i64(5)))
	tt.MustEqual(i64(7), DifferenceInt(i64(5), i64(-2)))
	tt.MustEqual(i64(5), LargerInt(i64(-2), i64(5)))
	tt.MustEqual(i64(-2), SmallerInt(i64(-2), i64(5)))

	for i := 0; i < 100; i++ {
		limbs := globalRNG.Intn(5)
		v := RandInt(globalRNG, limbs)
		tt.MustAssert(v.Sign() != Negative)
		tt.MustAssert(len(v.Limbs()) <= limbs || limbs == 0)
	}
}
