package bignum

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var allSigns = []Sign{Negative, Zero, Positive}

func TestSignMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Sign
	}{
		{Positive, Positive, Positive},
		{Positive, Negative, Negative},
		{Negative, Positive, Negative},
		{Negative, Negative, Positive},
		{Zero, Positive, Zero},
		{Zero, Negative, Zero},
		{Positive, Zero, Zero},
		{Negative, Zero, Zero},
		{Zero, Zero, Zero},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))
		})
	}
}

func TestSignQuo(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, a := range allSigns {
		for _, b := range []Sign{Negative, Positive} {
			tt.MustEqual(a.Mul(b), a.Quo(b), "%s / %s", a, b)
		}
	}
}

func TestSignQuoByZeroPanics(t *testing.T) {
	for _, a := range allSigns {
		t.Run(a.String(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				v := recover()
				_, ok := v.(*InvariantViolation)
				tt.MustAssert(ok, "expected *InvariantViolation, found %#v", v)
			}()
			a.Quo(Zero)
		})
	}
}

func TestSignNeg(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(Negative, Positive.Neg())
	tt.MustEqual(Positive, Negative.Neg())
	tt.MustEqual(Zero, Zero.Neg())
	for _, s := range allSigns {
		tt.MustEqual(s, s.Neg().Neg())
	}
}

func TestSignString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-", Negative.String())
	tt.MustEqual("0", Zero.String())
	tt.MustEqual("+", Positive.String())
	tt.MustEqual("?", Sign(7).String())
}
