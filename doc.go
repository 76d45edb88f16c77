/*
Package bignum provides arbitrary-precision signed integers (Int) and exact,
unreduced fractions (Rational).

Int and Rational are value types; all operations return new values.

Simple example:

	a := IntFromU64(math.MaxUint64)
	b := a.Mul(a).Add(IntFrom64(1))
	q, r, err := b.QuoRem(a)
	// q == a, r == 1, err == nil

An Int is a magnitude, held as 64-bit limbs least significant first, and a
Sign. Zero has its own Sign, so there is no negative zero:

	IntFrom64(-5).Add(IntFrom64(5)).Sign() == Zero

Int and Rational can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFromU64(v uint64) Int
	IntFromU128(v U128) Int
	IntFromI128(v I128) Int
	IntFromBigInt(v *big.Int) Int
	IntFromLimbs(limbs []uint64, sign Sign) (Int, error)
	NewRational(num, den Int) (Rational, error)
	RationalFromInt(n Int) Rational

Multiplication is Karatsuba all the way down to single limbs. Division has
no long-division fallback: the quotient is read off a Newton-Raphson
reciprocal of the divisor, and the remainder is always x - q*y.

Rational never reduces by itself, so denominators grow with every operation.
Callers that need bounded representations should call Reduce.

*/
package bignum
