package bignum

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm over QuoRem. GCD(x, 0) is |x|, and GCD(0, 0) is 0.
func GCD(a, b Int) Int {
	x, y := LargerInt(a.Abs(), b.Abs()), SmallerInt(a.Abs(), b.Abs())
	for !y.IsZero() {
		_, r, err := x.QuoRem(y)
		if err != nil {
			panic(err) // y is non-zero
		}
		x, y = y, r
	}
	return x
}

func (i Int) IsEven() bool { return i.magnitude()[0]&1 == 0 }
func (i Int) IsOdd() bool  { return i.magnitude()[0]&1 == 1 }

// Pow returns x**exp by repeated squaring. Pow(x, 0) is 1, including for
// x == 0.
func Pow(x Int, exp uint) Int {
	out := intOne
	for exp > 0 {
		if exp&1 == 1 {
			out = out.Mul(x)
		}
		exp >>= 1
		if exp > 0 {
			x = x.Mul(x)
		}
	}
	return out
}

// Reduce divides the numerator and denominator of r by their greatest
// common divisor and makes the denominator positive. Arithmetic on
// Rational never does this by itself.
func (r Rational) Reduce() Rational {
	num, den := r.num, r.Den()
	if den.sign == Negative {
		num, den = num.Neg(), den.Neg()
	}
	if num.IsZero() {
		return Rational{num: Int{}, den: intOne}
	}
	g := GCD(num, den)
	if g.Equal(intOne) {
		return Rational{num: num, den: den}
	}
	num, _ = num.Quo(g)
	den, _ = den.Quo(g)
	return Rational{num: num, den: den}
}
