package bignum

// Rational is an exact fraction of two Ints. It is never reduced
// automatically: every Add, Sub, Mul and Quo multiplies denominators, so
// repeated operations grow the representation. Use Reduce to bound it.
//
// The denominator is never zero. The zero value is ready to use and
// represents 0/1.
type Rational struct {
	num Int
	den Int // Sign Zero only in the zero value, where it reads as 1
}

var intOne = Int{mag: natOne, sign: Positive}

// NewRational creates num/den, or returns ErrDivisionByZero if den is zero.
func NewRational(num, den Int) (Rational, error) {
	if den.sign == Zero {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{num: num, den: den}, nil
}

// RationalFromInt creates n/1.
func RationalFromInt(n Int) Rational {
	return Rational{num: n, den: intOne}
}

func (r Rational) Num() Int { return r.num }

func (r Rational) Den() Int {
	if r.den.sign == Zero {
		return intOne
	}
	return r.den
}

func (r Rational) IsZero() bool { return r.num.sign == Zero }

// Sign combines the numerator and denominator signs; -1/-2 is Positive.
func (r Rational) Sign() Sign {
	return r.num.sign.Mul(r.Den().sign)
}

func (r Rational) Neg() Rational {
	return Rational{num: r.num.Neg(), den: r.Den()}
}

func (r Rational) Abs() Rational {
	return Rational{num: r.num.Abs(), den: r.Den().Abs()}
}

// Inv returns den/num, or ErrDivisionByZero if r is zero.
func (r Rational) Inv() (Rational, error) {
	return NewRational(r.Den(), r.num)
}

// Add returns (a*d + c*b)/(b*d) for a/b + c/d.
func (r Rational) Add(o Rational) Rational {
	b, d := r.Den(), o.Den()
	return Rational{
		num: r.num.Mul(d).Add(o.num.Mul(b)),
		den: b.Mul(d),
	}
}

// Sub returns (a*d - c*b)/(b*d) for a/b - c/d.
func (r Rational) Sub(o Rational) Rational {
	b, d := r.Den(), o.Den()
	return Rational{
		num: r.num.Mul(d).Sub(o.num.Mul(b)),
		den: b.Mul(d),
	}
}

func (r Rational) Mul(o Rational) Rational {
	return Rational{
		num: r.num.Mul(o.num),
		den: r.Den().Mul(o.Den()),
	}
}

// Quo returns (a*d)/(b*c) for (a/b)/(c/d), or ErrDivisionByZero if o is
// zero.
func (r Rational) Quo(o Rational) (Rational, error) {
	if o.num.sign == Zero {
		return Rational{}, ErrDivisionByZero
	}
	return Rational{
		num: r.num.Mul(o.Den()),
		den: r.Den().Mul(o.num),
	}, nil
}

// Cmp compares the values of r and o, whatever their representations:
//
//	-1 if r <  o
//	 0 if r == o
//	+1 if r >  o
//
func (r Rational) Cmp(o Rational) int {
	return int(r.Sub(o).Sign())
}

// Equal reports whether r and o have the same value; 1/2 equals 2/4.
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

func (r Rational) GreaterThan(o Rational) bool { return r.Cmp(o) > 0 }
func (r Rational) LessThan(o Rational) bool    { return r.Cmp(o) < 0 }
