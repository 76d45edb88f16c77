package bignum

// Reciprocal is a fixed-point approximation of 1/|x|, worth
// Mantissa * 2^(W*Exp) with W the limb width. Exp is never positive.
type Reciprocal struct {
	mant nat
	exp  int
}

// NewReciprocal approximates 1/|x| to len(x)+1 working limbs; the result
// carries len(x) limbs after rounding off the guard limb. It returns
// ErrDivisionByZero if x is zero.
func NewReciprocal(x Int) (Reciprocal, error) {
	if x.sign == Zero {
		return Reciprocal{}, ErrDivisionByZero
	}
	mant, exp := reciprocal(x.mag, len(x.mag)+1)
	return Reciprocal{mant: mant, exp: exp}, nil
}

// Mantissa returns a copy of the mantissa limbs, least significant first.
func (r Reciprocal) Mantissa() []uint64 { return r.mant.clone() }

// Exp returns the base-2^W exponent of the mantissa.
func (r Reciprocal) Exp() int { return r.exp }

// reciprocal runs the Newton-Raphson iteration x' = x(2 - b*x) for 1/b,
// keeping at most prec limbs of mantissa (one of which is a guard limb),
// until the truncated estimate stops changing.
//
// The seed 1 * 2^(-W*n), n = len(b), sits below 1/b. Every step stays at
// or below 1/b and never decreases, so the estimate climbs to a fixed point
// on the truncation grid.
func reciprocal(b nat, prec int) (mant nat, exp int) {
	b = trim(b)
	if b.isZero() {
		invariant("reciprocal of zero")
	}
	n := len(b)
	if prec < n+1 {
		prec = n + 1
	}

	mant, exp = nat{1}, -n
	for {
		if exp > 0 {
			invariant("reciprocal exponent %d above zero", exp)
		}

		// b*x and 2 share the scale 2^(W*exp).
		bx := natMul(b, mant)
		two := shiftUp(nat{2}, -exp)
		diff, neg := natSub(two, bx)
		if neg {
			invariant("reciprocal estimate above 2/b")
		}

		next, nextExp := natMul(diff, mant), exp+exp
		if excess := len(next) - prec; excess > 0 {
			next = shiftDown(next, excess)
			nextExp += excess
		}

		if nextExp == exp && natCmp(next, mant) == 0 {
			break
		}
		mant, exp = next, nextExp
	}

	// Round to nearest on the guard limb, then drop it.
	if mant[0] >= roundingLimb {
		mant = natAdd(mant, nat{0, 1})
	}
	mant = shiftDown(mant, 1)
	exp++

	if exp > 0 {
		invariant("rounded reciprocal exponent %d above zero", exp)
	}
	return mant, exp
}

// quoNat returns floor(a/b) for b != 0.
//
// The estimate comes from a reciprocal of b carried to enough limbs that
// the product a*(1/b) is within a couple of units of the true quotient;
// the estimate is then stepped until a - q*b lands in [0, b).
func quoNat(a, b nat) nat {
	a, b = trim(a), trim(b)
	if natCmp(a, b) < 0 {
		return nat{0}
	}

	prec := len(b) + 1
	if p := len(a) - len(b) + 3; p > prec {
		prec = p
	}
	mant, exp := reciprocal(b, prec)
	q := shiftDown(natMul(a, mant), -exp)

	for {
		r, neg := natSub(a, natMul(q, b))
		if neg {
			q, _ = natSub(q, natOne)
		} else if natCmp(r, b) >= 0 {
			q = natAdd(q, natOne)
		} else {
			return q
		}
	}
}
