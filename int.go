package bignum

// Int is an arbitrary-precision signed integer, held as a magnitude and a
// Sign.
//
// Int is a value type; all operations return new values and never modify
// the storage of their operands. The zero value is ready to use and
// represents 0.
type Int struct {
	mag  nat // trimmed; nil when sign == Zero
	sign Sign
}

// newInt pairs a kernel result with a sign. A zero magnitude always
// becomes Sign Zero; a non-zero magnitude with Sign Zero is a defect.
func newInt(mag nat, sign Sign) Int {
	if mag.isZero() {
		return Int{}
	}
	if sign == Zero {
		invariant("non-zero magnitude with zero sign")
	}
	return Int{mag: trim(mag), sign: sign}
}

// IntFromLimbs creates an Int from a magnitude, given as limbs least
// significant first, and a Sign. The limbs are copied. A zero magnitude
// must be paired with Zero and a non-zero magnitude with Negative or
// Positive, otherwise ErrSignMismatch is returned.
func IntFromLimbs(limbs []uint64, sign Sign) (Int, error) {
	mag := nat(limbs)
	switch {
	case sign != Negative && sign != Zero && sign != Positive:
		return Int{}, ErrSignMismatch
	case mag.isZero() != (sign == Zero):
		return Int{}, ErrSignMismatch
	}
	return newInt(mag.clone(), sign), nil
}

func (i Int) magnitude() nat {
	if i.mag == nil {
		return natZero
	}
	return i.mag
}

func (i Int) Sign() Sign   { return i.sign }
func (i Int) IsZero() bool { return i.sign == Zero }

// Limbs returns a copy of the magnitude of i, least significant limb first.
// Zero is returned as a single zero limb.
func (i Int) Limbs() []uint64 {
	return i.magnitude().clone()
}

func (i Int) Neg() Int {
	return Int{mag: i.mag, sign: i.sign.Neg()}
}

func (i Int) Abs() Int {
	if i.sign == Negative {
		return Int{mag: i.mag, sign: Positive}
	}
	return i
}

func (i Int) Add(n Int) Int {
	switch {
	case i.sign == Zero:
		return n
	case n.sign == Zero:
		return i
	case i.sign == n.sign:
		return newInt(natAdd(i.mag, n.mag), i.sign)
	}

	// Opposite signs: take the negative side away from the positive side.
	pos, neg := i, n
	if i.sign == Negative {
		pos, neg = n, i
	}
	diff, isNeg := natSub(pos.mag, neg.mag)
	if isNeg {
		return newInt(diff, Negative)
	}
	return newInt(diff, Positive)
}

func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Mul(n Int) Int {
	sign := i.sign.Mul(n.sign)
	if sign == Zero {
		return Int{}
	}
	return newInt(natMul(i.mag, n.mag), sign)
}

// QuoRem returns the quotient q and remainder r for n != 0. If n == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.sign == Zero {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q = i.quo(by)
	r = i.Sub(q.Mul(by))
	return q, r, nil
}

// Quo returns the quotient x/y truncated towards zero; see QuoRem.
func (i Int) Quo(by Int) (q Int, err error) {
	if by.sign == Zero {
		return Int{}, ErrDivisionByZero
	}
	return i.quo(by), nil
}

// Rem returns the remainder of x%y, which takes the sign of x; see QuoRem.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

func (i Int) quo(by Int) Int {
	sign := i.sign.Quo(by.sign)
	if sign == Zero {
		return Int{}
	}
	return newInt(quoNat(i.mag, by.mag), sign)
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// The result is the sign of i - n.
func (i Int) Cmp(n Int) int {
	return int(i.Sub(n).sign)
}

func (i Int) Equal(n Int) bool {
	return i.sign == n.sign && natCmp(i.magnitude(), n.magnitude()) == 0
}

func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
