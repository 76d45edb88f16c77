package bignum

// natMul returns x * y using recursive Karatsuba multiplication.
//
// Operands of unequal length are zero-extended to the same length. An
// operand of length n > 1 is split at m = n/2 into (low, high) and
//
//	x*y = ll + (ll + hh + (xh-xl)*(yl-yh))<<(W*m) + hh<<(W*2m)
//
// where ll = xl*yl and hh = xh*yh. The two differences are taken in
// opposite orders, so their product is subtracted from ll+hh when exactly
// one of them is negative, and added otherwise.
func natMul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 || x.isZero() || y.isZero() {
		return nat{0}
	}
	if x.isOne() {
		return trim(y.clone())
	}
	if y.isOne() {
		return trim(x.clone())
	}

	if len(x) < len(y) {
		x = extend(x, len(y))
	} else if len(y) < len(x) {
		y = extend(y, len(x))
	}

	n := len(x)
	if n == 1 {
		return mulLimb(x[0], y[0]).limbs()
	}

	m := n / 2
	if m == 0 || n-m == 0 {
		invariant("zero-length split of %d limbs", n)
	}
	xl, xh := x[:m], x[m:]
	yl, yh := y[:m], y[m:]

	ll := natMul(xl, yl)
	hh := natMul(xh, yh)

	dx, dxNeg := natSub(xh, xl)
	dy, dyNeg := natSub(yl, yh)
	prod := natMul(dx, dy)

	middle := natAdd(ll, hh)
	if dxNeg != dyNeg {
		var neg bool
		middle, neg = natSub(middle, prod)
		if neg {
			invariant("negative karatsuba middle term at %d limbs", n)
		}
	} else {
		middle = natAdd(middle, prod)
	}

	z := natAdd(ll, shiftUp(middle, m))
	return natAdd(z, shiftUp(hh, 2*m))
}

// natMulBasic is the schoolbook O(n*m) product, kept as the reference the
// Karatsuba implementation is checked against.
func natMulBasic(x, y nat) nat {
	x, y = trim(x), trim(y)
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			p := mulLimb(xi, yj)
			var c1, c2 uint64
			z[i+j], c1 = addLimb(z[i+j], p.lo, 0)
			z[i+j], c2 = addLimb(z[i+j], carry, 0)
			carry = p.hi + c1 + c2
		}
		for k := i + len(y); carry != 0; k++ {
			z[k], carry = addLimb(z[k], carry, 0)
		}
	}
	return trim(z)
}
