package bignum

// mulLimb returns the exact double-width product of two limbs.
//
// Each limb is split into half-width halves so that every partial product
// fits in one limb: (u1<<32 + u0)(v1<<32 + v0) is
// u1*v1<<64 + (u1*v0 + u0*v1)<<32 + u0*v0. Adapted from Warren, Hacker's
// Delight, p. 132.
func mulLimb(u, v uint64) U128 {
	var (
		u0 = u & halfMask
		v0 = v & halfMask
		t  = u0 * v0
		w0 = t & halfMask
		k  = t >> halfBits
	)

	u1 := u >> halfBits
	t = (u1 * v0) + k
	k = t & halfMask
	w1 := t >> halfBits

	v1 := v >> halfBits
	t = (u0 * v1) + k
	k = t >> halfBits

	return U128{
		hi: (u1 * v1) + w1 + k,
		lo: (t << halfBits) + w0,
	}
}

// addLimb adds x, y and an incoming carry. The limb sum and the carry
// addition can each overflow; both events are counted into the outgoing
// carry.
func addLimb(x, y, carry uint64) (sum, carryOut uint64) {
	sum = x + y
	if sum < x {
		carryOut++
	}
	next := sum + carry
	if next < sum {
		carryOut++
	}
	return next, carryOut
}

// subLimb subtracts y and an incoming borrow from x, counting both
// underflow events into the outgoing borrow.
func subLimb(x, y, borrow uint64) (diff, borrowOut uint64) {
	diff = x - y
	if diff > x {
		borrowOut++
	}
	next := diff - borrow
	if next > diff {
		borrowOut++
	}
	return next, borrowOut
}
