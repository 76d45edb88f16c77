package bignum

// nat is a magnitude: a non-negative integer held as limbs, least
// significant first. Kernel results are always trimmed: no leading zero
// limbs, except that zero itself is the single limb {0}. Kernel inputs may
// be untrimmed or empty; an empty nat reads as zero.
//
// Kernel functions never modify their operands and always return freshly
// allocated storage.
type nat []uint64

var (
	natZero = nat{0}
	natOne  = nat{1}
)

// trim strips leading zero limbs, keeping the canonical single-limb zero.
// The result shares storage with z.
func trim(z nat) nat {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nat{0}
	}
	return z[:n]
}

func (z nat) clone() nat {
	out := make(nat, len(z))
	copy(out, z)
	return out
}

func (z nat) isZero() bool {
	for _, l := range z {
		if l != 0 {
			return false
		}
	}
	return true
}

func (z nat) isOne() bool {
	t := trim(z)
	return len(t) == 1 && t[0] == 1
}

// natCmp compares x and y from the most significant limb down.
func natCmp(x, y nat) int {
	x, y = trim(x), trim(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] < y[i] {
			return -1
		} else if x[i] > y[i] {
			return 1
		}
	}
	return 0
}

func limbAt(z nat, i int) uint64 {
	if i < len(z) {
		return z[i]
	}
	return 0
}

// natAdd returns x + y. The result is at most one limb longer than the
// longer operand.
func natAdd(x, y nat) nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make(nat, n, n+1)

	var carry uint64
	for i := 0; i < n; i++ {
		z[i], carry = addLimb(limbAt(x, i), limbAt(y, i), carry)
		if carry > 1 {
			invariant("carry %d out of limb %d", carry, i)
		}
	}
	if carry > 0 {
		z = append(z, carry)
	}
	return trim(z)
}

// natSub returns |x - y| and whether x - y is negative.
//
// A borrow that survives the final limb leaves z holding the two's
// complement of the true difference; complement recovers the magnitude.
func natSub(x, y nat) (z nat, neg bool) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z = make(nat, n)

	var borrow uint64
	for i := 0; i < n; i++ {
		z[i], borrow = subLimb(limbAt(x, i), limbAt(y, i), borrow)
	}

	switch borrow {
	case 0:
		return trim(z), false
	case 1:
		return trim(complement(z)), true
	default:
		invariant("borrow %d out of final limb", borrow)
		return nil, false
	}
}

// complement negates z modulo 2^(W*len(z)). Low zero limbs cannot borrow
// and are kept; the first non-zero limb becomes MAX-limb+1 and every limb
// above it becomes MAX-limb. Applying complement twice is the identity.
func complement(z nat) nat {
	out := make(nat, len(z))
	i := 0
	for i < len(z) && z[i] == 0 {
		i++
	}
	if i == len(z) {
		return out
	}
	out[i] = maxLimb - z[i] + 1
	for i++; i < len(z); i++ {
		out[i] = maxLimb - z[i]
	}
	return out
}

// extend zero-extends x to n limbs. x is returned unchanged if it is
// already at least that long.
func extend(x nat, n int) nat {
	if len(x) >= n {
		return x
	}
	out := make(nat, n)
	copy(out, x)
	return out
}

// shiftUp multiplies x by 2^(W*n).
func shiftUp(x nat, n int) nat {
	if x.isZero() {
		return nat{0}
	}
	out := make(nat, n+len(x))
	copy(out[n:], x)
	return trim(out)
}

// shiftDown drops the n least significant limbs of x.
func shiftDown(x nat, n int) nat {
	if n >= len(x) {
		return nat{0}
	}
	return trim(x[n:].clone())
}
