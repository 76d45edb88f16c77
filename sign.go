package bignum

// Sign is the three-valued sign of an Int. Zero is a sign of its own, so a
// zero Int cannot be negative.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Zero:
		return "0"
	case Positive:
		return "+"
	default:
		return "?"
	}
}

// Neg swaps Positive and Negative and leaves Zero alone.
func (s Sign) Neg() Sign {
	switch s {
	case Positive:
		return Negative
	case Negative:
		return Positive
	default:
		return Zero
	}
}

// Mul returns the sign of a product. Zero absorbs.
func (s Sign) Mul(n Sign) Sign {
	switch {
	case s == Zero || n == Zero:
		return Zero
	case s == n:
		return Positive
	default:
		return Negative
	}
}

// Quo returns the sign of a quotient. Callers must reject a Zero divisor
// before getting here; a Zero divisor panics with an *InvariantViolation.
func (s Sign) Quo(by Sign) Sign {
	if by == Zero {
		invariant("sign division by zero")
	}
	return s.Mul(by)
}
