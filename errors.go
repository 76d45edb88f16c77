package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by any operation whose divisor (or, for
	// a Rational, whose denominator) has Sign Zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrSignMismatch is returned when constructing an Int from a magnitude
	// and a Sign that disagree about whether the value is zero.
	ErrSignMismatch = errors.New("bignum: sign does not match magnitude")
)

// InvariantViolation is the panic value used when the arithmetic kernel
// detects an internal defect. It is never returned as an error; there is no
// input that should produce one.
type InvariantViolation struct {
	Msg string
}

func (iv *InvariantViolation) Error() string {
	return "bignum: invariant violated: " + iv.Msg
}

func invariant(format string, args ...interface{}) {
	panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}
