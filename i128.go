package bignum

import (
	"math/big"
)

// I128 is a fixed-width two's complement signed 128-bit integer, used as a
// conversion source and target for Int.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit = 0x8000000000000000
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports wehether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Neg wraps: -MinI128 == MinI128.
func (i I128) Neg() (v I128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}
	v.hi = ^i.hi
	v.lo = (^i.lo) + 1
	if v.lo == 0 { // handle overflow
		v.hi++
	}
	return v
}

// AbsU128 returns the magnitude of i. Unlike Neg, it cannot overflow: the
// magnitude of MinI128 is representable as a U128.
func (i I128) AbsU128() U128 {
	if i.hi&signBit != 0 {
		return i.Neg().AsU128()
	}
	return i.AsU128()
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = i.AbsU128().AsBigInt()
	if i.hi&signBit != 0 {
		b.Neg(b)
	}
	return b
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}
