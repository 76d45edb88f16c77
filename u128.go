package bignum

import (
	"math/big"
)

// U128 is a fixed-width unsigned 128-bit integer. It exists as a source and
// target for Int conversions, and as the exact product of two limbs.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// limbs returns u as a trimmed magnitude.
func (u U128) limbs() nat {
	if u.hi == 0 {
		return nat{u.lo}
	}
	return nat{u.lo, u.hi}
}

func (u U128) IntoBigInt(b *big.Int) {
	b.SetBits(limbsToWords(b.Bits()[:0], u.limbs()))
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports wehether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}
