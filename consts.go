package bignum

import (
	"math/big"
)

const (
	// limbBits is W, the width of one limb.
	limbBits = 64

	// halfBits is the width of the halves a limb is split into when two
	// limbs are multiplied.
	halfBits = limbBits / 2

	maxLimb  = 1<<limbBits - 1
	halfMask = 1<<halfBits - 1

	// roundingLimb is half the limb range. A dropped guard limb at or above
	// this rounds the reciprocal up.
	roundingLimb = 1 << (limbBits - 1)

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	// wrapBigU128 is 1 << 128.
	wrapBigU128 = new(big.Int).Lsh(big1, 128)
)
