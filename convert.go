package bignum

import (
	"math/big"

	"fortio.org/safecast"
)

func IntFrom64(v int64) Int {
	switch {
	case v > 0:
		return Int{mag: nat{uint64(v)}, sign: Positive}
	case v < 0:
		// -(v+1) cannot overflow, even for math.MinInt64.
		return Int{mag: nat{uint64(-(v + 1)) + 1}, sign: Negative}
	}
	return Int{}
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) Int {
	if v == 0 {
		return Int{}
	}
	return Int{mag: nat{v}, sign: Positive}
}

func IntFromU32(v uint32) Int { return IntFromU64(uint64(v)) }
func IntFromU16(v uint16) Int { return IntFromU64(uint64(v)) }
func IntFromU8(v uint8) Int   { return IntFromU64(uint64(v)) }

func IntFromU128(v U128) Int {
	return newInt(v.limbs(), Positive)
}

func IntFromI128(v I128) Int {
	switch v.Sign() {
	case 1:
		return newInt(v.AsU128().limbs(), Positive)
	case -1:
		return newInt(v.AbsU128().limbs(), Negative)
	}
	return Int{}
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// exact.
func IntFromBigInt(v *big.Int) Int {
	mag := wordsToLimbs(v.Bits())
	switch v.Sign() {
	case 1:
		return newInt(mag, Positive)
	case -1:
		return newInt(mag, Negative)
	}
	return Int{}
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	b.SetBits(limbsToWords(b.Bits()[:0], i.magnitude()))
	if i.sign == Negative {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	var b big.Int
	i.IntoBigInt(&b)
	return &b
}

// String formats i in base 10.
func (i Int) String() string {
	return i.AsBigInt().String()
}

// String formats r as num/den without reducing it.
func (r Rational) String() string {
	return r.Num().String() + "/" + r.Den().String()
}

// AsInt64 returns i as an int64, and whether it fit.
func (i Int) AsInt64() (int64, bool) {
	mag := i.magnitude()
	if len(mag) > 1 {
		return 0, false
	}
	switch i.sign {
	case Positive:
		v, err := safecast.Conv[int64](mag[0])
		return v, err == nil
	case Negative:
		if mag[0] == 1<<63 {
			return minInt64, true
		}
		v, err := safecast.Conv[int64](mag[0])
		return -v, err == nil
	}
	return 0, true
}

// AsU128 returns i as a U128, and whether it fit. Negative values never fit.
func (i Int) AsU128() (U128, bool) {
	mag := i.magnitude()
	if i.sign == Negative || len(mag) > 2 {
		return U128{}, false
	}
	return U128{lo: limbAt(mag, 0), hi: limbAt(mag, 1)}, true
}

// AsI128 returns i as an I128, and whether it fit.
func (i Int) AsI128() (I128, bool) {
	u, ok := i.Abs().AsU128()
	if !ok {
		return I128{}, false
	}
	if i.sign == Negative {
		if u == MinI128.AsU128() {
			return MinI128, true
		}
		return u.AsI128().Neg(), u.IsI128()
	}
	return u.AsI128(), u.IsI128()
}

// RationalFromBigRat creates a Rational with the same numerator and
// denominator as v.
func RationalFromBigRat(v *big.Rat) Rational {
	return Rational{num: IntFromBigInt(v.Num()), den: IntFromBigInt(v.Denom())}
}

// AsBigRat allocates a new big.Rat with the value of r. big.Rat always
// reduces, so the representation of r is not kept.
func (r Rational) AsBigRat() *big.Rat {
	return new(big.Rat).SetFrac(r.num.AsBigInt(), r.Den().AsBigInt())
}

func limbsToWords(dst []big.Word, limbs nat) []big.Word {
	switch intSize {
	case 64:
		for _, l := range limbs {
			dst = append(dst, big.Word(l))
		}
	case 32:
		for _, l := range limbs {
			dst = append(dst, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}
	default:
		panic("bignum: unsupported bit size")
	}
	return dst
}

func wordsToLimbs(words []big.Word) nat {
	switch intSize {
	case 64:
		out := make(nat, len(words))
		for i, w := range words {
			out[i] = uint64(w)
		}
		return trim(out)
	case 32:
		out := make(nat, (len(words)+1)/2)
		for i, w := range words {
			out[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return trim(out)
	default:
		panic("bignum: unsupported bit size")
	}
}
