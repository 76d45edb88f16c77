package bignum

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of at most limbs limbs
// from an external source.
func RandInt(source RandSource, limbs int) Int {
	if limbs <= 0 {
		return Int{}
	}
	mag := make(nat, limbs)
	for i := range mag {
		mag[i] = source.Uint64()
	}
	return newInt(mag, Positive)
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	return a.Sub(b).Abs()
}

func LargerInt(a, b Int) Int {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
