package fuzz

import (
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"strings"

	bignum "github.com/shabbyrobe/go-bignum"
)

// Op names one differential check. Every Op builds random operands, runs the
// operation through bignum and through math/big, and compares.
type Op string

const (
	OpAbs    Op = "abs"
	OpAdd    Op = "add"
	OpCmp    Op = "cmp"
	OpGCD    Op = "gcd"
	OpMul    Op = "mul"
	OpNeg    Op = "neg"
	OpPow    Op = "pow"
	OpQuo    Op = "quo"
	OpQuoRem Op = "quorem"
	OpRatAdd Op = "ratadd"
	OpRatCmp Op = "ratcmp"
	OpRatMul Op = "ratmul"
	OpRatQuo Op = "ratquo"
	OpRatSub Op = "ratsub"
	OpRecip  Op = "recip"
	OpRem    Op = "rem"
	OpSub    Op = "sub"
)

// AllOps is the default op set. Please keep it alphabetised.
var AllOps = []Op{
	OpAbs,
	OpAdd,
	OpCmp,
	OpGCD,
	OpMul,
	OpNeg,
	OpPow,
	OpQuo,
	OpQuoRem,
	OpRatAdd,
	OpRatCmp,
	OpRatMul,
	OpRatQuo,
	OpRatSub,
	OpRecip,
	OpRem,
	OpSub,
}

// ParseOps parses op names; an empty list means AllOps. Duplicates are
// dropped and the result is sorted.
func ParseOps(names []string) ([]Op, error) {
	if len(names) == 0 {
		return append([]Op(nil), AllOps...), nil
	}

	known := make(map[Op]bool, len(AllOps))
	for _, op := range AllOps {
		known[op] = true
	}

	seen := make(map[Op]bool, len(names))
	var out []Op
	for _, name := range names {
		op := Op(strings.ToLower(strings.TrimSpace(name)))
		if !known[op] {
			return nil, fmt.Errorf("fuzz: unknown op %q", name)
		}
		if !seen[op] {
			seen[op] = true
			out = append(out, op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// gcdMaxLimbs caps GCD operands; every Euclid step is a full division.
const gcdMaxLimbs = 2

// maxPowExp is the exclusive upper bound for Pow exponents.
const maxPowExp = 12

type checker struct {
	rng      *rand.Rand
	maxLimbs int
	operands []*big.Int
}

func (c *checker) reset() { c.operands = c.operands[:0] }

// operandStrings renders the operands drawn for the last check.
func (c *checker) operandStrings() []string {
	out := make([]string, len(c.operands))
	for i, o := range c.operands {
		out[i] = o.String()
	}
	return out
}

// bigInt draws a signed operand of up to maxLimbs limbs. Limbs are skewed
// towards 0 and all-ones so carries, borrows and zero runs are common.
func (c *checker) bigInt(maxLimbs int) *big.Int {
	n := c.rng.Intn(maxLimbs + 1)
	v := new(big.Int)
	limb := new(big.Int)
	for i := 0; i < n; i++ {
		var l uint64
		switch c.rng.Intn(8) {
		case 0:
			l = 0
		case 1:
			l = ^uint64(0)
		case 2:
			l = ^uint64(0) - uint64(c.rng.Intn(4))
		default:
			l = c.rng.Uint64()
		}
		v.Lsh(v, 64)
		v.Or(v, limb.SetUint64(l))
	}
	if c.rng.Intn(2) == 0 {
		v.Neg(v)
	}
	c.operands = append(c.operands, v)
	return v
}

func (c *checker) nonZero(maxLimbs int) *big.Int {
	for {
		v := c.bigInt(maxLimbs)
		if v.Sign() != 0 {
			return v
		}
		c.operands = c.operands[:len(c.operands)-1]
	}
}

func (c *checker) uintn(n int) uint {
	v := uint(c.rng.Intn(n))
	c.operands = append(c.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

func checkInt(op Op, got bignum.Int, want *big.Int) error {
	if g := got.AsBigInt(); g.Cmp(want) != 0 {
		return fmt.Errorf("%s: bignum(%s) != big(%s)", op, g, want)
	}
	return nil
}

func checkRat(op Op, got bignum.Rational, want *big.Rat) error {
	if g := got.AsBigRat(); g.Cmp(want) != 0 {
		return fmt.Errorf("%s: bignum(%s) != big(%s)", op, g, want)
	}
	return nil
}

func checkCmp(op Op, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: bignum(%d) != big(%d)", op, got, want)
	}
	return nil
}

// check runs one iteration of op.
func (c *checker) check(op Op) error {
	switch op {
	case OpAbs:
		b := c.bigInt(c.maxLimbs)
		return checkInt(op, bignum.IntFromBigInt(b).Abs(), new(big.Int).Abs(b))

	case OpNeg:
		b := c.bigInt(c.maxLimbs)
		return checkInt(op, bignum.IntFromBigInt(b).Neg(), new(big.Int).Neg(b))

	case OpAdd, OpSub, OpMul, OpCmp:
		b1, b2 := c.bigInt(c.maxLimbs), c.bigInt(c.maxLimbs)
		i1, i2 := bignum.IntFromBigInt(b1), bignum.IntFromBigInt(b2)
		switch op {
		case OpAdd:
			return checkInt(op, i1.Add(i2), new(big.Int).Add(b1, b2))
		case OpSub:
			return checkInt(op, i1.Sub(i2), new(big.Int).Sub(b1, b2))
		case OpMul:
			return checkInt(op, i1.Mul(i2), new(big.Int).Mul(b1, b2))
		default:
			return checkCmp(op, i1.Cmp(i2), b1.Cmp(b2))
		}

	case OpQuo, OpRem, OpQuoRem:
		b1, b2 := c.bigInt(c.maxLimbs), c.nonZero(c.maxLimbs)
		i1, i2 := bignum.IntFromBigInt(b1), bignum.IntFromBigInt(b2)
		q, r, err := i1.QuoRem(i2)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		bq, br := new(big.Int).QuoRem(b1, b2, new(big.Int))
		if op != OpRem {
			if err := checkInt(op, q, bq); err != nil {
				return err
			}
		}
		if op != OpQuo {
			return checkInt(op, r, br)
		}
		return nil

	case OpGCD:
		b1, b2 := c.bigInt(gcdMaxLimbs), c.bigInt(gcdMaxLimbs)
		want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(b1), new(big.Int).Abs(b2))
		return checkInt(op, bignum.GCD(bignum.IntFromBigInt(b1), bignum.IntFromBigInt(b2)), want)

	case OpPow:
		b := c.bigInt(c.maxLimbs)
		exp := c.uintn(maxPowExp)
		want := new(big.Int).Exp(b, new(big.Int).SetUint64(uint64(exp)), nil)
		return checkInt(op, bignum.Pow(bignum.IntFromBigInt(b), exp), want)

	case OpRecip:
		b := c.nonZero(c.maxLimbs)
		rc, err := bignum.NewReciprocal(bignum.IntFromBigInt(b))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return CheckReciprocal(rc, b)

	case OpRatAdd, OpRatSub, OpRatMul, OpRatQuo, OpRatCmp:
		r1, b1, err := c.rat()
		if err != nil {
			return err
		}
		r2, b2, err := c.rat()
		if err != nil {
			return err
		}
		switch op {
		case OpRatAdd:
			return checkRat(op, r1.Add(r2), new(big.Rat).Add(b1, b2))
		case OpRatSub:
			return checkRat(op, r1.Sub(r2), new(big.Rat).Sub(b1, b2))
		case OpRatMul:
			return checkRat(op, r1.Mul(r2), new(big.Rat).Mul(b1, b2))
		case OpRatCmp:
			return checkCmp(op, r1.Cmp(r2), b1.Cmp(b2))
		default:
			q, err := r1.Quo(r2)
			if b2.Sign() == 0 {
				if err != bignum.ErrDivisionByZero {
					return fmt.Errorf("%s: expected division by zero, found %v", op, err)
				}
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return checkRat(op, q, new(big.Rat).Quo(b1, b2))
		}

	default:
		return fmt.Errorf("fuzz: unsupported op %q", op)
	}
}

func (c *checker) rat() (bignum.Rational, *big.Rat, error) {
	num, den := c.bigInt(c.maxLimbs), c.nonZero(c.maxLimbs)
	r, err := bignum.NewRational(bignum.IntFromBigInt(num), bignum.IntFromBigInt(den))
	if err != nil {
		return bignum.Rational{}, nil, err
	}
	return r, new(big.Rat).SetFrac(num, den), nil
}

// CheckReciprocal verifies rc is within one unit in the last limb of 1/|b|:
// |mantissa*|b| - 2^(-64*exp)| <= |b|.
func CheckReciprocal(rc bignum.Reciprocal, b *big.Int) error {
	if rc.Exp() > 0 {
		return fmt.Errorf("recip: exponent %d above zero", rc.Exp())
	}
	b = new(big.Int).Abs(b)

	m := new(big.Int)
	limbs := rc.Mantissa()
	for i := len(limbs) - 1; i >= 0; i-- {
		m.Lsh(m, 64)
		m.Or(m, new(big.Int).SetUint64(limbs[i]))
	}

	scale := new(big.Int).Lsh(big.NewInt(1), uint(-rc.Exp())*64)
	diff := new(big.Int).Mul(m, b)
	diff.Sub(diff, scale).Abs(diff)
	if diff.Cmp(b) > 0 {
		return fmt.Errorf("recip: mantissa %s * B^%d of %s is off by %s/%s units", m, rc.Exp(), b, diff, b)
	}
	return nil
}
