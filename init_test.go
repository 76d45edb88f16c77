package bignum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzMaxLimbs   = fuzzDefaultMaxLimbs
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "bignum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzMaxLimbs, "bignum.fuzzlimbs", fuzzMaxLimbs, "Maximum number of limbs in a fuzzed operand")
	flag.Int64Var(&fuzzSeed, "bignum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bignum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max limbs: ", fuzzMaxLimbs)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(s)
	}
	return v
}

// ints parses s with math/big, so it accepts any base prefix big.Int does.
func ints(s string) Int { return IntFromBigInt(bigs(s)) }

var i64 = IntFrom64

func rats(num, den int64) Rational {
	r, err := NewRational(i64(num), i64(den))
	if err != nil {
		panic(err)
	}
	return r
}

func bigFromNat(z nat) *big.Int {
	return new(big.Int).SetBits(limbsToWords(nil, z))
}

func natFromBig(b *big.Int) nat {
	if b.Sign() < 0 {
		panic(fmt.Errorf("bignum: negative %s in natFromBig", b))
	}
	return wordsToLimbs(b.Bits())
}

// randNat returns an untrimmed nat of exactly limbs limbs. Limb values are
// skewed towards 0 and maxLimb so carries and borrows actually happen.
func randNat(rng *rand.Rand, limbs int) nat {
	if rng == nil {
		rng = globalRNG
	}
	z := make(nat, limbs)
	for i := range z {
		switch rng.Intn(8) {
		case 0:
			z[i] = 0
		case 1:
			z[i] = maxLimb
		case 2:
			z[i] = maxLimb - uint64(rng.Intn(4))
		default:
			z[i] = rng.Uint64()
		}
	}
	return z
}

// randInt returns a random Int of between 0 and maxLimbs limbs with a
// random sign.
func randInt(rng *rand.Rand, maxLimbs int) Int {
	if rng == nil {
		rng = globalRNG
	}
	mag := randNat(rng, rng.Intn(maxLimbs+1))
	if rng.Intn(2) == 0 {
		return newInt(mag, Negative)
	}
	return newInt(mag, Positive)
}

func randNonZeroInt(rng *rand.Rand, maxLimbs int) Int {
	for {
		if v := randInt(rng, maxLimbs); !v.IsZero() {
			return v
		}
	}
}

func checkIntBig(i Int, b *big.Int) error {
	if i.AsBigInt().Cmp(b) != 0 {
		return fmt.Errorf("int(%s) != big(%s)", i.AsBigInt(), b)
	}
	if (i.Sign() == Zero) != (b.Sign() == 0) {
		return fmt.Errorf("int sign %s disagrees with big(%s)", i.Sign(), b)
	}
	return nil
}
