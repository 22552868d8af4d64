package cryptography

import "math/big"

// DefaultMillerRabinRounds bounds the false-positive rate of a primality
// check at 4^-10.
const DefaultMillerRabinRounds = 10

// trialDivisionBound is the largest odd divisor tried before falling back
// to Miller-Rabin.
const trialDivisionBound = 1000

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// PrimalityTester runs the Miller-Rabin probabilistic primality test with
// random witnesses.
type PrimalityTester struct {
	source *RandomIntegerSource
}

// NewPrimalityTester creates a tester drawing witnesses from source.
func NewPrimalityTester(source *RandomIntegerSource) *PrimalityTester {
	return &PrimalityTester{source: source}
}

// IsProbablyPrime reports whether value is prime with false-positive rate
// at most 4^-rounds. A true result means "probably prime", never certainty.
// An entropy failure while drawing a witness is reported as composite.
func (t *PrimalityTester) IsProbablyPrime(value *big.Int, rounds int) bool {
	if value.Cmp(two) < 0 {
		return false
	}
	if value.Cmp(two) == 0 || value.Cmp(three) == 0 {
		return true
	}
	if value.Bit(0) == 0 {
		return false
	}

	// Cheap rejection of small factors. The divisor stays strictly below
	// value so small primes are not rejected for dividing themselves.
	divisor := big.NewInt(3)
	remainder := new(big.Int)
	for divisor.Int64() <= trialDivisionBound && divisor.Cmp(value) < 0 {
		if remainder.Mod(value, divisor).Sign() == 0 {
			return false
		}
		divisor.Add(divisor, two)
	}

	// Write value-1 = d * 2^r with d odd.
	valueMinusOne := new(big.Int).Sub(value, one)
	d := new(big.Int).Set(valueMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	valueMinusTwo := new(big.Int).Sub(value, two)
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		witness, err := t.source.IntInRange(two, valueMinusTwo)
		if err != nil {
			return false
		}

		x.Exp(witness, d, value)
		if x.Cmp(one) == 0 || x.Cmp(valueMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, value)
			if x.Cmp(one) == 0 {
				// Nontrivial square root of 1 found.
				return false
			}
			if x.Cmp(valueMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}
