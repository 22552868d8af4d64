package cryptography

import (
	"fmt"
	"math/big"

	"github.com/theeman05/keypost/internal/pkg/logger"
)

// candidateBatchSize is how many random candidates are tested before the
// search loops around.
const candidateBatchSize = 500

// PrimeGenerator searches random odd integers of a target byte length for
// a probable prime.
type PrimeGenerator struct {
	source *RandomIntegerSource
	tester *PrimalityTester
	logger logger.Logger
}

// NewPrimeGenerator creates a generator sampling from source and testing
// with tester.
func NewPrimeGenerator(source *RandomIntegerSource, tester *PrimalityTester, logger logger.Logger) *PrimeGenerator {
	return &PrimeGenerator{
		source: source,
		tester: tester,
		logger: logger,
	}
}

// GenerateProbablePrime returns the first probable prime found among random
// candidates of byteLength bytes. Candidates are forced odd unless the draw
// is exactly 2. The search has no retry bound: primes of reasonable length
// are dense enough that a batch rarely exhausts, but a pathologically small
// byteLength can loop indefinitely.
func (g *PrimeGenerator) GenerateProbablePrime(byteLength int) (*big.Int, error) {
	if byteLength < 1 {
		return nil, fmt.Errorf("prime byte length must be positive, got %d", byteLength)
	}

	for {
		for i := 0; i < candidateBatchSize; i++ {
			raw, err := g.source.Bytes(byteLength)
			if err != nil {
				return nil, err
			}

			candidate := new(big.Int).SetBytes(raw)
			if candidate.Cmp(two) != 0 {
				candidate.SetBit(candidate, 0, 1)
			}

			if g.tester.IsProbablyPrime(candidate, DefaultMillerRabinRounds) {
				return candidate, nil
			}
		}
		g.logger.Debug("prime search exhausted a batch of ", candidateBatchSize, " candidates at ", byteLength, " bytes, continuing")
	}
}
