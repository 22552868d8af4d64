//go:build unit
// +build unit

package cryptography

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theeman05/keypost/internal/pkg/testutil"
)

func setupPrimeGenerator(t *testing.T) *PrimeGenerator {
	t.Helper()
	source := NewRandomIntegerSource()
	return NewPrimeGenerator(source, NewPrimalityTester(source), testutil.SetupTestLogger(t))
}

func TestPrimeGenerator_GenerateProbablePrime(t *testing.T) {
	generator := setupPrimeGenerator(t)
	tester := NewPrimalityTester(NewRandomIntegerSource())

	for _, byteLength := range []int{1, 2, 8, 16} {
		t.Run(fmt.Sprintf("%dBytes", byteLength), func(t *testing.T) {
			prime, err := generator.GenerateProbablePrime(byteLength)
			require.NoError(t, err)

			assert.True(t, prime.BitLen() <= byteLength*8, "prime exceeds %d bytes", byteLength)
			assert.True(t, tester.IsProbablyPrime(prime, DefaultMillerRabinRounds))
			if prime.Int64() != 2 {
				assert.Equal(t, uint(1), prime.Bit(0), "candidate was not forced odd")
			}
		})
	}
}

func TestPrimeGenerator_InvalidByteLength(t *testing.T) {
	generator := setupPrimeGenerator(t)

	_, err := generator.GenerateProbablePrime(0)
	assert.Error(t, err)

	_, err = generator.GenerateProbablePrime(-3)
	assert.Error(t, err)
}
