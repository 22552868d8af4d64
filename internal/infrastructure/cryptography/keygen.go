package cryptography

import (
	"fmt"
	"math/big"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// Key size bounds in bits; sizes must also be byte-aligned.
const (
	minKeyBits = 32
	maxKeyBits = 65536
)

// publicExponentBytes is the fixed byte length of the public exponent,
// searched as an independent probable prime.
const publicExponentBytes = 16

// Per-mille bounds of the deviation from an even p/q byte split.
const (
	minSplitDeviation = 200
	maxSplitDeviation = 300
)

// keypairGenerator implements the keys.KeypairGenerator interface
type keypairGenerator struct {
	primes *PrimeGenerator
	source *RandomIntegerSource
	codec  keys.KeyCodec
	logger logger.Logger
}

// NewKeypairGenerator creates and returns a new instance of keypairGenerator.
func NewKeypairGenerator(primes *PrimeGenerator, source *RandomIntegerSource, codec keys.KeyCodec, logger logger.Logger) (keys.KeypairGenerator, error) {
	return &keypairGenerator{
		primes: primes,
		source: source,
		codec:  codec,
		logger: logger,
	}, nil
}

type primeResult struct {
	value *big.Int
	err   error
}

// GenerateKeypair generates a keypair whose modulus is built from two
// probable primes totalling bitSize bits. The primes and the public
// exponent are searched concurrently; each search delivers its result
// through its own one-shot channel and the three are joined before the
// totient is derived. A triple whose exponent shares a factor with the
// totient is discarded and the whole generation retried.
func (g *keypairGenerator) GenerateKeypair(bitSize int) (*keys.PublicKey, *keys.PrivateKey, error) {
	if bitSize < minKeyBits || bitSize > maxKeyBits || bitSize%8 != 0 {
		return nil, nil, keys.ErrInvalidKeySize
	}
	totalBytes := bitSize / 8

	for {
		pBytes, qBytes, err := g.splitByteLength(totalBytes)
		if err != nil {
			return nil, nil, err
		}

		pCh := g.searchPrime(pBytes)
		qCh := g.searchPrime(qBytes)
		eCh := g.searchPrime(publicExponentBytes)

		pRes, qRes, eRes := <-pCh, <-qCh, <-eCh
		for _, res := range []primeResult{pRes, qRes, eRes} {
			if res.err != nil {
				return nil, nil, fmt.Errorf("prime search failed: %w", res.err)
			}
		}
		p, q, e := pRes.value, qRes.value, eRes.value

		totient := new(big.Int).Mul(
			new(big.Int).Sub(p, one),
			new(big.Int).Sub(q, one),
		)

		if new(big.Int).GCD(nil, nil, e, totient).Cmp(one) != 0 {
			g.logger.Debug("public exponent shares a factor with the totient, regenerating")
			continue
		}

		n := new(big.Int).Mul(p, q)
		d := ModularInverse(e, totient)
		if d == nil {
			// Unreachable after the gcd check; kept as a guard.
			g.logger.Debug("public exponent not invertible, regenerating")
			continue
		}

		publicBlob, err := g.codec.Encode(e, n)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode public key: %w", err)
		}
		privateBlob, err := g.codec.Encode(d, n)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode private key: %w", err)
		}

		g.logger.Info("Generated ", bitSize, "-bit keypair")
		return &keys.PublicKey{Key: publicBlob}, &keys.PrivateKey{Key: privateBlob}, nil
	}
}

// searchPrime starts an independent prime search and returns its one-shot
// result channel.
func (g *keypairGenerator) searchPrime(byteLength int) <-chan primeResult {
	ch := make(chan primeResult, 1)
	go func() {
		value, err := g.primes.GenerateProbablePrime(byteLength)
		ch <- primeResult{value: value, err: err}
	}()
	return ch
}

// splitByteLength divides totalBytes between the two primes unevenly: one
// side gets 50% +/- 20-30% of the bytes, the deviation and its sign drawn
// at random. Equal-length primes are avoided so the modulus does not
// advertise an even factor split.
func (g *keypairGenerator) splitByteLength(totalBytes int) (int, int, error) {
	deviation, err := g.source.IntInRange(big.NewInt(minSplitDeviation), big.NewInt(maxSplitDeviation))
	if err != nil {
		return 0, 0, err
	}
	sign, err := g.source.IntInRange(big.NewInt(0), one)
	if err != nil {
		return 0, 0, err
	}

	perMille := 500 - deviation.Int64()
	if sign.Sign() != 0 {
		perMille = 500 + deviation.Int64()
	}

	// Round to the nearest byte. Truncation would pull per-mille values
	// near the midpoint back onto an even split for small totals.
	pBytes := (totalBytes*int(perMille) + 500) / 1000
	if pBytes < 1 {
		pBytes = 1
	}
	if pBytes > totalBytes-1 {
		pBytes = totalBytes - 1
	}
	return pBytes, totalBytes - pBytes, nil
}

// ModularInverse returns x in [0, modulus) with value*x = 1 (mod modulus)
// computed by the extended Euclidean algorithm, or nil when value and
// modulus are not coprime. modulus must be greater than 1.
func ModularInverse(value, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) <= 0 {
		return nil
	}

	r0 := new(big.Int).Set(modulus)
	r1 := new(big.Int).Mod(value, modulus)
	t0 := big.NewInt(0)
	t1 := big.NewInt(1)

	for r1.Sign() != 0 {
		quotient := new(big.Int).Div(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(quotient, r1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(quotient, t1))
	}

	if r0.Cmp(one) != 0 {
		return nil
	}
	if t0.Sign() < 0 {
		t0.Add(t0, modulus)
	}
	return t0
}
