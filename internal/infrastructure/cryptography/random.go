package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandomIntegerSource samples random integers from a cryptographically
// secure entropy source.
type RandomIntegerSource struct {
	reader io.Reader
}

// NewRandomIntegerSource creates a source backed by crypto/rand.
func NewRandomIntegerSource() *RandomIntegerSource {
	return &RandomIntegerSource{reader: rand.Reader}
}

// Bytes draws n random bytes.
func (s *RandomIntegerSource) Bytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("byte count must be positive, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, nil
}

// IntInRange returns a random integer in [min, max], drawn by sampling
// max's byte length of random bytes and reducing modulo the range size.
// The reduction carries a small modulo bias for ranges that are not a
// power of two; that deviation is accepted.
func (s *RandomIntegerSource) IntInRange(min, max *big.Int) (*big.Int, error) {
	if min.Cmp(max) > 0 {
		return nil, fmt.Errorf("invalid range [%s, %s]", min, max)
	}

	byteLength := len(max.Bytes())
	if byteLength == 0 {
		byteLength = 1
	}

	raw, err := s.Bytes(byteLength)
	if err != nil {
		return nil, err
	}

	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	value := new(big.Int).SetBytes(raw)
	value.Mod(value, span)
	return value.Add(value, min), nil
}
