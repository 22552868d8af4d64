package cryptography

import (
	"fmt"
	"math/big"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// rsaCipher implements the keys.Cipher interface
type rsaCipher struct {
	logger logger.Logger
}

// NewRSACipher creates and returns a new instance of rsaCipher.
func NewRSACipher(logger logger.Logger) (keys.Cipher, error) {
	return &rsaCipher{logger: logger}, nil
}

// Encrypt interprets message as a non-negative big-endian integer m and
// returns the bytes of m^exponent mod modulus.
//
// This is textbook RSA: no padding, no randomization. The same message
// under the same key always yields the same ciphertext, and the caller
// must keep m < modulus — a larger message is reduced modulo the modulus
// and will not decrypt to the original bytes.
func (c *rsaCipher) Encrypt(message []byte, exponent, modulus *big.Int) ([]byte, error) {
	if err := checkCipherArgs(exponent, modulus); err != nil {
		return nil, err
	}

	m := new(big.Int).SetBytes(message)
	result := new(big.Int).Exp(m, exponent, modulus).Bytes()
	c.logger.Debug("RSA encryption produced a ", len(result), "-byte ciphertext")
	return result, nil
}

// Decrypt computes ciphertext^exponent mod modulus and returns the
// resulting bytes. With the matching private exponent this inverts Encrypt
// for any message integer below the modulus.
func (c *rsaCipher) Decrypt(ciphertext []byte, exponent, modulus *big.Int) ([]byte, error) {
	if err := checkCipherArgs(exponent, modulus); err != nil {
		return nil, err
	}

	cInt := new(big.Int).SetBytes(ciphertext)
	result := new(big.Int).Exp(cInt, exponent, modulus).Bytes()
	c.logger.Debug("RSA decryption produced a ", len(result), "-byte plaintext")
	return result, nil
}

func checkCipherArgs(exponent, modulus *big.Int) error {
	if exponent == nil || modulus == nil {
		return fmt.Errorf("exponent and modulus must not be nil")
	}
	if modulus.Sign() <= 0 {
		return fmt.Errorf("modulus must be positive")
	}
	return nil
}
