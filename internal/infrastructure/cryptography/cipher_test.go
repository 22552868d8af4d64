//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/pkg/testutil"
)

func setupCipher(t *testing.T) keys.Cipher {
	t.Helper()
	cipher, err := NewRSACipher(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return cipher
}

func TestRSACipher_KnownValues(t *testing.T) {
	cipher := setupCipher(t)

	// n = 61 * 53, e = 17, d = 2753: the classic worked example.
	n := big.NewInt(3233)
	e := big.NewInt(17)
	d := big.NewInt(2753)

	ciphertext, err := cipher.Encrypt(big.NewInt(65).Bytes(), e, n)
	require.NoError(t, err)
	assert.Equal(t, int64(2790), new(big.Int).SetBytes(ciphertext).Int64())

	plaintext, err := cipher.Decrypt(ciphertext, d, n)
	require.NoError(t, err)
	assert.Equal(t, int64(65), new(big.Int).SetBytes(plaintext).Int64())
}

func TestRSACipher_Deterministic(t *testing.T) {
	cipher := setupCipher(t)

	n := big.NewInt(3233)
	e := big.NewInt(17)
	message := []byte{42}

	first, err := cipher.Encrypt(message, e, n)
	require.NoError(t, err)
	second, err := cipher.Encrypt(message, e, n)
	require.NoError(t, err)

	// Textbook RSA has no randomization; identical plaintext under the
	// same key must yield identical ciphertext.
	assert.Equal(t, first, second)
}

func TestRSACipher_RoundTripWithGeneratedKeypair(t *testing.T) {
	cipher := setupCipher(t)
	generator := setupKeypairGenerator(t)
	codec := NewKeyCodec()

	publicKey, privateKey, err := generator.GenerateKeypair(128)
	require.NoError(t, err)

	e, n, err := codec.Decode(publicKey.Key)
	require.NoError(t, err)
	d, _, err := codec.Decode(privateKey.Key)
	require.NoError(t, err)

	message := []byte("hi")
	require.True(t, new(big.Int).SetBytes(message).Cmp(n) < 0)

	ciphertext, err := cipher.Encrypt(message, e, n)
	require.NoError(t, err)
	plaintext, err := cipher.Decrypt(ciphertext, d, n)
	require.NoError(t, err)

	assert.Equal(t, message, plaintext)
}

func TestRSACipher_InvalidArguments(t *testing.T) {
	cipher := setupCipher(t)

	_, err := cipher.Encrypt([]byte{1}, nil, big.NewInt(5))
	assert.Error(t, err)

	_, err = cipher.Encrypt([]byte{1}, big.NewInt(3), big.NewInt(0))
	assert.Error(t, err)

	_, err = cipher.Decrypt([]byte{1}, big.NewInt(3), big.NewInt(-5))
	assert.Error(t, err)
}
