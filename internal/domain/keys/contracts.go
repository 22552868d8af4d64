package keys

import (
	"context"
	"math/big"
)

// KeypairGenerator produces RSA keypairs from self-implemented primitives.
type KeypairGenerator interface {
	// GenerateKeypair generates a keypair whose modulus is built from two
	// probable primes totalling bitSize bits. bitSize must be a positive
	// multiple of 8 in [32, 65536]; violation yields ErrInvalidKeySize.
	// There is no cancellation: pathologically small sizes can search
	// indefinitely.
	GenerateKeypair(bitSize int) (*PublicKey, *PrivateKey, error)
}

// KeyCodec packs an (exponent, modulus) pair into a single transportable
// blob and back.
type KeyCodec interface {
	// Encode writes each integer as a 4-byte big-endian length prefix
	// followed by its magnitude bytes, exponent first, and base64-encodes
	// the concatenation.
	Encode(exponent, modulus *big.Int) (string, error)

	// Decode parses a blob produced by Encode. Malformed input yields
	// ErrKeyMaterialCorrupt.
	Decode(blob string) (exponent, modulus *big.Int, err error)
}

// Cipher transforms message bytes with textbook RSA.
type Cipher interface {
	// Encrypt interprets message as a non-negative big-endian integer m and
	// returns the bytes of m^exponent mod modulus. The caller must keep
	// m < modulus; there is no padding and no length check.
	Encrypt(message []byte, exponent, modulus *big.Int) ([]byte, error)

	// Decrypt is the inverse of Encrypt under the matching exponent.
	Decrypt(ciphertext []byte, exponent, modulus *big.Int) ([]byte, error)
}

// KeyStore persists key material in the local working directory.
type KeyStore interface {
	SavePublicKey(key *PublicKey) error
	SavePrivateKey(key *PrivateKey) error
	LoadPublicKey() (*PublicKey, error)
	LoadPrivateKey() (*PrivateKey, error)

	// SaveCorrespondentKey stores a fetched correspondent's public key under
	// the correspondent's email.
	SaveCorrespondentKey(email string, key *PublicKey) error
	LoadCorrespondentKey(email string) (*PublicKey, error)
}

// RemoteKeyDirectory is the key half of the shared remote store. The channel
// is unauthenticated: any caller may overwrite any identity's key.
type RemoteKeyDirectory interface {
	// GetKey fetches the public key published for email. It returns
	// (nil, nil) when no key is published.
	GetKey(ctx context.Context, email string) (*PublicKey, error)

	// PutKey stores or overwrites the public key published for email.
	PutKey(ctx context.Context, email string, key *PublicKey) error
}

// PublicKeyRepository is the store-side persistence contract backing the
// key half of the remote directory. Put overwrites; Get returns (nil, nil)
// when no key is stored for email.
type PublicKeyRepository interface {
	Get(ctx context.Context, email string) (*PublicKey, error)
	Put(ctx context.Context, email string, key *PublicKey) error
}

// KeyExchangeService covers the key-side operations of the CLI.
type KeyExchangeService interface {
	// GenerateKeypair creates and persists a fresh keypair, replacing any
	// previously stored one.
	GenerateKeypair(bitSize int) error

	// PublishKey binds the local public key to email, uploads it, and
	// records email in the private key's correspondent set.
	PublishKey(ctx context.Context, email string) error

	// FetchKey downloads the public key published for email and stores it
	// locally. It returns the fetched key, or (nil, nil) when none exists.
	FetchKey(ctx context.Context, email string) (*PublicKey, error)
}
