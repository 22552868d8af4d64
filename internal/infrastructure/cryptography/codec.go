package cryptography

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/theeman05/keypost/internal/domain/keys"
)

// keyCodec implements the keys.KeyCodec interface
type keyCodec struct{}

// NewKeyCodec creates and returns a new instance of keyCodec.
func NewKeyCodec() keys.KeyCodec {
	return &keyCodec{}
}

// Encode writes exponent and modulus each as a 4-byte big-endian length
// prefix followed by the magnitude bytes, exponent first, and base64-encodes
// the concatenation. Zero encodes as a zero-length field.
func (c *keyCodec) Encode(exponent, modulus *big.Int) (string, error) {
	if exponent == nil || modulus == nil {
		return "", fmt.Errorf("exponent and modulus must not be nil")
	}
	if exponent.Sign() < 0 || modulus.Sign() < 0 {
		return "", fmt.Errorf("exponent and modulus must be non-negative")
	}

	var buf bytes.Buffer
	writeField(&buf, exponent)
	writeField(&buf, modulus)
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a blob produced by Encode, recovering exactly the two
// integers encoded. Any malformed input yields keys.ErrKeyMaterialCorrupt.
func (c *keyCodec) Decode(blob string) (*big.Int, *big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid base64: %v", keys.ErrKeyMaterialCorrupt, err)
	}

	exponentBytes, offset, err := readField(raw, 0)
	if err != nil {
		return nil, nil, err
	}
	modulusBytes, offset, err := readField(raw, offset)
	if err != nil {
		return nil, nil, err
	}
	if offset != len(raw) {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", keys.ErrKeyMaterialCorrupt, len(raw)-offset)
	}

	return new(big.Int).SetBytes(exponentBytes), new(big.Int).SetBytes(modulusBytes), nil
}

func writeField(buf *bytes.Buffer, value *big.Int) {
	valueBytes := value.Bytes()
	var lengthPrefix [4]byte
	binary.BigEndian.PutUint32(lengthPrefix[:], uint32(len(valueBytes)))
	buf.Write(lengthPrefix[:])
	buf.Write(valueBytes)
}

func readField(raw []byte, offset int) ([]byte, int, error) {
	if offset+4 > len(raw) {
		return nil, 0, fmt.Errorf("%w: truncated length prefix", keys.ErrKeyMaterialCorrupt)
	}
	length := int(binary.BigEndian.Uint32(raw[offset : offset+4]))
	offset += 4
	if offset+length > len(raw) || length < 0 {
		return nil, 0, fmt.Errorf("%w: declared length %d exceeds remaining %d bytes", keys.ErrKeyMaterialCorrupt, length, len(raw)-offset)
	}
	return raw[offset : offset+length], offset + length, nil
}
