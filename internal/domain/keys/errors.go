package keys

import "errors"

// ErrInvalidKeySize indicates a keypair was requested with a bit size that
// is not a positive multiple of 8 in [32, 65536].
var ErrInvalidKeySize = errors.New("key size must be a multiple of 8 between 32 and 65536 bits")

// ErrKeyMaterialCorrupt indicates an encoded key blob could not be decoded:
// bad base64 or fewer bytes than a declared length prefix promises.
var ErrKeyMaterialCorrupt = errors.New("key material is corrupt")
