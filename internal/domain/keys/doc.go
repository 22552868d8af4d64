// Package keys defines the key material model of keypost — public and
// private keys as encoded exponent/modulus blobs bound to email identities —
// together with the contracts for generating, encoding, storing and
// exchanging them.
package keys
