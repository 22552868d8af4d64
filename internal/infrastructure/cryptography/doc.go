// Package cryptography implements the public-key core of keypost from
// first principles over math/big: Miller-Rabin primality testing, bounded
// random integer sampling, concurrent probable-prime search, RSA keypair
// derivation, the length-prefixed key blob codec, and the padding-free
// textbook RSA cipher.
package cryptography
