//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package detrand implements the rand_bytes
// callback contract (`func(out []byte) error`) as a deterministic,
// reproducible byte stream, for use by tests that exercise the
// primality and prime-generation packages without depending on a real
// CSPRNG. It is not suitable for production key generation.
package detrand

import (
	"golang.org/x/crypto/chacha20"
)

// Source is a deterministic byte stream keyed by seed. Two Sources
// created with the same seed produce identical output, which is what
// makes failures in property-style tests
// reproducible.
type Source struct {
	cipher *chacha20.Cipher
}

// New creates a Source seeded by seed. seed is hashed down to a
// chacha20 key/nonce pair by simple byte repetition; this is a test
// fixture, not a KDF.
func New(seed uint64) *Source {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	for i := 0; i < 8; i++ {
		b := byte(seed >> (8 * uint(i)))
		key[i] = b
		key[i+8] = b ^ 0xa5
		key[i+16] = b ^ 0x5a
		key[i+24] = b ^ 0xff
		nonce[i%len(nonce)] ^= b
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only fails on malformed key/nonce sizes, which are fixed
		// constants above; this can never happen.
		panic(err)
	}
	return &Source{cipher: c}
}

// Bytes fills out with deterministic pseudo-random bytes and reports
// no error, satisfying the rand_bytes callback signature used
// throughout the prime package.
func (s *Source) Bytes(out []byte) error {
	for i := range out {
		out[i] = 0
	}
	s.cipher.XORKeyStream(out, out)
	return nil
}
