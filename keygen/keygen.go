//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package keygen implements RSA key generation and a constant-time
// CRT private-key operation, composed from prime, montgomery, and mpi
// (the stated application domain: "RSA key generation
// and private-key operations"). Key/PEM serialization and padding
// schemes remain out of scope (the Non-goals);
// callers receive raw mpi.Int components.
package keygen

import (
	"errors"

	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/mpi"
	"github.com/markkurossi/mpi/mpilog"
	"github.com/markkurossi/mpi/montgomery"
	"github.com/markkurossi/mpi/prime"
)

// PublicExponent is the fixed RSA public exponent used by GenerateKey,
// the conventional choice (2^16+1) balancing public-operation speed
// against small-exponent attacks.
var PublicExponent = mpi.FromInt64(65537)

// PrivateKey holds an RSA key pair plus the CRT parameters and
// Montgomery contexts needed for the constant-time private operation.
type PrivateKey struct {
	N, E *mpi.Int
	D    *mpi.Int
	P, Q *mpi.Int
	Dp   *mpi.Int
	Dq   *mpi.Int
	Qinv *mpi.Int

	ctxP *montgomery.Context
	ctxQ *montgomery.Context
}

// GenerateKey generates an RSA private key with an N of approximately
// bits bits, using randBytes for both prime generation and witness
// sampling. It regenerates the prime pair whenever the public exponent
// happens not to be invertible modulo lambda(n), or the two primes
// collide.
func GenerateKey(bits int, randBytes prime.RandBytes) (*PrivateKey, error) {
	if bits < 128 || bits%2 != 0 {
		return nil, errno.ErrInvalid
	}
	half := bits / 2

	for {
		pw, err := prime.ProbablePrime(half, false, 0, true, randBytes)
		if err != nil {
			return nil, err
		}
		qw, err := prime.ProbablePrime(bits-half, false, 0, true, randBytes)
		if err != nil {
			return nil, err
		}
		P := mpi.FromWords(false, pw)
		Q := mpi.FromWords(false, qw)
		if P.Cmp(Q) == 0 {
			mpilog.L.Debugw("generated primes collided, regenerating", "bits", bits)
			continue
		}

		key, ok, err := buildKey(P, Q)
		if err != nil {
			return nil, err
		}
		if !ok {
			mpilog.L.Debugw("public exponent not invertible for this prime pair, regenerating", "bits", bits)
			continue
		}
		return key, nil
	}
}

// buildKey assembles a PrivateKey from an already-generated prime
// pair. ok is false (with a nil error) when the public exponent is not
// invertible modulo lambda(n), which the caller handles by
// regenerating the prime pair rather than treating it as fatal.
func buildKey(P, Q *mpi.Int) (key *PrivateKey, ok bool, err error) {
	N, err := P.Mul(Q)
	if err != nil {
		return nil, false, err
	}

	one := mpi.FromInt64(1)
	Pm1, err := P.Sub(one)
	if err != nil {
		return nil, false, err
	}
	Qm1, err := Q.Sub(one)
	if err != nil {
		return nil, false, err
	}
	lambda, err := mpi.LCM(Pm1, Qm1)
	if err != nil {
		return nil, false, err
	}

	D, err := mpi.ModInverse(PublicExponent, lambda)
	if errors.Is(err, errno.ErrInvalid) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	Dp, err := D.Mod(Pm1)
	if err != nil {
		return nil, false, err
	}
	Dq, err := D.Mod(Qm1)
	if err != nil {
		return nil, false, err
	}
	Qinv, err := mpi.ModInverse(Q, P)
	if errors.Is(err, errno.ErrInvalid) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	ctxP, err := montgomery.Create(P.Words())
	if err != nil {
		return nil, false, err
	}
	ctxQ, err := montgomery.Create(Q.Words())
	if err != nil {
		ctxP.Destroy()
		return nil, false, err
	}

	return &PrivateKey{
		N: N, E: PublicExponent, D: D,
		P: P, Q: Q, Dp: Dp, Dq: Dq, Qinv: Qinv,
		ctxP: ctxP, ctxQ: ctxQ,
	}, true, nil
}

// Destroy releases the Montgomery contexts backing k's private
// operation, zeroizing their buffers (montgomery.Context.Destroy).
// k's own mpi.Int fields (D, P, Q, Dp, Dq) are ordinary garbage-
// collected values and are not separately wiped.
func (k *PrivateKey) Destroy() {
	k.ctxP.Destroy()
	k.ctxQ.Destroy()
}

// Validate checks that the key's public modulus is in fact P*Q; it
// exists for tests and for callers that construct or deserialize a
// PrivateKey outside GenerateKey.
func (k *PrivateKey) Validate() error {
	n, err := k.P.Mul(k.Q)
	if err != nil {
		return err
	}
	if n.Cmp(k.N) != 0 {
		return errno.ErrInvalid
	}
	return nil
}
