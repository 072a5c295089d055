//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package keygen

import (
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpi"
	"github.com/markkurossi/mpi/montgomery"
	"github.com/markkurossi/mpi/mpn"
)

// Decrypt performs the RSA private-key operation m = c^D mod N via
// CRT: c^Dp mod p and c^Dq mod q are combined by Garner's formula
// rather than a single exponentiation modulo the full-size N, the
// standard ~4x speedup. Both partial exponentiations use the
// constant-time Montgomery ladder (montgomery.Context.ExpBinaryConstTime),
// so timing depends only on the modulus bit lengths, never on the
// secret exponents Dp/Dq.
func (k *PrivateKey) Decrypt(c *mpi.Int) (*mpi.Int, error) {
	m1, err := k.crtHalf(c, k.ctxP, k.Dp, k.P)
	if err != nil {
		return nil, err
	}
	m2, err := k.crtHalf(c, k.ctxQ, k.Dq, k.Q)
	if err != nil {
		return nil, err
	}

	h, err := m1.Sub(m2)
	if err != nil {
		return nil, err
	}
	h, err = h.Mul(k.Qinv)
	if err != nil {
		return nil, err
	}
	h, err = h.Mod(k.P)
	if err != nil {
		return nil, err
	}

	hq, err := h.Mul(k.Q)
	if err != nil {
		return nil, err
	}
	return m2.Add(hq)
}

// Sign is the RSA private-key signing operation, identical to Decrypt
// (both are the same modular-exponentiation primitive; padding, which
// distinguishes signing from decryption at the protocol level, is out
// of scope).
func (k *PrivateKey) Sign(m *mpi.Int) (*mpi.Int, error) {
	return k.Decrypt(m)
}

// crtHalf computes c^exp mod modulus using ctx, the precomputed
// Montgomery context for modulus.
func (k *PrivateKey) crtHalf(c *mpi.Int, ctx *montgomery.Context, exp, modulus *mpi.Int) (*mpi.Int, error) {
	cMod, err := c.Mod(modulus)
	if err != nil {
		return nil, err
	}
	enc, err := ctx.ToMont(cMod.Words())
	if err != nil {
		return nil, err
	}

	bits := modulus.BitLen()
	padded := make([]mpn.Word, (bits+int(limb.W)-1)/int(limb.W))
	copy(padded, exp.Words())

	resMont := ctx.ExpBinaryConstTime(enc, padded, bits)
	dec, err := ctx.FromMont(resMont)
	if err != nil {
		return nil, err
	}
	return mpi.FromWords(false, dec), nil
}
