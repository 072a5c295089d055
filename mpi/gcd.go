//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpi

import "github.com/markkurossi/mpi/errno"

// Mod reduces z into the canonical Euclidean range [0, m): unlike
// DivMod's C99 truncating remainder, Mod's result is always
// non-negative. keygen uses this to reduce CRT exponents modulo
// p-1/q-1 and to fold ModInverse's result into [0, m).
func (z *Int) Mod(m *Int) (*Int, error) {
	_, r, err := z.DivMod(m)
	if err != nil {
		return nil, err
	}
	if r.IsNeg() {
		r, err = r.Add(m.Abs())
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// GCD returns the greatest common divisor of a and b (both taken by
// absolute value), via the classic Euclidean algorithm expressed in
// terms of Int.DivMod. This mirrors limb.GCD's binary algorithm one
// level up, where operands may span many limbs and the iteration
// count is bounded by the Euclidean algorithm's logarithmic
// convergence rather than limb.GCD's single-word Stein's algorithm.
func GCD(a, b *Int) (*Int, error) {
	x, y := a.Abs(), b.Abs()
	for y.Sign() != 0 {
		_, r, err := x.DivMod(y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	return x, nil
}

// LCM returns the least common multiple of a and b, used by keygen to
// compute the Carmichael totient lambda(n) = lcm(p-1, q-1).
func LCM(a, b *Int) (*Int, error) {
	g, err := GCD(a, b)
	if err != nil {
		return nil, err
	}
	if g.Sign() == 0 {
		return Zero(), nil
	}
	q, _, err := a.Abs().DivMod(g)
	if err != nil {
		return nil, err
	}
	return q.Mul(b.Abs())
}

// ModInverse returns a^-1 mod m via the extended Euclidean algorithm,
// or errno.ErrInvalid if a and m are not coprime. The result is
// reduced to the canonical [0, m) range.
func ModInverse(a, m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, errno.ErrInvalid
	}
	oldR, r := a.Abs(), m.Abs()
	oldS, s := FromInt64(1), FromInt64(0)

	for r.Sign() != 0 {
		q, rem, err := oldR.DivMod(r)
		if err != nil {
			return nil, err
		}
		oldR, r = r, rem

		qs, err := q.Mul(s)
		if err != nil {
			return nil, err
		}
		newS, err := oldS.Sub(qs)
		if err != nil {
			return nil, err
		}
		oldS, s = s, newS
	}

	if oldR.Cmp(FromInt64(1)) != 0 {
		return nil, errno.ErrInvalid
	}
	return oldS.Mod(m)
}
