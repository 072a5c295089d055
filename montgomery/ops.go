//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package montgomery

import (
	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpn"
)

// must reports an internal invariant violation as a panic rather than
// a propagated error. It is only ever called with buffers this
// package sized itself (always exactly large enough), so a non-nil
// err here means a bug in this package, not bad caller input; the
// public entry points (Create, ToMont, FromMont) validate caller
// input directly, and return ordinary errors for it.
func must(z []Word, err error) []Word {
	if err != nil {
		panic(err)
	}
	return z
}

// isZeroWords returns a mask that is AllOnes if every limb of a is
// zero, else 0, without branching on individual limb values.
func isZeroWords(a []Word) Word {
	var acc Word
	for _, v := range a {
		acc |= v
	}
	return limb.IsZeroMask(acc)
}

// reduce runs CIOS Montgomery reduction over t, a 2*msize-limb buffer
// representing the pre-reduced product. t is
// consumed; the returned slice is a fresh msize-limb buffer in
// [0, m).
func (c *Context) reduce(t []Word) []Word {
	n := c.msize
	ext := make([]Word, 2*n+1)
	copy(ext, t)

	for i := 0; i < n; i++ {
		u := ext[i] * c.k0
		carry := mpn.MulAccWRow(ext[i:i+n], c.modulus, u)
		j := i + n
		for carry != 0 && j < len(ext) {
			ext[j], carry = limb.AddCC(ext[j], carry, 0)
			j++
		}
	}

	return c.conditionalSub(ext[n : 2*n+1])
}

// conditionalSub subtracts the (msize+1)-limb zero-extended modulus
// from full once, iff full >= modulus, in constant time via a masked
// select keyed on the subtraction's borrow-out (the // "conditional masked copy of (T − modulus) vs T"). full must already
// be known to be < 2*modulus, so at most one subtraction is ever
// needed; that bound holds for every caller below (CIOS reduction of
// an operand product, or the sum of two already-reduced operands).
func (c *Context) conditionalSub(full []Word) []Word {
	n := c.msize
	modExt := make([]Word, n+1)
	copy(modExt, c.modulus)
	diff := make([]Word, n+1)
	borrow := mpn.SubEqual(diff, full, modExt, n+1)
	// SubCB's borrow-out is always exactly 0 or 1, so borrow-1 is
	// AllOnes when borrow==0 (no borrow: full >= modExt, use diff) and
	// 0 when borrow==1 (full < modExt, keep full unchanged).
	mask := borrow - 1
	result := make([]Word, n)
	for i := 0; i < n; i++ {
		result[i] = limb.Select(mask, diff[i], full[i])
	}
	return result
}

// ToMont computes mont(a) = a*R mod m for a plain residue a < m
//, via mul_then_reduce(a, RR).
func (c *Context) ToMont(a []Word) ([]Word, error) {
	a = mpn.Norm(a)
	if mpn.Cmp(a, c.modulus) >= 0 {
		return nil, errno.ErrInvalid
	}
	n := c.msize
	prod := must(mpn.Mul(make([]Word, 2*n), a, c.rr))
	t := make([]Word, 2*n)
	copy(t, prod)
	return c.reduce(t), nil
}

// FromMont computes from_mont(a) = a*R⁻¹ mod m (the // "Decode"), by reducing a zero-extended to 2*msize.
func (c *Context) FromMont(a []Word) ([]Word, error) {
	a = mpn.Norm(a)
	n := c.msize
	if len(a) > n {
		return nil, errno.ErrInvalid
	}
	t := make([]Word, 2*n)
	copy(t, a)
	return c.reduce(t), nil
}

// pad copies a into a fresh msize-limb, zero-extended buffer.
func (c *Context) pad(a []Word) []Word {
	out := make([]Word, c.msize)
	copy(out, a)
	return out
}

// Add computes a + b mod m for two already-reduced Montgomery-domain
// operands: the plain sum,
// conditionally reduced once.
func (c *Context) Add(a, b []Word) []Word {
	n := c.msize
	sum := make([]Word, n+1)
	carry := mpn.AddEqual(sum[:n], c.pad(a), c.pad(b), n)
	sum[n] = carry
	return c.conditionalSub(sum)
}

// Sub computes a - b mod m. The plain difference may wrap around
// (a < b), which SubEqual's borrow reports; the conditional add-back
// of modulus brings the wrapped value back into [0, m), the same
// constant-time masked-select shape conditionalSub uses for the add
// direction.
func (c *Context) Sub(a, b []Word) []Word {
	n := c.msize
	diff := make([]Word, n)
	borrow := mpn.SubEqual(diff, c.pad(a), c.pad(b), n)
	corrected := make([]Word, n)
	mpn.AddEqual(corrected, diff, c.modulus, n)
	mask := -borrow
	result := make([]Word, n)
	for i := 0; i < n; i++ {
		result[i] = limb.Select(mask, corrected[i], diff[i])
	}
	return result
}

// Neg computes m - a mod m, collapsing
// the a == 0 case to the canonical zero rather than m itself.
func (c *Context) Neg(a []Word) []Word {
	n := c.msize
	a = c.pad(a)
	diff := make([]Word, n)
	mpn.SubEqual(diff, c.modulus, a, n)
	zmask := isZeroWords(a)
	result := make([]Word, n)
	for i := range result {
		result[i] = diff[i] &^ zmask
	}
	return result
}

// Halve computes a * 2⁻¹ mod m: if a is
// odd, add modulus first (odd + odd modulus = even) so the subsequent
// exact right shift by one bit divides the correct residue.
func (c *Context) Halve(a []Word) []Word {
	n := c.msize
	a = c.pad(a)
	isOdd := a[0] & 1
	mask := -isOdd
	addend := make([]Word, n)
	for i := range addend {
		addend[i] = c.modulus[i] & mask
	}
	sum := make([]Word, n+1)
	carry := mpn.AddEqual(sum[:n], a, addend, n)
	sum[n] = carry
	shifted := must(mpn.Shr(make([]Word, n+1), sum, 1))
	return c.pad(shifted)
}

// Double computes 2*a mod m.
func (c *Context) Double(a []Word) []Word {
	return c.Add(a, a)
}

// Triple computes 3*a mod m.
func (c *Context) Triple(a []Word) []Word {
	return c.Add(c.Double(a), a)
}

// Mul computes a*b mod m for two Montgomery-domain operands via
// schoolbook multiply followed by CIOS reduction.
func (c *Context) Mul(a, b []Word) []Word {
	n := c.msize
	prod := must(mpn.Mul(make([]Word, 2*n), c.pad(a), c.pad(b)))
	t := make([]Word, 2*n)
	copy(t, prod)
	return c.reduce(t)
}

// Square computes a*a mod m via mpn.Sqr followed by CIOS reduction.
func (c *Context) Square(a []Word) []Word {
	n := c.msize
	sq := must(mpn.Sqr(make([]Word, 2*n), c.pad(a)))
	t := make([]Word, 2*n)
	copy(t, sq)
	return c.reduce(t)
}
