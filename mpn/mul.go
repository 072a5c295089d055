//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpn

import "github.com/markkurossi/mpi/limb"

// Mul computes z = a * b using the standard outer-loop-over-b,
// inner-multiply-accumulate-into-a schoolbook formulation. cap(z)
// must be at least len(Norm(a)) + len(Norm(b)); z must not alias a
// or b.
func Mul(z, a, b []Word) ([]Word, error) {
	a, b = Norm(a), Norm(b)
	need := len(a) + len(b)
	zz, err := grow(z, need)
	if err != nil {
		return nil, err
	}
	for i := range zz[:need] {
		zz[i] = 0
	}
	if len(a) == 0 || len(b) == 0 {
		return zz[:0], nil
	}
	for j := 0; j < len(b); j++ {
		MulAccW(zz[j:j+len(a)+1], a, b[j])
	}
	return Norm(zz[:need]), nil
}

// MulAccW computes z[0:len(a)+1] += a*w in place, where z already
// holds an addend in z[0:len(a)] and z[len(a)] is assumed zero on
// entry. It adds the carry extension into z[len(a)] itself and also
// returns it.
func MulAccW(z, a []Word, w Word) (carry Word) {
	for i := 0; i < len(a); i++ {
		hi, lo := limb.MulWW(a[i], w)
		var c1, c2 Word
		z[i], c1 = limb.AddCC(z[i], lo, 0)
		z[i], c2 = limb.AddCC(z[i], carry, 0)
		carry = hi + c1 + c2
	}
	z[len(a)], _ = limb.AddCC(z[len(a)], carry, 0)
	return carry
}

// MulAccWRow computes z[0:len(a)] += a*w in place and returns the
// carry out of the top limb, without touching z[len(a)] (unlike
// MulAccW, which folds that carry into an assumed-zero z[len(a)]
// itself). Montgomery's CIOS reduction needs this shape: the limb
// past the row already holds live product data, not a zero the
// function may clobber, so the caller threads the returned carry
// onward itself.
func MulAccWRow(z, a []Word, w Word) (carry Word) {
	for i := 0; i < len(a); i++ {
		hi, lo := limb.MulWW(a[i], w)
		var c1, c2 Word
		z[i], c1 = limb.AddCC(z[i], lo, 0)
		z[i], c2 = limb.AddCC(z[i], carry, 0)
		carry = hi + c1 + c2
	}
	return carry
}

// Sqr computes z = a*a using the diagonal-plus-doubled-off-diagonal
// decomposition of the "Square": a first pass over
// the strict upper triangle a[i]*a[j] (i<j), doubled, then the
// diagonal terms a[i]^2 added in. cap(z) must be at least
// 2*len(Norm(a)).
func Sqr(z, a []Word) ([]Word, error) {
	a = Norm(a)
	n := len(a)
	need := 2 * n
	zz, err := grow(z, need)
	if err != nil {
		return nil, err
	}
	for i := range zz[:need] {
		zz[i] = 0
	}
	if n == 0 {
		return zz[:0], nil
	}

	// Off-diagonal terms a[i]*a[j], i<j, accumulated once.
	for i := 0; i < n-1; i++ {
		if a[i] == 0 {
			continue
		}
		var carry Word
		for j := i + 1; j < n; j++ {
			hi, lo := limb.MulWW(a[i], a[j])
			var c1, c2 Word
			zz[i+j], c1 = limb.AddCC(zz[i+j], lo, 0)
			zz[i+j], c2 = limb.AddCC(zz[i+j], carry, 0)
			carry = hi + c1 + c2
		}
		k := i + n
		for carry != 0 {
			zz[k], carry = limb.AddCC(zz[k], carry, 0)
			k++
		}
	}

	// Double the off-diagonal sum.
	var carry Word
	for i := 0; i < need; i++ {
		hi := zz[i] >> (limb.W - 1)
		zz[i] = (zz[i] << 1) | carry
		carry = hi
	}

	// Add the diagonal terms a[i]^2 at positions 2i, 2i+1. carry
	// threads the overflow out of position 2i+1 into position
	// 2(i+1), the same running-accumulator shape as MulAccW's row
	// loop above.
	carry = 0
	for i := 0; i < n; i++ {
		hi, lo := limb.MulWW(a[i], a[i])
		var c1, c2 Word
		zz[2*i], c1 = limb.AddCC(zz[2*i], lo, 0)
		zz[2*i], c2 = limb.AddCC(zz[2*i], carry, 0)
		s := hi + c1 + c2
		zz[2*i+1], carry = limb.AddCC(zz[2*i+1], s, 0)
	}
	// a^2 fits in exactly 2n limbs, so no carry survives past the top
	// limb; k starts at need, so this loop never iterates.
	for k := 2 * n; carry != 0 && k < need; k++ {
		zz[k], carry = limb.AddCC(zz[k], carry, 0)
	}

	return Norm(zz[:need]), nil
}
