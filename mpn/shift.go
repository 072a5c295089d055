//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpn

import (
	"github.com/markkurossi/mpi/limb"
)

// Shl computes z = a << nbits, where nbits may exceed the limb width,
// decomposed into a word shift (nbits/W) and a bit shift (nbits mod
// W). z may alias a (in-place
// shift is supported). cap(z) must satisfy cap(z)*W >= BitLen(a) +
// int(nbits).
func Shl(z, a []Word, nbits uint) ([]Word, error) {
	a = Norm(a)
	if len(a) == 0 {
		zz, err := grow(z, 0)
		return zz, err
	}
	words := int(nbits / limb.W)
	bits := uint(nbits % limb.W)

	need := (BitLen(a) + int(nbits) + limb.W - 1) / limb.W
	zz, err := grow(z, need)
	if err != nil {
		return nil, err
	}

	if bits == 0 {
		// Pure word shift: copy high to low so in-place aliasing with
		// overlapping ranges is safe.
		for i := len(a) - 1; i >= 0; i-- {
			zz[i+words] = a[i]
		}
		for i := 0; i < words; i++ {
			zz[i] = 0
		}
		return Norm(zz[:len(a)+words]), nil
	}

	var carry Word
	for i := len(a) - 1; i >= 0; i-- {
		v := a[i]
		if i+words+1 < need {
			zz[i+words+1] = carry | (v >> (limb.W - bits))
		}
		carry = v << bits
	}
	zz[words] = carry
	for i := 0; i < words; i++ {
		zz[i] = 0
	}
	return Norm(zz[:need]), nil
}

// Shr computes z = a >> nbits, analogous to Shl (the // "Right shift"). z may alias a.
func Shr(z, a []Word, nbits uint) ([]Word, error) {
	a = Norm(a)
	words := int(nbits / limb.W)
	bits := uint(nbits % limb.W)

	if words >= len(a) {
		return grow(z, 0)
	}

	src := a[words:]
	need := len(src)
	zz, err := grow(z, need)
	if err != nil {
		return nil, err
	}

	if bits == 0 {
		for i := 0; i < len(src); i++ {
			zz[i] = src[i]
		}
		return Norm(zz[:need]), nil
	}

	for i := 0; i < len(src); i++ {
		v := src[i] >> bits
		if i+1 < len(src) {
			v |= src[i+1] << (limb.W - bits)
		}
		zz[i] = v
	}
	return Norm(zz[:need]), nil
}
