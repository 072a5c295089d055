//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpi implements a sign-tracking variable-width integer
// wrapper: a thin sign+magnitude layer over mpn's unsigned limb-array
// kernel. It exists only to feed unsigned magnitudes into the kernel;
// the arithmetic itself lives in mpn.
package mpi

import (
	"github.com/hashicorp/go-multierror"

	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/mpn"
)

// Word is a single limb, re-exported for callers that only import
// mpi.
type Word = mpn.Word

// Int is a sign+magnitude arbitrary-precision integer. The zero value
// is the integer 0. Canonical zero is always non-negative: neg is
// never true when abs is empty.
type Int struct {
	neg bool
	abs []Word
}

// Zero returns the integer 0.
func Zero() *Int {
	return &Int{}
}

// FromWords builds an Int from a sign bit and an unsigned magnitude in
// little-endian limb order. The magnitude slice is copied.
func FromWords(neg bool, abs []Word) *Int {
	n := mpn.Norm(abs)
	z := &Int{abs: append([]Word{}, n...)}
	if len(z.abs) > 0 {
		z.neg = neg
	}
	return z
}

// FromInt64 builds an Int from a native signed integer.
func FromInt64(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return FromWords(neg, []Word{Word(u)})
}

// Sign returns -1, 0, or +1 according to z's sign.
func (z *Int) Sign() int {
	if len(z.abs) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsNeg reports whether z is strictly negative.
func (z *Int) IsNeg() bool {
	return z.neg && len(z.abs) > 0
}

// Abs returns the unsigned magnitude of z as a new Int.
func (z *Int) Abs() *Int {
	return FromWords(false, z.abs)
}

// Neg returns -z as a new Int.
func (z *Int) Neg() *Int {
	return FromWords(!z.neg, z.abs)
}

// Words returns z's unsigned magnitude in little-endian limb order.
// The caller must not modify the returned slice.
func (z *Int) Words() []Word {
	return z.abs
}

// BitLen returns the number of bits in z's magnitude (0 for zero).
func (z *Int) BitLen() int {
	return mpn.BitLen(z.abs)
}

// Cmp returns -1, 0, or +1 as z < other, z == other, or z > other,
// comparing signed values with the same sign-aware compare that
// underlies mixed-sign add/sub.
func (z *Int) Cmp(other *Int) int {
	zs, os := z.Sign(), other.Sign()
	if zs != os {
		if zs < os {
			return -1
		}
		return 1
	}
	if zs == 0 {
		return 0
	}
	c := mpn.Cmp(z.abs, other.abs)
	if zs < 0 {
		return -c
	}
	return c
}

// Validate checks the sign+magnitude representation invariant:
// magnitude is normalized, and zero is never negative. It accumulates
// every violation via go-multierror rather than failing on the first,
// matching mpn.Validate and montgomery.Context.Validate.
func (z *Int) Validate() error {
	var result *multierror.Error
	if err := mpn.Validate(z.abs); err != nil {
		result = multierror.Append(result, err)
	}
	if len(z.abs) == 0 && z.neg {
		result = multierror.Append(result, errno.ErrInvalid)
	}
	return result.ErrorOrNil()
}
