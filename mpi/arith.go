//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/mpn"
)

// Add returns z + other: same sign adds magnitudes and keeps the
// sign; mixed sign compares magnitudes, subtracts the smaller from
// the larger, and takes the sign of whichever operand had the larger
// magnitude.
func (z *Int) Add(other *Int) (*Int, error) {
	if z.neg == other.neg {
		sum, err := mpn.Add(make([]Word, maxLen(z.abs, other.abs)+1), z.abs, other.abs)
		if err != nil {
			return nil, err
		}
		return FromWords(z.neg, sum), nil
	}
	return mixedSignAdd(z, other)
}

// Sub returns z - other.
func (z *Int) Sub(other *Int) (*Int, error) {
	return z.Add(other.Neg())
}

// mixedSignAdd handles Add when z and other have opposite signs: the
// magnitudes are compared, the smaller subtracted from the larger,
// and the result takes the sign of the larger-magnitude operand.
func mixedSignAdd(z, other *Int) (*Int, error) {
	c := mpn.Cmp(z.abs, other.abs)
	if c == 0 {
		return Zero(), nil
	}
	var big, small *Int
	if c > 0 {
		big, small = z, other
	} else {
		big, small = other, z
	}
	diff, err := mpn.Sub(make([]Word, len(big.abs)), big.abs, small.abs)
	if err != nil {
		return nil, err
	}
	return FromWords(big.neg, diff), nil
}

// Mul returns z * other. The result sign is the XOR of the operand
// signs; a zero magnitude collapses to canonical non-negative zero
// regardless of the XOR.
func (z *Int) Mul(other *Int) (*Int, error) {
	prod, err := mpn.Mul(make([]Word, len(z.abs)+len(other.abs)), z.abs, other.abs)
	if err != nil {
		return nil, err
	}
	return FromWords(z.neg != other.neg, prod), nil
}

// DivMod returns the quotient and remainder of z / other, truncating
// toward zero. The quotient sign is the XOR of the operand signs; the
// remainder sign is the dividend's sign for a nonzero remainder and
// non-negative zero for an exact division, matching C99 truncated
// division semantics.
func (z *Int) DivMod(other *Int) (q, r *Int, err error) {
	if len(other.abs) == 0 {
		return nil, nil, errno.ErrInvalid
	}
	qq, rr, err := mpn.DivMod(make([]Word, len(z.abs)+1), make([]Word, len(other.abs)), z.abs, other.abs)
	if err != nil {
		return nil, nil, err
	}
	q = FromWords(z.neg != other.neg, qq)
	r = FromWords(z.neg, rr)
	return q, r, nil
}

func maxLen(a, b []Word) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}
