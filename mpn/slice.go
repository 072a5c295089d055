//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpn implements the fixed-width limb-array kernel: schoolbook
// add/sub/mul/sqr/shift, normalized division, and the constant-time
// layer used by montgomery and prime. A value is a []limb.Word in
// little-endian limb order; its significant length is len() itself
// (the slice is always kept trimmed so the top limb is nonzero, or
// the slice is empty for zero), and its room is simply cap().
// Operations that need output capacity beyond what the caller
// provided return errno.ErrRange rather than reallocating silently:
// an operation fails outright if the output cannot fit.
package mpn

import (
	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/limb"
	"github.com/hashicorp/go-multierror"
)

// Word is a single limb; re-exported from limb for callers that only
// need the kernel package.
type Word = limb.Word

// Norm trims leading (most-significant) zero limbs from a, returning
// the significant-length prefix. The empty result represents zero.
func Norm(a []Word) []Word {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// IsZero reports whether a is the zero value.
func IsZero(a []Word) bool {
	return len(Norm(a)) == 0
}

// BitLen returns the number of bits needed to represent a (0 for
// zero), matching the nlz-based bit-size primitive.
func BitLen(a []Word) int {
	n := len(Norm(a))
	if n == 0 {
		return 0
	}
	return n*limb.W - limb.NLZ(a[n-1])
}

// Cmp returns -1, 0, or +1 as a is numerically less than, equal to,
// or greater than b, comparing lengths first and then scanning
// top-down limb by limb.
func Cmp(a, b []Word) int {
	a, b = Norm(a), Norm(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// grow reslices z to length n, requiring cap(z) >= n; otherwise it
// returns errno.ErrRange, matching the ERANGE
// capacity-overflow convention.
func grow(z []Word, n int) ([]Word, error) {
	if cap(z) < n {
		return nil, errno.ErrRange
	}
	return z[:n], nil
}

// Validate checks the representation invariant: len(a) <= cap(a) and
// either len(a) == 0 or a[len(a)-1] != 0. Since Go slices passed
// around by this package are always already trimmed,
// Validate exists for boundary code that accepts externally
// constructed slices (e.g. deserialized values) and wants every
// violation reported at once rather than failing on the first check;
// it demonstrates the same accumulate-everything style montgomery.
// Context.Validate and mpi.Int.Validate use.
func Validate(a []Word) error {
	var result *multierror.Error
	if len(a) > cap(a) {
		result = multierror.Append(result, errno.ErrRange)
	}
	if len(a) > 0 && a[len(a)-1] == 0 {
		result = multierror.Append(result, errno.ErrInvalid)
	}
	return result.ErrorOrNil()
}
