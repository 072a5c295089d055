//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpn

import "github.com/markkurossi/mpi/limb"

// CondCopy sets dst[0:n] = a[0:n] if cond != 0, else leaves dst[0:n] =
// b[0:n], with no data-dependent branch. Used by the constant-time
// binary exponentiation loop to select between the base and mont(1)
// without leaking the exponent bit through a branch. dst may alias a
// or b.
func CondCopy(dst, a, b []Word, n int, cond Word) {
	limb.MaskedCopy(dst, a, b, n, limb.IsZeroMask(cond)^limb.AllOnes)
}

// CondSwap exchanges a[0:n] and b[0:n] in place iff cond != 0, the
// limb-array form of limb.MaskedSwap.
func CondSwap(a, b []Word, n int, cond Word) {
	limb.MaskedSwap(a, b, n, cond)
}

// LookupTable selects table[idx] into dst without branching or
// data-dependent indexing: every row of table is touched on every
// call, and each row's inclusion is decided by an equality mask
// (the "scrambled table" access pattern used by the
// constant-time fixed-window exponentiation). Each row of table must
// have length n; dst must have length n.
func LookupTable(dst []Word, table [][]Word, idx int) {
	for i := range dst {
		dst[i] = 0
	}
	for row := range table {
		mask := limb.EqMask(Word(row), Word(idx))
		for i := 0; i < len(dst); i++ {
			dst[i] |= table[row][i] & mask
		}
	}
}
