//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpn

import (
	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/limb"
)

// SubEqual computes z[0:n] = a[0:n] - b[0:n] and returns the borrow
// out of the top limb.
func SubEqual(z, a, b []Word, n int) (borrow Word) {
	for i := 0; i < n; i++ {
		z[i], borrow = limb.SubCB(a[i], b[i], borrow)
	}
	return borrow
}

// Sub computes z = a - b for asize >= bsize and returns the new
// significant length of z with leading zeros trimmed. The caller must
// guarantee a >= b;
// otherwise the result is the two's-complement wraparound of the
// difference and the borrow is discarded (montgomery's
// conditional-correction steps use SubEqual, which returns the
// borrow). z may alias a or b; cap(z) must be at least
// len(Norm(a)).
func Sub(z, a, b []Word) ([]Word, error) {
	a, b = Norm(a), Norm(b)
	if len(a) < len(b) {
		return nil, errno.ErrInvalid
	}
	need := len(a)
	zz, err := grow(z, need)
	if err != nil {
		return nil, err
	}
	borrow := SubEqual(zz, a[:len(b)], b, len(b))
	for i := len(b); i < len(a); i++ {
		zz[i], borrow = limb.SubCB(a[i], 0, borrow)
	}
	return Norm(zz[:need]), nil
}

// DecW computes z = a - w for a single limb w, analogous to IncW, and
// returns the new significant length (the // "Dec-by-limb"). The caller must guarantee a >= w.
func DecW(z, a []Word, w Word) ([]Word, error) {
	a = Norm(a)
	zz, err := grow(z, len(a))
	if err != nil {
		return nil, err
	}
	borrow := w
	i := 0
	for ; i < len(a) && borrow != 0; i++ {
		zz[i], borrow = limb.SubCB(a[i], 0, borrow)
	}
	for ; i < len(a); i++ {
		zz[i] = a[i]
	}
	return Norm(zz[:len(a)]), nil
}
