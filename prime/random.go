//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prime

import (
	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpn"
)

// RandBytes is a random-byte source callback: fill out with random
// bytes, returning a non-zero error (propagated
// verbatim) on failure. Implementations must be cryptographically
// random for primality and key-generation use; internal/detrand's
// deterministic stream is for tests only.
type RandBytes func(out []byte) error

// RandomInRange fills a value uniformly distributed in the open
// interval (lo, hi) by rejection sampling against randBytes, up to
// maxTries attempts, returning errno.ErrBusy on exhaustion.
func RandomInRange(lo, hi []Word, maxTries int, randBytes RandBytes) ([]Word, error) {
	hiN := mpn.Norm(hi)
	loN := mpn.Norm(lo)
	if len(hiN) == 0 {
		return nil, errno.ErrInvalid
	}
	n := len(hiN)
	bitLen := mpn.BitLen(hiN)
	excess := uint(n*int(limb.W) - bitLen)
	topMask := limb.AllOnes
	if excess > 0 {
		topMask = limb.AllOnes >> excess
	}

	wordBytes := int(limb.W) / 8
	buf := make([]byte, n*wordBytes)
	cand := make([]Word, n)
	for try := 0; try < maxTries; try++ {
		if err := randBytes(buf); err != nil {
			return nil, err
		}
		wordsFromBytes(cand, buf)
		cand[n-1] &= topMask
		if mpn.Cmp(cand, loN) > 0 && mpn.Cmp(cand, hiN) < 0 {
			return mpn.Norm(cand), nil
		}
	}
	return nil, errno.ErrBusy
}

// wordsFromBytes assembles words from a little-endian byte buffer:
// the first wordBytes bytes become words[0] (least significant),
// and so on. The convention is internal to this package; it does not
// need to match any external encoding.
func wordsFromBytes(words []Word, b []byte) {
	wb := int(limb.W) / 8
	for i := range words {
		var w Word
		for j := 0; j < wb; j++ {
			w |= Word(b[i*wb+j]) << uint(8*j)
		}
		words[i] = w
	}
}
