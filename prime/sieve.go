//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prime implements the trial-division sieve, Miller-Rabin
// witness test, and probable/DH-constrained/safe prime generation
//, built on mpn and montgomery.
package prime

import (
	"sort"

	"github.com/markkurossi/mpi/mpn"
)

// Word is a single limb, re-exported for callers that only import
// prime.
type Word = mpn.Word

// maxSmallCandidate is the largest table entry, and so the largest
// value isPrimeSmall can decide by table membership alone via direct
// binary search. The table exhaustively lists every prime up to this
// bound, so for a <=
// maxSmallCandidate, absence from the table is conclusive proof of
// compositeness; beyond it the table is no longer exhaustive and the
// fast path does not apply.
const maxSmallCandidate = 17863

// isPrimeSmall reports whether a, known to be within the table's
// exhaustive range, is prime via binary search, and whether the fast
// path applied at all.
func isPrimeSmall(a uint64) (prime bool, handled bool) {
	if a > maxSmallCandidate {
		return false, false
	}
	v := uint32(a)
	i := sort.Search(len(knownPrimes), func(i int) bool { return knownPrimes[i] >= v })
	return i < len(knownPrimes) && knownPrimes[i] == v, true
}

// trialDivide reports whether candidate is divisible by any prime in
// the known-primes table (skipping 2; candidate must already be known
// odd), stopping once a table prime exceeds sqrt(candidate). It
// returns true (composite) as soon as a divisor is found.
func trialDivide(candidate []Word) bool {
	for _, p := range knownPrimes[1:] {
		psq := Word(p) * Word(p)
		if mpn.Cmp([]Word{psq}, candidate) > 0 {
			break
		}
		_, r, err := mpn.DivMod(make([]Word, len(candidate)+1), make([]Word, 1), candidate, []Word{Word(p)})
		if err != nil {
			continue
		}
		if mpn.IsZero(r) {
			return true
		}
	}
	return false
}
