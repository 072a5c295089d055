//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prime

import (
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpn"
	"github.com/markkurossi/mpi/montgomery"
)

// checksForBits implements a checks-per-bits schedule, used when the
// caller passes 0 for checks.
func checksForBits(bits int) int {
	switch {
	case bits > 3747:
		return 3
	case bits > 1345:
		return 4
	case bits > 476:
		return 5
	case bits > 400:
		return 6
	case bits > 347:
		return 7
	case bits > 308:
		return 8
	case bits > 55:
		return 27
	default:
		return 34
	}
}

// IsPrime reports whether a is probably prime: rejects even a other
// than 2 and a <= 1, binary-searches the small-prime table, optionally runs
// the trial sieve, then runs checks Miller-Rabin rounds. checks == 0
// selects the checks-per-bits schedule automatically.
//
// Following mpi-prime.c's mpi_rabin_miller_test structure, one
// Montgomery context is built for a and reused across every witness
// round, rather than rebuilt per round.
func IsPrime(a []Word, checks int, doTrial bool, randBytes RandBytes) (bool, error) {
	a = mpn.Norm(a)
	if mpn.IsZero(a) {
		return false, nil
	}
	if a[0]&1 == 0 {
		return mpn.Cmp(a, []Word{2}) == 0, nil
	}
	if mpn.Cmp(a, []Word{1}) == 0 {
		return false, nil
	}
	if len(a) == 1 {
		if prime, ok := isPrimeSmall(uint64(a[0])); ok {
			return prime, nil
		}
	}
	if doTrial && trialDivide(a) {
		return false, nil
	}

	bits := mpn.BitLen(a)
	if checks <= 0 {
		checks = checksForBits(bits)
	}

	ctx, err := montgomery.Create(a)
	if err != nil {
		return false, err
	}
	defer ctx.Destroy()

	aMinus1, err := mpn.Sub(make([]Word, len(a)), a, []Word{1})
	if err != nil {
		return false, err
	}
	k := trailingZeroBits(aMinus1)
	q, err := mpn.Shr(make([]Word, len(aMinus1)), aMinus1, uint(k))
	if err != nil {
		return false, err
	}

	for round := 0; round < checks; round++ {
		w, err := RandomInRange([]Word{1}, aMinus1, 1000, randBytes)
		if err != nil {
			return false, err
		}
		ok, err := witnessRound(ctx, aMinus1, w, k, q, bits)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// witnessRound runs one Miller-Rabin round (the // "Witness test" steps 3-6) for witness w against the candidate whose
// Montgomery context ctx already encodes, given aMinus1 = a-1,
// aMinus1 = 2^k * q, and a's bit length bits.
func witnessRound(ctx *montgomery.Context, aMinus1, w []Word, k int, q []Word, bits int) (bool, error) {
	wMont, err := ctx.ToMont(w)
	if err != nil {
		return false, err
	}
	padded := make([]Word, (bits+int(limb.W)-1)/int(limb.W))
	copy(padded, q)

	y := ctx.ExpBinaryConstTime(wMont, padded, bits)
	yDec, err := ctx.FromMont(y)
	if err != nil {
		return false, err
	}
	if mpn.Cmp(mpn.Norm(yDec), []Word{1}) == 0 || mpn.Cmp(mpn.Norm(yDec), aMinus1) == 0 {
		return true, nil
	}

	for i := 0; i < k-1; i++ {
		y = ctx.Square(y)
		yDec, err = ctx.FromMont(y)
		if err != nil {
			return false, err
		}
		norm := mpn.Norm(yDec)
		if mpn.Cmp(norm, aMinus1) == 0 {
			return true, nil
		}
		if mpn.Cmp(norm, []Word{1}) == 0 {
			return false, nil
		}
	}
	return false, nil
}

// trailingZeroBits counts the low zero bits across the whole
// multi-limb value x, the descending-limb scan the // uses to split a-1 = 2^k * q.
func trailingZeroBits(x []Word) int {
	n := 0
	for _, w := range x {
		if w == 0 {
			n += int(limb.W)
			continue
		}
		n += limb.NTZ(w)
		break
	}
	return n
}
