//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prime

import (
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpilog"
	"github.com/markkurossi/mpi/mpn"
)

// maxDHSkips bounds the DH-constrained search's linear walk by
// multiples of add before it gives up and regenerates the base
// candidate from scratch.
const maxDHSkips = 4096

// ProbablePrime generates an unconstrained probable prime of the
// given bit length. checks and doTrial are forwarded to the Miller-Rabin test
// applied to each candidate; checks == 0 uses the checks-per-bits
// schedule. If safe is set, the returned prime additionally satisfies
// IsPrime((p-1)/2).
func ProbablePrime(bits int, safe bool, checks int, doTrial bool, randBytes RandBytes) ([]Word, error) {
	for {
		cand, err := generateCandidate(bits, safe, randBytes)
		if err != nil {
			return nil, err
		}
		if cand == nil {
			mpilog.L.Debugw("prime candidate delta overflow, regenerating", "bits", bits)
			continue
		}
		ok, err := IsPrime(cand, checks, doTrial, randBytes)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if safe {
			half, err := halveMinusOne(cand)
			if err != nil {
				return nil, err
			}
			okHalf, err := IsPrime(half, checks, doTrial, randBytes)
			if err != nil {
				return nil, err
			}
			if !okHalf {
				mpilog.L.Debugw("safe-prime companion failed primality, restarting", "bits", bits)
				continue
			}
		}
		return cand, nil
	}
}

// SafePrime generates a prime p of the given bit length such that
// (p-1)/2 is also prime.
func SafePrime(bits, checks int, doTrial bool, randBytes RandBytes) ([]Word, error) {
	return ProbablePrime(bits, true, checks, doTrial, randBytes)
}

// ProbablePrimeDH generates a probable prime of the given bit length
// additionally constrained to r == rem (mod add), or r == 1 (mod add)
// if rem is empty/nil (r == 3 if safe and rem is empty). This is the
// Diffie-Hellman safe-generator-friendly prime shape.
func ProbablePrimeDH(bits int, add, rem []Word, safe bool, checks int, doTrial bool, randBytes RandBytes) ([]Word, error) {
	effectiveRem := mpn.Norm(rem)
	if len(effectiveRem) == 0 {
		if safe {
			effectiveRem = []Word{3}
		} else {
			effectiveRem = []Word{1}
		}
	}
	add = mpn.Norm(add)

	for {
		nWords := (bits + int(limb.W) - 1) / int(limb.W)
		buf := make([]byte, nWords*int(limb.W)/8)
		r := make([]Word, nWords)
		if err := randBytes(buf); err != nil {
			return nil, err
		}
		wordsFromBytes(r, buf)
		maskTopBits(r, bits)
		setBit(r, bits-1)

		_, rModAdd, err := mpn.DivMod(make([]Word, len(r)+1), make([]Word, len(add)), r, add)
		if err != nil {
			return nil, err
		}
		base, err := mpn.Sub(make([]Word, len(r)), r, rModAdd)
		if err != nil {
			return nil, err
		}
		base, err = mpn.Add(make([]Word, len(base)+1), base, effectiveRem)
		if err != nil {
			return nil, err
		}
		if mpn.BitLen(base) != bits {
			continue
		}

		found, err := dhSkipSearch(&base, add, bits, checks, doTrial, randBytes)
		if err != nil {
			return nil, err
		}
		if !found {
			mpilog.L.Debugw("dh-constrained search exhausted skip budget, regenerating", "bits", bits)
			continue
		}

		if safe {
			half, err := halveMinusOne(base)
			if err != nil {
				return nil, err
			}
			okHalf, err := IsPrime(half, checks, doTrial, randBytes)
			if err != nil {
				return nil, err
			}
			if !okHalf {
				continue
			}
		}
		return mpn.Norm(base), nil
	}
}

// dhSkipSearch walks base by multiples of add, testing each candidate,
// up to maxDHSkips steps or until the bit length would grow past
// bits, whichever comes first.
func dhSkipSearch(base *[]Word, add []Word, bits, checks int, doTrial bool, randBytes RandBytes) (bool, error) {
	for skip := 0; skip < maxDHSkips; skip++ {
		if !doTrial || !trialDivide(*base) {
			ok, err := IsPrime(*base, checks, false, randBytes)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		next, err := mpn.Add(make([]Word, len(*base)+len(add)+1), *base, add)
		if err != nil {
			return false, err
		}
		if mpn.BitLen(next) != bits {
			return false, nil
		}
		*base = next
	}
	return false, nil
}

// halveMinusOne computes (r-1)/2, the safe-prime companion value.
func halveMinusOne(r []Word) ([]Word, error) {
	dec, err := mpn.DecW(make([]Word, len(r)), r, 1)
	if err != nil {
		return nil, err
	}
	return mpn.Shr(make([]Word, len(dec)), dec, 1)
}

// generateCandidate implements the unconstrained
// probable-prime candidate loop: a random bits-bit odd value with its
// top two bits set (so a product of two such primes has exactly
// 2*bits bits), adjusted by a delta walk against the known-primes
// table until no table prime divides it. It returns (nil, nil) when
// the delta walk overflows its bound, signaling the caller to
// regenerate from scratch.
func generateCandidate(bits int, safe bool, randBytes RandBytes) ([]Word, error) {
	nWords := (bits + int(limb.W) - 1) / int(limb.W)
	buf := make([]byte, nWords*int(limb.W)/8)
	r := make([]Word, nWords)

	if err := randBytes(buf); err != nil {
		return nil, err
	}
	wordsFromBytes(r, buf)
	maskTopBits(r, bits)
	setBit(r, bits-1)
	setBit(r, bits-2)
	setBit(r, 0)
	if safe {
		setBit(r, 1)
	}

	mods := make([]Word, len(knownPrimes))
	for i, p32 := range knownPrimes {
		_, rem, err := mpn.DivW(make([]Word, len(r)), r, Word(p32))
		if err != nil {
			return nil, err
		}
		mods[i] = rem
	}

	maxPrime := Word(knownPrimes[len(knownPrimes)-1])
	deltaMax := limb.AllOnes - maxPrime
	step := Word(2)
	limit := Word(0)
	if safe {
		step = 4
		limit = 1
	}

	var delta Word
	for {
		changed := false
		for i, p32 := range knownPrimes {
			if i == 0 {
				// r + delta is odd by construction; skip 2.
				continue
			}
			p := Word(p32)
			if bits <= 31 {
				rd := r[0] + delta
				if p*p > rd {
					break
				}
			}
			m := (mods[i] + delta) % p
			if m <= limit {
				delta += step
				if delta > deltaMax {
					return nil, nil
				}
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}

	cand, err := mpn.IncW(make([]Word, len(r)+1), r, delta)
	if err != nil {
		return nil, err
	}
	cand = mpn.Norm(cand)
	if mpn.BitLen(cand) != bits {
		return nil, nil
	}
	return cand, nil
}

// setBit sets bit bitIdx (0 == least significant) of words.
func setBit(words []Word, bitIdx int) {
	limbIdx := bitIdx / int(limb.W)
	bitInLimb := uint(bitIdx % int(limb.W))
	words[limbIdx] |= Word(1) << bitInLimb
}

// maskTopBits clears every bit at or above position bits, so a
// randomly filled, limb-aligned buffer represents exactly a
// bits-bit value.
func maskTopBits(words []Word, bits int) {
	full := bits / int(limb.W)
	rem := uint(bits % int(limb.W))
	if rem != 0 {
		mask := (Word(1) << rem) - 1
		if full < len(words) {
			words[full] &= mask
		}
		full++
	}
	for i := full; i < len(words); i++ {
		words[i] = 0
	}
}
