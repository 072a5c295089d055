//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prime

import (
	"testing"

	"github.com/markkurossi/mpi/internal/detrand"
	"github.com/markkurossi/mpi/mpn"
)

func detRandBytes(seed uint64) RandBytes {
	src := detrand.New(seed)
	return src.Bytes
}

// TestIsPrimeKnownTable covers the primality invariant on a sample of
// known-primes table entries, from the first (2) to the last (17863):
// each passes IsPrime.
func TestIsPrimeKnownTable(t *testing.T) {
	rb := detRandBytes(1)
	for _, p := range []uint32{2, 3, 5, 7, 11, 97, 997, 7919, 17863} {
		ok, err := IsPrime([]Word{Word(p)}, 0, true, rb)
		if err != nil {
			t.Fatalf("IsPrime(%d): %v", p, err)
		}
		if !ok {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
}

// TestIsPrimeProductOfTwoPrimesFails checks that a product of two
// distinct odd primes, each well outside the trial-sieve table, is
// reported composite.
func TestIsPrimeProductOfTwoPrimesFails(t *testing.T) {
	rb := detRandBytes(2)
	// Both factors, and their product, exceed isPrimeSmall's table
	// bound (maxSmallCandidate), so this exercises the full trial-sieve + Miller-Rabin
	// path rather than the small-table binary search.
	a, b := Word(99991), Word(99989)
	prod, err := mpn.Mul(make([]Word, 2), []Word{a}, []Word{b})
	if err != nil {
		t.Fatal(err)
	}
	ok, err := IsPrime(prod, 0, true, rb)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("IsPrime(%d*%d) = true, want false", a, b)
	}
}

func TestIsPrimeEvenAndTrivial(t *testing.T) {
	rb := detRandBytes(3)
	cases := []struct {
		a    Word
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{4, false},
	}
	for _, c := range cases {
		ok, err := IsPrime([]Word{c.a}, 0, true, rb)
		if err != nil {
			t.Fatalf("IsPrime(%d): %v", c.a, err)
		}
		if ok != c.want {
			t.Errorf("IsPrime(%d) = %v, want %v", c.a, ok, c.want)
		}
	}
}

func TestTrialDivideCatchesSmallComposite(t *testing.T) {
	composite := []Word{11 * 13}
	if !trialDivide(composite) {
		t.Error("trialDivide(11*13) = false, want true")
	}
	prime := []Word{104729}
	if trialDivide(prime) {
		t.Error("trialDivide(104729) = true, want false")
	}
}

func TestRandomInRangeBounds(t *testing.T) {
	rb := detRandBytes(4)
	lo := []Word{10}
	hi := []Word{1000}
	for i := 0; i < 50; i++ {
		got, err := RandomInRange(lo, hi, 1000, rb)
		if err != nil {
			t.Fatal(err)
		}
		if mpn.Cmp(got, lo) <= 0 || mpn.Cmp(got, hi) >= 0 {
			t.Fatalf("RandomInRange(%v,%v) = %v, out of bounds", lo, hi, got)
		}
	}
}

// TestProbablePrimeSmallBits generates a handful of small probable
// primes end to end and checks each against IsPrime with the full
// checks-per-bits schedule, and that the expected high bits are set.
func TestProbablePrimeSmallBits(t *testing.T) {
	rb := detRandBytes(5)
	const bits = 32
	for i := 0; i < 5; i++ {
		p, err := ProbablePrime(bits, false, 0, true, rb)
		if err != nil {
			t.Fatalf("ProbablePrime: %v", err)
		}
		if mpn.BitLen(p) != bits {
			t.Fatalf("ProbablePrime bit length = %d, want %d", mpn.BitLen(p), bits)
		}
		if p[0]&1 == 0 {
			t.Fatalf("ProbablePrime returned even value %v", p)
		}
		ok, err := IsPrime(p, 0, true, rb)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("ProbablePrime returned %v, IsPrime says false", p)
		}
	}
}

// TestSafePrimeSmallBits covers the safe-prime
// invariant: both p and (p-1)/2 must pass IsPrime.
func TestSafePrimeSmallBits(t *testing.T) {
	rb := detRandBytes(6)
	const bits = 24
	p, err := SafePrime(bits, 0, true, rb)
	if err != nil {
		t.Fatalf("SafePrime: %v", err)
	}
	ok, err := IsPrime(p, 0, true, rb)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("SafePrime returned non-prime %v", p)
	}
	half, err := halveMinusOne(p)
	if err != nil {
		t.Fatal(err)
	}
	okHalf, err := IsPrime(half, 0, true, rb)
	if err != nil {
		t.Fatal(err)
	}
	if !okHalf {
		t.Fatalf("SafePrime companion (p-1)/2 = %v is not prime", half)
	}
}

func TestMaskTopBits(t *testing.T) {
	words := []Word{Word(0xFFFFFFFFFFFFFFFF), Word(0xFFFFFFFFFFFFFFFF)}
	maskTopBits(words, 70)
	if mpn.BitLen(mpn.Norm(words)) != 70 {
		t.Errorf("maskTopBits(..., 70): bit length = %d, want 70", mpn.BitLen(mpn.Norm(words)))
	}
}

// TestProbablePrimeDHCongruence covers the DH-
// constrained invariant: the generated prime is congruent to rem
// modulo add.
func TestProbablePrimeDHCongruence(t *testing.T) {
	rb := detRandBytes(8)
	add := []Word{12}
	rem := []Word{5}
	const bits = 24
	p, err := ProbablePrimeDH(bits, add, rem, false, 0, true, rb)
	if err != nil {
		t.Fatalf("ProbablePrimeDH: %v", err)
	}
	if mpn.BitLen(p) != bits {
		t.Fatalf("ProbablePrimeDH bit length = %d, want %d", mpn.BitLen(p), bits)
	}
	_, r, err := mpn.DivMod(make([]Word, len(p)+1), make([]Word, len(add)), p, add)
	if err != nil {
		t.Fatal(err)
	}
	if mpn.Cmp(mpn.Norm(r), rem) != 0 {
		t.Fatalf("ProbablePrimeDH(add=%v, rem=%v) = %v, p mod add = %v", add, rem, p, r)
	}
	ok, err := IsPrime(p, 0, true, rb)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("ProbablePrimeDH returned non-prime %v", p)
	}
}

func TestSetBit(t *testing.T) {
	words := make([]Word, 2)
	setBit(words, 0)
	setBit(words, 64)
	if words[0]&1 == 0 {
		t.Error("setBit(0) did not set bit 0")
	}
	if words[1]&1 == 0 {
		t.Error("setBit(64) did not set bit 0 of the second limb")
	}
}
