//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpi

import (
	"math/rand"
	"testing"
)

func TestZeroCanonicalSign(t *testing.T) {
	z := FromWords(true, nil)
	if z.IsNeg() {
		t.Error("FromWords(true, nil) should collapse to non-negative zero")
	}
	if z.Sign() != 0 {
		t.Errorf("Sign() = %d, want 0", z.Sign())
	}
}

func TestAddSameSign(t *testing.T) {
	a := FromInt64(5)
	b := FromInt64(7)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Sign() != 1 || sum.Cmp(FromInt64(12)) != 0 {
		t.Errorf("5+7 = %v, want 12", sum)
	}

	na := FromInt64(-5)
	nb := FromInt64(-7)
	nsum, err := na.Add(nb)
	if err != nil {
		t.Fatal(err)
	}
	if nsum.Sign() != -1 || nsum.Cmp(FromInt64(-12)) != 0 {
		t.Errorf("-5+-7 = %v, want -12", nsum)
	}
}

func TestAddMixedSign(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{10, -3, 7},
		{-10, 3, -7},
		{3, -10, -7},
		{-3, 10, 7},
		{5, -5, 0},
	}
	for _, c := range cases {
		sum, err := FromInt64(c.a).Add(FromInt64(c.b))
		if err != nil {
			t.Fatal(err)
		}
		if sum.Cmp(FromInt64(c.want)) != 0 {
			t.Errorf("%d+%d = %v, want %d", c.a, c.b, sum, c.want)
		}
		if c.want == 0 && sum.IsNeg() {
			t.Errorf("%d+%d produced negative zero", c.a, c.b)
		}
	}
}

func TestSub(t *testing.T) {
	diff, err := FromInt64(3).Sub(FromInt64(10))
	if err != nil {
		t.Fatal(err)
	}
	if diff.Cmp(FromInt64(-7)) != 0 {
		t.Errorf("3-10 = %v, want -7", diff)
	}
}

func TestMulSignIsXOR(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{3, 4, 12},
		{-3, 4, -12},
		{3, -4, -12},
		{-3, -4, 12},
		{0, -4, 0},
	}
	for _, c := range cases {
		prod, err := FromInt64(c.a).Mul(FromInt64(c.b))
		if err != nil {
			t.Fatal(err)
		}
		if prod.Cmp(FromInt64(c.want)) != 0 {
			t.Errorf("%d*%d = %v, want %d", c.a, c.b, prod, c.want)
		}
		if c.want == 0 && prod.IsNeg() {
			t.Errorf("%d*%d produced negative zero", c.a, c.b)
		}
	}
}

// TestDivModC99Semantics covers the truncating
// C99 division: quotient sign is XOR, remainder sign is the
// dividend's sign, both verified against Go's native int64 / and %
// (which implement the same truncating convention).
func TestDivModC99Semantics(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2},
		{6, 3}, {-6, 3}, {6, -3}, {-6, -3},
		{0, 5},
	}
	for _, c := range cases {
		q, r, err := FromInt64(c.a).DivMod(FromInt64(c.b))
		if err != nil {
			t.Fatal(err)
		}
		wantQ := c.a / c.b
		wantR := c.a % c.b
		if q.Cmp(FromInt64(wantQ)) != 0 {
			t.Errorf("%d/%d quotient = %v, want %d", c.a, c.b, q, wantQ)
		}
		if r.Cmp(FromInt64(wantR)) != 0 {
			t.Errorf("%d%%%d remainder = %v, want %d", c.a, c.b, r, wantR)
		}
		if wantR == 0 && r.IsNeg() {
			t.Errorf("%d%%%d produced negative zero remainder", c.a, c.b)
		}
	}
}

func TestDivByZero(t *testing.T) {
	if _, _, err := FromInt64(5).DivMod(Zero()); err == nil {
		t.Error("DivMod by zero should return an error")
	}
}

func TestBytesRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		n := 1 + r.Intn(40)
		b := make([]byte, n)
		r.Read(b)
		b[0] |= 0x80 // ensure top byte nonzero so length round-trips exactly
		var z Int
		z.SetBytes(b)
		got := z.Bytes()
		if len(got) != len(b) {
			t.Fatalf("length mismatch: got %d want %d", len(got), len(b))
		}
		for i := range b {
			if got[i] != b[i] {
				t.Fatalf("byte %d mismatch: got %x want %x", i, got, b)
			}
		}
	}
}

func TestBytesZero(t *testing.T) {
	if got := Zero().Bytes(); len(got) != 0 {
		t.Errorf("Zero().Bytes() = %x, want empty", got)
	}
}

func TestHex(t *testing.T) {
	if got := FromInt64(255).Hex(); got != "FF" {
		t.Errorf("Hex(255) = %q, want FF", got)
	}
	if got := FromInt64(-255).Hex(); got != "-FF" {
		t.Errorf("Hex(-255) = %q, want -FF", got)
	}
	if got := Zero().Hex(); got != "0" {
		t.Errorf("Hex(0) = %q, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	z := FromInt64(42)
	if err := z.Validate(); err != nil {
		t.Errorf("Validate() on well-formed Int: %v", err)
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{1, 2, -1}, {2, 1, 1}, {5, 5, 0},
		{-1, 1, -1}, {1, -1, 1}, {-5, -5, 0},
		{-1, -2, 1}, {-2, -1, -1},
	}
	for _, c := range cases {
		if got := FromInt64(c.a).Cmp(FromInt64(c.b)); got != c.want {
			t.Errorf("Cmp(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
