//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package limb

import "testing"

func TestAddCCSubCBRoundTrip(t *testing.T) {
	vals := []Word{0, 1, 2, AllOnes, AllOnes - 1, 0x5555555555555555}
	for _, a := range vals {
		for _, b := range vals {
			sum, cout := AddCC(a, b, 0)
			diff, bout := SubCB(sum, b, 0)
			if diff != a || bout != cout {
				t.Errorf("AddCC/SubCB mismatch a=%#x b=%#x sum=%#x cout=%v diff=%#x bout=%v",
					a, b, sum, cout, diff, bout)
			}
		}
	}
}

func TestMulWWAgreesWithGeneric(t *testing.T) {
	vals := []Word{0, 1, 2, AllOnes, AllOnes - 1, 0x123456789abcdef0 & AllOnes}
	for _, a := range vals {
		for _, b := range vals {
			hi1, lo1 := MulWW(a, b)
			hi2, lo2 := MulWWGeneric(a, b)
			if hi1 != hi2 || lo1 != lo2 {
				t.Errorf("MulWW(%#x,%#x)=(%#x,%#x) but generic=(%#x,%#x)",
					a, b, hi1, lo1, hi2, lo2)
			}
		}
	}
}

func TestDiv2by1(t *testing.T) {
	d := Word(0x8000000000000001)
	n1, n0 := Word(0), Word(0x8000000000000000)
	q, r := Div2by1(n1, n0, d)
	if q != 0 || r != n0 {
		t.Errorf("Div2by1 = (%#x,%#x), want (0, %#x)", q, r, n0)
	}
}

func TestNLZNTZ(t *testing.T) {
	if NLZ(0) != W {
		t.Errorf("NLZ(0) = %d, want %d", NLZ(0), W)
	}
	if NTZ(0) != W {
		t.Errorf("NTZ(0) = %d, want %d", NTZ(0), W)
	}
	if NLZ(1) != W-1 {
		t.Errorf("NLZ(1) = %d, want %d", NLZ(1), W-1)
	}
	if NTZ(Word(1)<<10) != 10 {
		t.Errorf("NTZ(1<<10) = %d, want 10", NTZ(Word(1)<<10))
	}
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want Word }{
		{12, 18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{17, 13, 1},
		{1071, 462, 21},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsZeroMask(t *testing.T) {
	if IsZeroMask(0) != AllOnes {
		t.Errorf("IsZeroMask(0) != AllOnes")
	}
	if IsZeroMask(1) != 0 {
		t.Errorf("IsZeroMask(1) != 0")
	}
	if IsZeroMask(AllOnes) != 0 {
		t.Errorf("IsZeroMask(AllOnes) != 0")
	}
}

func TestMaskedCopySwap(t *testing.T) {
	a := []Word{1, 2, 3}
	b := []Word{4, 5, 6}
	dst := make([]Word, 3)

	MaskedCopy(dst, a, b, 3, AllOnes)
	for i := range dst {
		if dst[i] != a[i] {
			t.Errorf("MaskedCopy(mask=AllOnes)[%d] = %d, want %d", i, dst[i], a[i])
		}
	}
	MaskedCopy(dst, a, b, 3, 0)
	for i := range dst {
		if dst[i] != b[i] {
			t.Errorf("MaskedCopy(mask=0)[%d] = %d, want %d", i, dst[i], b[i])
		}
	}

	x := []Word{1, 2, 3}
	y := []Word{4, 5, 6}
	MaskedSwap(x, y, 3, 0)
	if x[0] != 1 || y[0] != 4 {
		t.Errorf("MaskedSwap(cond=0) swapped")
	}
	MaskedSwap(x, y, 3, 1)
	if x[0] != 4 || y[0] != 1 {
		t.Errorf("MaskedSwap(cond=1) did not swap: x=%v y=%v", x, y)
	}
}
