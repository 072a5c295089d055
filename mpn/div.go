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

// DivW computes q = x / d, r = x mod d for a single-limb divisor d,
// using Div2by1 in a descending loop with carry propagation. Returns
// errno.ErrInvalid if d == 0.
func DivW(q, x []Word, d Word) ([]Word, Word, error) {
	x = Norm(x)
	if d == 0 {
		return nil, 0, errno.ErrInvalid
	}
	qq, err := grow(q, len(x))
	if err != nil {
		return nil, 0, err
	}
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		qq[i], r = limb.Div2by1(r, x[i], d)
	}
	return Norm(qq[:len(x)]), r, nil
}

// DivMod computes q = x / y, r = x mod y for arbitrary-length x, y.
// It dispatches on len(y): y == 0 is errno.ErrInvalid; x < y returns a
// zero quotient and r = x; a single-limb y goes through DivW;
// otherwise the classical schoolbook algorithm runs (Knuth TAOCP
// vol.2 4.3.1, Algorithm D). A reciprocal-approximation n-by-2 fast
// path is an assembly-oriented optimization of the m==2 case; this
// portable implementation folds m==2 into the general Algorithm D
// path exactly as Go's own math/big does.
func DivMod(q, r, x, y []Word) ([]Word, []Word, error) {
	xn, yn := Norm(x), Norm(y)
	if len(yn) == 0 {
		return nil, nil, errno.ErrInvalid
	}
	if Cmp(xn, yn) < 0 {
		qq, err := grow(q, 0)
		if err != nil {
			return nil, nil, err
		}
		rr, err := grow(r, len(xn))
		if err != nil {
			return nil, nil, err
		}
		copy(rr, xn)
		return qq, Norm(rr[:len(xn)]), nil
	}
	if len(yn) == 1 {
		qq, rem, err := DivW(q, xn, yn[0])
		if err != nil {
			return nil, nil, err
		}
		rr, err := grow(r, 1)
		if err != nil {
			return nil, nil, err
		}
		rr[0] = rem
		return qq, Norm(rr[:1]), nil
	}
	return divKnuth(q, r, xn, yn)
}

// shlRaw left-shifts x by 0 <= shift < W bits into z (len(z) ==
// len(x), no aliasing with x), returning the bits shifted out past
// the top limb.
func shlRaw(z, x []Word, shift uint) Word {
	if shift == 0 {
		copy(z, x)
		return 0
	}
	var carry Word
	for i := 0; i < len(x); i++ {
		v := x[i]
		z[i] = (v << shift) | carry
		carry = v >> (limb.W - shift)
	}
	return carry
}

// shrRaw right-shifts x by 0 <= shift < W bits into z (len(z) ==
// len(x)).
func shrRaw(z, x []Word, shift uint) {
	if shift == 0 {
		copy(z, x)
		return
	}
	var carry Word
	for i := len(x) - 1; i >= 0; i-- {
		v := x[i]
		z[i] = (v >> shift) | carry
		carry = v << (limb.W - shift)
	}
}

// divKnuth implements Algorithm D for len(v) >= 2, len(u) >= len(v).
// u, v are already normalized (trimmed, nonzero top limb).
func divKnuth(q, r, u, v []Word) ([]Word, []Word, error) {
	n := len(v)
	m := len(u) - n

	qq, err := grow(q, m+1)
	if err != nil {
		return nil, nil, err
	}

	// D1: normalize so v's top limb has its high bit set.
	shift := uint(limb.NLZ(v[n-1]))
	vn := v
	if shift > 0 {
		vn = make([]Word, n)
		shlRaw(vn, v, shift)
	}

	un := make([]Word, len(u)+1)
	un[len(u)] = shlRaw(un[:len(u)], u, shift)

	scratch := make([]Word, n+1)

	vTop := vn[n-1]
	vTop2 := vn[n-2]

	// D2-D7: process quotient digits from most to least significant.
	for j := m; j >= 0; j-- {
		// D3: estimate qhat. When the leading dividend limb equals
		// vTop exactly, qhat = B-1 is used without refinement (the D4
		// subtract-and-D6-add-back pair below absorbs the resulting
		// overestimate, at most once, exactly as Knuth's proof
		// allows).
		qhat := limb.AllOnes
		if ujn := un[j+n]; ujn != vTop {
			var rhat Word
			qhat, rhat = limb.Div2by1(ujn, un[j+n-1], vTop)
			for qhatTooBig(qhat, rhat, vTop2, un[j+n-2]) {
				qhat--
				prev := rhat
				rhat += vTop
				if rhat < prev {
					break
				}
			}
		}

		// D4: multiply and subtract.
		scratch[n] = MulAccW(scratch[:n+1], vn, qhat)
		borrow := SubEqual(un[j:j+n+1], un[j:j+n+1], scratch, n+1)
		if borrow != 0 {
			// D6: qhat was one too large; add back.
			c := AddEqual(un[j:j+n], un[j:j+n], vn, n)
			un[j+n] += c
			qhat--
		}
		qq[j] = qhat

		for i := range scratch {
			scratch[i] = 0
		}
	}

	qq = Norm(qq[:m+1])

	rr, err := grow(r, n)
	if err != nil {
		return nil, nil, err
	}
	shrRaw(rr[:n], un[:n], shift)
	return qq, Norm(rr[:n]), nil
}

// qhatTooBig reports whether qhat*vTop2 > rhat*2^W + ujn2, the D3
// two-limb refinement test.
func qhatTooBig(qhat, rhat, vTop2, ujn2 Word) bool {
	x1, x2 := limb.MulWW(qhat, vTop2)
	if x1 != rhat {
		return x1 > rhat
	}
	return x2 > ujn2
}
