//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package montgomery

import (
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpn"
)

// cacheLineBytes and limbBytes bound the constant-time
// table's window size, capped by log2(cache line / limb), so the
// table the constant-time variants build and linearly scan on every
// lookup never grows past a handful of cache lines.
const cacheLineBytes = 64

// windowSize picks the fixed-window width for an exponent of the
// given public bit length, per the table, capped by
// the cache-line bound above. The cap dominates the table's upper
// entries (log2(64/8) == 3), which is the literal algorithm as
// written; see DESIGN.md for the tradeoff this implies.
func windowSize(bitLen int) uint {
	w := uint(1)
	switch {
	case bitLen > 4096:
		w = 6
	case bitLen > 2666:
		w = 5
	case bitLen > 717:
		w = 4
	case bitLen > 178:
		w = 3
	case bitLen > 41:
		w = 2
	}
	limbBytes := uint(limb.W / 8)
	capW := uint(0)
	for (uint(1) << capW) < cacheLineBytes/limbBytes {
		capW++
	}
	if w > capW {
		w = capW
	}
	if w == 0 {
		w = 1
	}
	return w
}

// bitAt returns bit bitIndexFromLSB (0 == least significant) of
// exponent, or 0 past its significant length. Safe for variable-time
// use (exponent is public here); the length-dependent branch below is
// exactly the "skip leading zero bits" optimization that is safe for
// the non-secret exponent path.
func bitAt(exponent []Word, bitIndexFromLSB int) Word {
	limbIdx := bitIndexFromLSB / int(limb.W)
	bitIdx := uint(bitIndexFromLSB % int(limb.W))
	if limbIdx < 0 || limbIdx >= len(exponent) {
		return 0
	}
	return (exponent[limbIdx] >> bitIdx) & 1
}

// bitAtFixed is bitAt without the length-dependent branch: callers
// must guarantee bitIndexFromLSB < len(exponent)*W themselves (by
// sizing exponent to a fixed public limb count). Used by the
// constant-time exponentiation variants, where exponent holds secret
// bits and any branch keyed on its trimmed length would leak them.
func bitAtFixed(exponent []Word, bitIndexFromLSB int) Word {
	limbIdx := bitIndexFromLSB / int(limb.W)
	bitIdx := uint(bitIndexFromLSB % int(limb.W))
	return (exponent[limbIdx] >> bitIdx) & 1
}

// ExpBinary computes base^exponent mod m in the Montgomery domain
// using variable-time left-to-right binary exponentiation, suitable
// for public exponents only. Both base and the
// result are in Montgomery domain; exponent is a plain limb sequence.
func (c *Context) ExpBinary(base, exponent []Word) []Word {
	n := c.msize
	exponent = mpn.Norm(exponent)
	if len(exponent) == 0 {
		return c.One()
	}
	if isZeroWords(base) == limb.AllOnes {
		return make([]Word, n)
	}

	bitLen := mpn.BitLen(exponent)
	y := c.One()
	for i := bitLen - 1; i >= 0; i-- {
		y = c.Square(y)
		if bitAt(exponent, i) != 0 {
			y = c.Mul(y, base)
		}
	}
	return y
}

// ExpBinaryConstTime computes base^exponent mod m using the
// constant-time left-to-right binary ladder:
// every bit position squares y and then unconditionally multiplies by
// select(bit, base, mont(1)), so control flow and memory access never
// depend on a secret bit. bits is the public exponent bit length to
// iterate (e.g. the modulus bit length for an RSA private exponent);
// exponent must have at least ceil(bits/W) limbs.
func (c *Context) ExpBinaryConstTime(base, exponent []Word, bits int) []Word {
	n := c.msize
	one := c.One()
	y := c.One()
	operand := make([]Word, n)
	for i := bits - 1; i >= 0; i-- {
		y = c.Square(y)
		mpn.CondCopy(operand, base, one, n, bitAtFixed(exponent, i))
		y = c.Mul(y, operand)
	}
	return y
}

// ExpWindow computes base^exponent mod m using variable-time
// fixed-window exponentiation: suitable for
// public exponents. Window width is chosen from exponent's bit length
// via windowSize.
func (c *Context) ExpWindow(base, exponent []Word) []Word {
	n := c.msize
	exponent = mpn.Norm(exponent)
	if len(exponent) == 0 {
		return c.One()
	}
	if isZeroWords(base) == limb.AllOnes {
		return make([]Word, n)
	}

	bitLen := mpn.BitLen(exponent)
	w := windowSize(bitLen)
	table := c.buildTable(base, w)

	y := c.One()
	i := bitLen - 1
	for i >= 0 {
		wBits := w
		if uint(i+1) < w {
			wBits = uint(i + 1)
		}
		for b := uint(0); b < wBits; b++ {
			y = c.Square(y)
		}
		idx := 0
		for b := 0; b < int(wBits); b++ {
			idx <<= 1
			idx |= int(bitAt(exponent, i-b))
		}
		i -= int(wBits)
		if idx != 0 {
			y = c.Mul(y, table[idx])
		}
	}
	return y
}

// ExpWindowConstTime computes base^exponent mod m using constant-time
// fixed-window exponentiation over the precomputed table: mpn.LookupTable
// scans every table row on every window,
// masking with an index-equality test, so the memory access pattern
// is independent of the window's value. The table holds one slice per
// entry; entries are not interleaved in memory. bits is the public exponent
// bit length, as in ExpBinaryConstTime.
func (c *Context) ExpWindowConstTime(base, exponent []Word, bits int) []Word {
	n := c.msize
	w := windowSize(bits)
	table := c.buildTable(base, w)

	y := c.One()
	sel := make([]Word, n)
	numWindows := (bits + int(w) - 1) / int(w)
	for wi := numWindows - 1; wi >= 0; wi-- {
		for b := uint(0); b < w; b++ {
			y = c.Square(y)
		}
		topBit := wi*int(w) + int(w) - 1
		idx := 0
		for b := 0; b < int(w); b++ {
			bitIdx := topBit - b
			idx <<= 1
			if bitIdx < bits {
				idx |= int(bitAtFixed(exponent, bitIdx))
			}
		}
		mpn.LookupTable(sel, table, idx)
		y = c.Mul(y, sel)
	}
	return y
}

// buildTable precomputes base^0 .. base^(2^w - 1) in Montgomery
// domain, the shared setup for both fixed-window variants.
func (c *Context) buildTable(base []Word, w uint) [][]Word {
	size := 1 << w
	table := make([][]Word, size)
	table[0] = c.One()
	if size > 1 {
		table[1] = c.pad(base)
	}
	for i := 2; i < size; i++ {
		table[i] = c.Mul(table[i-1], base)
	}
	return table
}
