//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package montgomery implements Montgomery modular arithmetic over an
// odd modulus: context setup, CIOS reduction, the basic ring
// operations, and binary/fixed-window exponentiation in both
// variable-time and constant-time forms.
package montgomery

import (
	"unsafe"

	"github.com/hashicorp/go-multierror"

	"github.com/markkurossi/mpi/errno"
	"github.com/markkurossi/mpi/internal/memlock"
	"github.com/markkurossi/mpi/limb"
	"github.com/markkurossi/mpi/mpilog"
	"github.com/markkurossi/mpi/mpn"
)

// Word is a single limb, re-exported for callers that only import
// montgomery.
type Word = limb.Word

// Context holds a modulus and the Montgomery constants derived from
// it: R mod m, R² mod m, and the reduction factor k0. Every in-domain
// value this package produces or accepts is a
// fixed-length msize-limb slice, zero-padded rather than trimmed,
// since the reduction and table-scrambling code below indexes limbs
// by fixed position. A Context is owned by a single call chain at a
// time; it is not safe for concurrent use.
type Context struct {
	modulus []Word
	r       []Word // R mod m == mont(1)
	rr      []Word // R² mod m, the encoding multiplier
	k0      Word
	msize   int
}

// Create builds a Context for modulus, which must be odd and nonzero.
// It owns a private copy of modulus and best-effort mlocks its secret
// buffers: destruction must zeroize modulus, R, RR, and k0; this
// module additionally locks them against swap while live.
func Create(modulus []Word) (*Context, error) {
	m := mpn.Norm(modulus)
	if len(m) == 0 || m[0]&1 == 0 {
		return nil, errno.ErrInvalid
	}

	msize := len(m)
	ctx := &Context{
		modulus: make([]Word, msize),
		r:       make([]Word, msize),
		rr:      make([]Word, msize),
		k0:      computeK0(m[0]),
		msize:   msize,
	}
	copy(ctx.modulus, m)
	memlock.Lock(wordsBytes(ctx.modulus))
	memlock.Lock(wordsBytes(ctx.r))
	memlock.Lock(wordsBytes(ctx.rr))

	// R mod m: divide 2^(msize*W) by m.
	num := make([]Word, msize+1)
	num[msize] = 1
	_, rem, err := mpn.DivMod(make([]Word, msize+1), make([]Word, msize), num, ctx.modulus)
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	copy(ctx.r, rem)

	// R² mod m: divide 2^(2*msize*W) by m directly, rather than
	// squaring R mod m and reducing that, avoiding a second
	// multiply-sized scratch buffer at setup time.
	num2 := make([]Word, 2*msize+1)
	num2[2*msize] = 1
	_, rem2, err := mpn.DivMod(make([]Word, msize+2), make([]Word, msize), num2, ctx.modulus)
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	copy(ctx.rr, rem2)

	mpilog.L.Debugw("montgomery context created", "bits", mpn.BitLen(ctx.modulus))
	return ctx, nil
}

// Destroy zeroizes and unlocks the context's buffers. It is safe to
// call more than once.
func (c *Context) Destroy() {
	memlock.Zero(wordsBytes(c.modulus))
	memlock.Zero(wordsBytes(c.r))
	memlock.Zero(wordsBytes(c.rr))
	memlock.Unlock(wordsBytes(c.modulus))
	memlock.Unlock(wordsBytes(c.r))
	memlock.Unlock(wordsBytes(c.rr))
	c.k0 = 0
	mpilog.L.Debugw("montgomery context destroyed")
}

// Size returns the modulus's significant length in limbs.
func (c *Context) Size() int { return c.msize }

// Modulus returns the context's modulus as a read-only view. Callers
// must not mutate the returned slice.
func (c *Context) Modulus() []Word { return c.modulus }

// One returns mont(1) == R mod m, the Montgomery-domain representation
// of the multiplicative identity, used as the starting accumulator for
// exponentiation and as the constant-time binary ladder's dummy
// multiplicand.
func (c *Context) One() []Word {
	out := make([]Word, c.msize)
	copy(out, c.r)
	return out
}

// Validate reports every structural invariant violation in c at once,
// accumulated via go-multierror the same way mpn.Validate does.
func (c *Context) Validate() error {
	var result *multierror.Error
	if c.msize <= 0 || len(c.modulus) != c.msize || len(c.r) != c.msize || len(c.rr) != c.msize {
		result = multierror.Append(result, errno.ErrInvalid)
	}
	if c.msize > 0 && c.modulus[c.msize-1] == 0 {
		result = multierror.Append(result, errno.ErrInvalid)
	}
	if c.msize > 0 && c.modulus[0]&1 == 0 {
		result = multierror.Append(result, errno.ErrInvalid)
	}
	return result.ErrorOrNil()
}

// wordsBytes reinterprets ws as its backing bytes, for memlock's
// byte-oriented mlock/zero calls. The returned slice aliases ws; it is
// only ever used internally, on buffers this package itself owns.
func wordsBytes(ws []Word) []byte {
	if len(ws) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ws[0])), len(ws)*int(unsafe.Sizeof(ws[0])))
}
