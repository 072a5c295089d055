//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !windows && !js && !wasip1

// Package memlock best-effort locks the pages backing a Montgomery
// context's secret buffers (modulus, R, RR) so they are never swapped
// to disk, and scrubs them to zero before release: Montgomery
// destruction must zeroize modulus, R, RR, and k0 before freeing.
// Locking is advisory defense in depth: failure to lock is not
// treated as an error, since a process without CAP_IPC_LOCK (or
// running under a constrained container) still gets the zeroization
// guarantee, just not the no-swap guarantee.
package memlock

import "golang.org/x/sys/unix"

// Lock attempts to mlock the memory backing b. Errors are swallowed;
// callers proceed regardless, since locking is best effort.
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

// Unlock reverses a prior Lock. It is safe to call on memory that was
// never locked.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
