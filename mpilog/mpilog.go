//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpilog wires structured logging into the montgomery and
// prime packages. Logging is restricted to operationally interesting,
// public-only events: context lifecycle and prime-generation retry
// counts. Nothing here may be called from a path that branches on
// secret data, since timing must depend only on public parameters,
// so no log call appears inside an exponentiation loop or a
// Montgomery reduction.
package mpilog

import "go.uber.org/zap"

// L is the package-level logger. It defaults to a no-op logger so
// that importing this package has no observable effect until an
// embedding application calls SetLogger; once installed the reference
// is treated as immutable for the remainder of the process, matching
// the "no global mutable state" rule of the (the log
// destination is configuration, not arithmetic state).
var L = zap.NewNop().Sugar()

// SetLogger installs the logger used for lifecycle and retry
// diagnostics across this module.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	L = l
}
