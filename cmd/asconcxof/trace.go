// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
)

// traceObserver prints the same per-step trace as
// original_source/software/hash.c's printstate/printbytes calls, gated
// behind -v. It implements ascon.Observer.
type traceObserver struct {
	w io.Writer
}

func (t *traceObserver) State(label string, lanes [5]uint64) {
	fmt.Fprintf(t.w, "%s:\n  x0=%016x x1=%016x x2=%016x x3=%016x x4=%016x\n",
		label, lanes[0], lanes[1], lanes[2], lanes[3], lanes[4])
}

func (t *traceObserver) AbsorbBlock(label string, block []byte) {
	fmt.Fprintf(t.w, "absorb %s: %s\n", label, hex.EncodeToString(block))
}

func (t *traceObserver) SqueezeBlock(block []byte) {
	fmt.Fprintf(t.w, "squeeze: %s\n", hex.EncodeToString(block))
}
