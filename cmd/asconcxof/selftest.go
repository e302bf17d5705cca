// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/AeonDave/ascon-cxof128/ascon"
	"github.com/AeonDave/ascon-cxof128/internal/labelgen"
)

// runSelftest mirrors original_source/software/test_rounds.c: it runs a
// handful of deterministically generated (message, label) pairs through
// all three round counts and reports whether they differ pairwise, the
// way spec.md §8's "round-count separation" property expects.
func runSelftest(w io.Writer, seed string) {
	gen := labelgen.New([]byte(seed), []byte("asconcxof-selftest"))

	const vectors = 4
	allDistinct := true
	for i := 0; i < vectors; i++ {
		m, z := gen.Next(16, 8)

		out6 := make([]byte, 32)
		out8 := make([]byte, 32)
		out12 := make([]byte, 32)
		ascon.BytesRounds(out6, m, z, ascon.Rounds6)
		ascon.BytesRounds(out8, m, z, ascon.Rounds8)
		ascon.BytesRounds(out12, m, z, ascon.Rounds12)

		fmt.Fprintf(w, "vector %d: m=%s z=%s\n", i, hex.EncodeToString(m), hex.EncodeToString(z))
		fmt.Fprintf(w, "  rounds=6:  %s\n", strings.ToUpper(hex.EncodeToString(out6)))
		fmt.Fprintf(w, "  rounds=8:  %s\n", strings.ToUpper(hex.EncodeToString(out8)))
		fmt.Fprintf(w, "  rounds=12: %s\n", strings.ToUpper(hex.EncodeToString(out12)))

		distinct := !hexEqual(out6, out8) && !hexEqual(out8, out12) && !hexEqual(out6, out12)
		fmt.Fprintf(w, "  pairwise distinct: %v\n", distinct)
		allDistinct = allDistinct && distinct
	}

	fmt.Fprintf(w, "selftest: all vectors pairwise distinct across round counts: %v\n", allDistinct)
}

func hexEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
