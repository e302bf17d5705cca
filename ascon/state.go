// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

// Package ascon implements the Ascon-CXOF128 customizable extendable-output
// function defined by the Ascon v1.2 permutation family (NIST SP 800-232).
package ascon

import "math/bits"

// state is the 320-bit Ascon permutation state: five 64-bit lanes. The rate
// (x0) is the sole input/output window for absorption and squeezing; the
// capacity (x1..x4) is never touched directly by callers.
type state [5]uint64

// roundConstants holds the twelve constants used by P12, in order. Pn always
// uses the LAST n constants of this table, never the first n — P6 and P8 are
// suffixes of P12's schedule, not prefixes.
var roundConstants = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// round applies one Ascon round: constant addition, the bitsliced 5-bit
// S-box, and the linear diffusion layer.
func (s *state) round(rc uint64) {
	s[2] ^= rc

	s[0] ^= s[4]
	s[4] ^= s[3]
	s[2] ^= s[1]

	t0, t1, t2, t3, t4 := s[0], s[1], s[2], s[3], s[4]
	s[0] = t0 ^ (^t1 & t2)
	s[1] = t1 ^ (^t2 & t3)
	s[2] = t2 ^ (^t3 & t4)
	s[3] = t3 ^ (^t4 & t0)
	s[4] = t4 ^ (^t0 & t1)

	s[1] ^= s[0]
	s[0] ^= s[4]
	s[3] ^= s[2]
	s[2] = ^s[2]

	s[0] ^= bits.RotateLeft64(s[0], -19) ^ bits.RotateLeft64(s[0], -28)
	s[1] ^= bits.RotateLeft64(s[1], -61) ^ bits.RotateLeft64(s[1], -39)
	s[2] ^= bits.RotateLeft64(s[2], -1) ^ bits.RotateLeft64(s[2], -6)
	s[3] ^= bits.RotateLeft64(s[3], -10) ^ bits.RotateLeft64(s[3], -17)
	s[4] ^= bits.RotateLeft64(s[4], -7) ^ bits.RotateLeft64(s[4], -41)
}

// p12 applies the 12-round permutation.
func (s *state) p12() {
	for _, rc := range roundConstants {
		s.round(rc)
	}
}

// p8 applies the 8-round permutation: the last 8 constants of P12.
func (s *state) p8() {
	for _, rc := range roundConstants[4:] {
		s.round(rc)
	}
}

// p6 applies the 6-round permutation: the last 6 constants of P12.
func (s *state) p6() {
	for _, rc := range roundConstants[6:] {
		s.round(rc)
	}
}

// pRounds dispatches to P6, P8 or P12 by exact round count. Any other value
// falls back to P12 — the drop-in-compatible policy recommended for
// reimplementations of the reference software, since only three round
// counts are cryptographically meaningful.
func (s *state) pRounds(n int) {
	switch n {
	case 6:
		s.p6()
	case 8:
		s.p8()
	default:
		s.p12()
	}
}
