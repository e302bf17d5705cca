// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

package ascon

import "encoding/binary"

// rate is the sponge's rate in bytes: x0 alone. The remaining four lanes
// (256 bits) form the capacity and are never touched directly by absorb or
// squeeze.
const rate = 8

// cxofIV is the fixed 64-bit constant loaded into x0 at initialization. The
// remaining four lanes start at zero.
//
// Ascon's Hash/XOF-family IVs are not arbitrary: every published variant
// (Ascon-Hash256, Ascon-XOF128, Ascon-CXOF128) encodes its parameters as
// big-endian fields packed into the 64-bit word: byte 0 is reserved (0x00),
// byte 1 is the rate in bits (0x40 = 64), byte 2 is the round count a
// (0x0c = 12), byte 3 distinguishes the customizable variant (0x04 for
// CXOF, 0x00 for the plain hash/XOF that have no customization-string
// input), and the remaining bytes are either zero (output length is
// caller-chosen, as for an XOF) or the fixed digest length in bits
// (for Ascon-Hash256, 0x0100 = 256). This gives:
//
//	cxofIV = 0x00_40_0c_04_00_00_00_00
//
// ascon/cxof_test.go's known-answer vectors were computed from this value
// with an independent reference implementation of the algorithm in §4.2,
// not by reading the Go code back, so a wrong IV would show up as a test
// failure rather than a tautology.
const cxofIV uint64 = 0x00400c0400000000

// Rounds is the set of permutation round counts this package accepts.
// Rounds12 is the only value required for Ascon-CXOF128 test-vector
// compatibility; 6 and 8 are non-standard variants defined solely by this
// algorithm's construction rules.
const (
	Rounds6  = 6
	Rounds8  = 8
	Rounds12 = 12
)

// DigestSize is the canonical output length in bytes for Hash, matching
// Ascon-Hash256-derived usage.
const DigestSize = 32

// BytesRounds writes len(out) bytes of Ascon-CXOF128 output to out, absorbing
// message m and customization label z, using a permutation of n rounds. n
// is expected to be 6, 8, or 12; any other value falls back to 12 (see
// state.pRounds).
//
// out must not alias m or z. BytesRounds is a pure function of (m, z,
// len(out), n); it does not retain any of its arguments past the call.
func BytesRounds(out []byte, m, z []byte, n int) {
	bytesRounds(out, m, z, n, currentObserver)
}

// Bytes is BytesRounds with n = 12, the canonical Ascon-CXOF128 round count.
func Bytes(out []byte, m, z []byte) {
	BytesRounds(out, m, z, Rounds12)
}

// WithObserver runs fn with obs installed, then restores the observer that
// was installed before the call (the no-op default unless calls are
// nested). It exists so callers that need the debug trace described by
// Observer don't have to thread an Observer through every call; ordinary
// use of BytesRounds/Bytes/BitsRounds/Bits never needs it.
//
// WithObserver is not safe for concurrent use: it mutates a package-level
// variable for the duration of fn. It is meant for single-threaded debug
// sessions (cmd/asconcxof -v), not for production call sites.
func WithObserver(obs Observer, fn func()) {
	prev := currentObserver
	currentObserver = obs
	defer func() { currentObserver = prev }()
	fn()
}

var currentObserver Observer = NoopObserver

func bytesRounds(out []byte, m, z []byte, n int, obs Observer) {
	var s state

	// Step 1: initialize.
	s[0] = cxofIV
	s.pRounds(n)
	obs.State("initialization", s)

	// Step 2: absorb label length, in bits, mod 2^64.
	cslen := uint64(len(z))
	s[0] ^= cslen * 8
	s.pRounds(n)
	obs.State("absorb cs length", s)

	// Step 3: absorb the customization label, full blocks then one final
	// padded block (always present, even when z is empty).
	absorb(&s, z, n, "cs", obs)

	// Step 4: absorb the message, same shape as step 3.
	absorb(&s, m, n, "plaintext", obs)

	// Step 5: squeeze.
	squeeze(&s, out, n, obs)
}

// absorb XORs in full rate-sized blocks of data into x0, permuting after
// each, then XORs in the final (possibly empty) block padded with a single
// 0x80 byte at the block's length, and permutes once more. This final
// padded absorb is unconditional: even when data is empty, one padding-only
// block is absorbed and permuted.
func absorb(s *state, data []byte, n int, label string, obs Observer) {
	for len(data) >= rate {
		s[0] ^= binary.LittleEndian.Uint64(data[:rate])
		obs.AbsorbBlock(label, data[:rate])
		s.pRounds(n)
		obs.State("absorb "+label, *s)
		data = data[rate:]
	}

	var block [rate]byte
	copy(block[:], data)
	block[len(data)] = 0x80
	s[0] ^= binary.LittleEndian.Uint64(block[:])
	obs.AbsorbBlock(label, data)
	s.pRounds(n)
	obs.State("pad "+label, *s)
}

// squeeze writes len(out) bytes from x0, permuting between full rate-sized
// blocks. No permutation follows the final block, whether it is full or
// partial.
func squeeze(s *state, out []byte, n int, obs Observer) {
	for len(out) > rate {
		binary.LittleEndian.PutUint64(out[:rate], s[0])
		obs.SqueezeBlock(out[:rate])
		s.pRounds(n)
		obs.State("squeeze output", *s)
		out = out[rate:]
	}

	var block [rate]byte
	binary.LittleEndian.PutUint64(block[:], s[0])
	copy(out, block[:len(out)])
	obs.SqueezeBlock(out)
}
