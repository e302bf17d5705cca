// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

package ascon

// Hash computes the canonical fixed-length Ascon-CXOF128-derived digest of
// m: DigestSize bytes, empty customization label, 12 rounds. It is a thin
// convenience wrapper over Bytes.
func Hash(out *[DigestSize]byte, m []byte) {
	Bytes(out[:], m, nil)
}

// Sum returns the Hash digest of m as a new array, for callers that prefer
// a return value over an output parameter.
func Sum(m []byte) [DigestSize]byte {
	var out [DigestSize]byte
	Hash(&out, m)
	return out
}
