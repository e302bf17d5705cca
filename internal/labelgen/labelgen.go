// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

// Package labelgen deterministically derives (message, label) byte-string
// corpora from a seed, for the property-style tests that exercise
// Ascon-CXOF128's domain-separation and round-count-separation guarantees
// without hardcoding an arbitrary list of sample inputs.
package labelgen

import (
	"crypto/hkdf"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

type context string

const (
	contextMessage context = "ascon-cxof128/labelgen/message:v1"
	contextLabel   context = "ascon-cxof128/labelgen/label:v1"
)

// Generator produces an unbounded stream of deterministic (message, label)
// pairs from a fixed seed and salt. Two Generators built from the same seed
// and salt produce the same stream; this is what makes it useful for reproducible property
// tests.
type Generator struct {
	seed    []byte
	salt    []byte
	counter uint64
}

// New constructs a Generator. seed is the master secret; salt distinguishes
// independent generators sharing the same seed (for example, one per test
// name) the way NewHKDFKeyProvider's packageSalt distinguishes packages.
func New(seed, salt []byte) *Generator {
	if len(seed) == 0 {
		panic("labelgen: seed must not be empty")
	}
	if len(salt) == 0 {
		panic("labelgen: salt must not be empty")
	}
	return &Generator{
		seed: append([]byte(nil), seed...),
		salt: append([]byte(nil), salt...),
	}
}

func (g *Generator) derive(ctx context, size int) []byte {
	idx := g.counter
	g.counter++

	var info strings.Builder
	info.Grow(len(ctx) + 1 + len(g.salt) + 1 + 8)
	info.WriteString(string(ctx))
	info.WriteByte(0)
	info.Write(g.salt)
	info.WriteByte(0)
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], idx)
	info.Write(counterBytes[:])

	material, err := hkdf.Key(sha256.New, g.seed, g.salt, info.String(), size)
	if err != nil {
		panic(fmt.Sprintf("labelgen: hkdf derivation failed: %v", err))
	}
	return material
}

// Next returns the next (message, label) pair, with message msgLen bytes
// long and label labelLen bytes long. Successive calls on the same
// Generator never repeat: each draws from a monotonically advancing HKDF
// counter.
func (g *Generator) Next(msgLen, labelLen int) (message, label []byte) {
	message = g.derive(contextMessage, msgLen)
	label = g.derive(contextLabel, labelLen)
	return message, label
}

// Labels returns n distinct labels of the given length, for tests that hold
// a message fixed and vary only the customization label (the "domain
// separation by label" property).
func (g *Generator) Labels(n, labelLen int) [][]byte {
	labels := make([][]byte, n)
	for i := range labels {
		labels[i] = g.derive(contextLabel, labelLen)
	}
	return labels
}
