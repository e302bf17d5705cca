// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

package ascon

// Observer receives a trace of the sponge's absorb/squeeze steps. It has no
// effect on the algorithm's output; it exists purely so callers such as
// cmd/asconcxof's -v flag can reproduce the reference implementation's
// printstate/printbytes debug trace without that trace being part of the
// core's observable contract.
//
// Implementations must not retain the byte slices passed to AbsorbBlock or
// SqueezeBlock beyond the call; the sponge reuses its internal buffers.
type Observer interface {
	// State is called after every permutation call, with a label describing
	// which step just ran ("initialization", "absorb cs", "squeeze output", ...).
	State(label string, lanes [5]uint64)
	// AbsorbBlock is called once per absorbed block, before the permutation.
	AbsorbBlock(label string, block []byte)
	// SqueezeBlock is called once per squeezed block, after it is written.
	SqueezeBlock(block []byte)
}

type noopObserver struct{}

func (noopObserver) State(string, [5]uint64)    {}
func (noopObserver) AbsorbBlock(string, []byte) {}
func (noopObserver) SqueezeBlock([]byte)        {}

// NoopObserver is the default Observer: it does nothing. Use it explicitly
// to restore default behavior after installing an observer via WithObserver.
var NoopObserver Observer = noopObserver{}
