package ascon

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/AeonDave/ascon-cxof128/internal/labelgen"
	"github.com/go-quicktest/qt"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex %q: %v", s, err)
	}
	return b
}

// The TestKnownAnswer* tests below pin output bytes computed with an
// independent reimplementation of §4.2's algorithm (permutation, sponge,
// padding) kept outside this repository, not derived from this package's
// own output. They check the one property the self-consistency tests
// further down cannot: that this is actually Ascon-CXOF128 with the
// documented IV, not merely an internally consistent sponge. If cxofIV is
// ever changed, every vector below must be recomputed against that
// independent implementation, not copied from a new run of this package.

func TestKnownAnswerEmptyInputs(t *testing.T) {
	want := mustHex(t, "5eb2216ae5a0d7cb941ef85face278ddef61d43ffb03ce03c606eae50331ba02")
	out := make([]byte, 32)
	Bytes(out, nil, nil)
	qt.Assert(t, qt.DeepEquals(out, want))
}

func TestKnownAnswerABC32(t *testing.T) {
	want := mustHex(t, "bc1a360e5709960294f826375bc50c3385213ecc9b96815bee27f302c9c1d8f9")
	out := make([]byte, 32)
	Bytes(out, []byte("abc"), nil)
	qt.Assert(t, qt.DeepEquals(out, want))
}

// TestKnownAnswerABC64Prefix checks the 64-byte vector for "abc" and that
// its first 32 bytes equal the 32-byte vector above, per spec.md §8's
// prefix-consistency vector.
func TestKnownAnswerABC64Prefix(t *testing.T) {
	want := mustHex(t, "bc1a360e5709960294f826375bc50c3385213ecc9b96815bee27f302c9c1d8f9"+
		"c2da13e7aff6e05cfe82daf11ebce4a023156671e1a0a6e21cde26dbcfad6ab1")
	out := make([]byte, 64)
	Bytes(out, []byte("abc"), nil)
	qt.Assert(t, qt.DeepEquals(out, want))
	qt.Assert(t, qt.DeepEquals(out[:32], mustHex(t, "bc1a360e5709960294f826375bc50c3385213ecc9b96815bee27f302c9c1d8f9")))
}

// TestKnownAnswerRoundCountsDiffer pins the exact n=6 and n=8 outputs for
// (M="abc", Z=""), not just that they differ from each other and from n=12
// (TestRoundCountSeparation already checks that property-wise).
func TestKnownAnswerRoundCountsDiffer(t *testing.T) {
	want6 := mustHex(t, "7b972d68fb00f12138dfbad669031e773056e37af4e31b9f185236ee1c86fbda")
	want8 := mustHex(t, "9fe76a63dd4f0b7106f97cc3b660c10908338a19967eeb46f7e043c8dd134d37")

	out6 := make([]byte, 32)
	out8 := make([]byte, 32)
	BytesRounds(out6, []byte("abc"), nil, Rounds6)
	BytesRounds(out8, []byte("abc"), nil, Rounds8)

	qt.Assert(t, qt.DeepEquals(out6, want6))
	qt.Assert(t, qt.DeepEquals(out8, want8))
}

// TestKnownAnswerSeventeenBits pins spec.md §8's bit-mask vector: 17 bits
// on (M="msg", Z="label") writes 3 bytes whose last byte is 0x80 (top bit
// set, low 7 bits cleared).
func TestKnownAnswerSeventeenBits(t *testing.T) {
	want := mustHex(t, "13aa80")
	out := make([]byte, 3)
	Bits(out, []byte("msg"), []byte("label"), 17)
	qt.Assert(t, qt.DeepEquals(out, want))
}

func TestDeterminism(t *testing.T) {
	g := labelgen.New([]byte("determinism-seed"), []byte("cxof-test"))
	m, z := g.Next(37, 13)

	out1 := make([]byte, 48)
	out2 := make([]byte, 48)
	Bytes(out1, m, z)
	Bytes(out2, m, z)

	qt.Assert(t, qt.DeepEquals(out1, out2))
}

// TestPrefixConsistency checks spec.md §8: xof(outlen1) is a prefix of
// xof(outlen2) for outlen1 <= outlen2, since squeezing is a linear stream.
func TestPrefixConsistency(t *testing.T) {
	g := labelgen.New([]byte("prefix-seed"), []byte("cxof-test"))
	m, z := g.Next(20, 9)

	lengths := []int{0, 1, 7, 8, 9, 16, 17, 64, 200}
	full := make([]byte, lengths[len(lengths)-1])
	Bytes(full, m, z)

	for _, l := range lengths {
		out := make([]byte, l)
		Bytes(out, m, z)
		if !bytes.Equal(out, full[:l]) {
			t.Fatalf("outlen=%d is not a prefix of the longest output", l)
		}
	}
}

// TestDomainSeparationByLabel checks spec.md §8: distinct labels produce
// distinct output with overwhelming probability.
func TestDomainSeparationByLabel(t *testing.T) {
	g := labelgen.New([]byte("label-sep-seed"), []byte("cxof-test"))
	m, _ := g.Next(24, 0)
	labels := g.Labels(8, 16)

	seen := make(map[string]bool, len(labels))
	for _, z := range labels {
		out := make([]byte, 32)
		Bytes(out, m, z)
		key := string(out)
		if seen[key] {
			t.Fatalf("two distinct labels produced the same output for label %x", z)
		}
		seen[key] = true
	}
}

// TestRoundCountSeparation mirrors the source's test_rounds: on input
// "abc" with an empty label, outputs for n=6, 8, 12 must differ pairwise.
func TestRoundCountSeparation(t *testing.T) {
	m := []byte("abc")
	out6 := make([]byte, 32)
	out8 := make([]byte, 32)
	out12 := make([]byte, 32)

	BytesRounds(out6, m, nil, Rounds6)
	BytesRounds(out8, m, nil, Rounds8)
	BytesRounds(out12, m, nil, Rounds12)

	if bytes.Equal(out6, out8) {
		t.Error("rounds 6 and 8 produced identical output")
	}
	if bytes.Equal(out8, out12) {
		t.Error("rounds 8 and 12 produced identical output")
	}
	if bytes.Equal(out6, out12) {
		t.Error("rounds 6 and 12 produced identical output")
	}
}

// TestUnknownRoundsFallsBackToTwelve checks the §4.1/§7/§9 fallback policy.
func TestUnknownRoundsFallsBackToTwelve(t *testing.T) {
	m, z := []byte("abc"), []byte("")
	out12 := make([]byte, 32)
	outUnknown := make([]byte, 32)

	BytesRounds(out12, m, z, Rounds12)
	BytesRounds(outUnknown, m, z, 7)

	qt.Assert(t, qt.DeepEquals(outUnknown, out12))
}

// TestEightByteLabelBoundary checks spec.md §8's boundary scenario
// 3: a label of exactly 8 bytes triggers one full-block absorb followed by
// a padding-only final block, distinct from both a 7-byte and a 9-byte
// label.
func TestEightByteLabelBoundary(t *testing.T) {
	m := []byte("msg")
	z7 := []byte("1234567")
	z8 := []byte("12345678")
	z9 := []byte("123456789")

	out7 := make([]byte, 32)
	out8 := make([]byte, 32)
	out9 := make([]byte, 32)
	Bytes(out7, m, z7)
	Bytes(out8, m, z8)
	Bytes(out9, m, z9)

	if bytes.Equal(out7, out8) || bytes.Equal(out8, out9) || bytes.Equal(out7, out9) {
		t.Fatal("labels of length 7, 8, 9 must all hash differently")
	}
}

// TestEightByteMessageBoundary is the message-side analogue.
func TestEightByteMessageBoundary(t *testing.T) {
	z := []byte("z")
	m7 := []byte("1234567")
	m8 := []byte("12345678")
	m9 := []byte("123456789")

	out7 := make([]byte, 32)
	out8 := make([]byte, 32)
	out9 := make([]byte, 32)
	Bytes(out7, m7, z)
	Bytes(out8, m8, z)
	Bytes(out9, m9, z)

	if bytes.Equal(out7, out8) || bytes.Equal(out8, out9) || bytes.Equal(out7, out9) {
		t.Fatal("messages of length 7, 8, 9 must all hash differently")
	}
}

// TestEmptyInputsProduceStableOutput checks that nil and empty-but-non-nil
// slices are equivalent inputs; TestKnownAnswerEmptyInputs pins what that
// shared output actually is.
func TestEmptyInputsProduceStableOutput(t *testing.T) {
	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	Bytes(out1, nil, nil)
	Bytes(out2, []byte{}, []byte{})

	qt.Assert(t, qt.DeepEquals(out1, out2))
}

func TestOutputDoesNotAliasState(t *testing.T) {
	out := make([]byte, 64)
	Bytes(out, []byte("abc"), nil)

	// Calling again into a fresh buffer must reproduce the same bytes,
	// proving no call mutates shared/global state observable from outside.
	out2 := make([]byte, 64)
	Bytes(out2, []byte("abc"), nil)
	qt.Assert(t, qt.DeepEquals(out, out2))
}

func FuzzPrefixConsistency(f *testing.F) {
	f.Add([]byte("abc"), []byte(""), 32)
	f.Add([]byte(""), []byte(""), 0)
	f.Add([]byte("hello world"), []byte("label"), 100)

	f.Fuzz(func(t *testing.T, m, z []byte, n int) {
		if n < 0 {
			n = -n
		}
		n %= 256

		long := make([]byte, n+8)
		Bytes(long, m, z)

		short := make([]byte, n)
		Bytes(short, m, z)

		if !bytes.Equal(short, long[:n]) {
			t.Fatalf("prefix consistency violated for outlen=%d", n)
		}
	})
}
