// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

// Command asconcxof is a command-line driver for the Ascon-CXOF128
// extendable-output function. It is an external collaborator, not part of
// the cryptographic core: argument parsing, hex decoding, and the debug
// trace are all ambient concerns that may be reshaped freely.
//
// By default it mirrors original_source/software/test_cxof_bits_hex.c:
// message and label are given as hex strings, and the output is a single
// uppercase hex line, convenient for automated test-vector comparison.
// With -text it instead mirrors test_cxof_bits.c: message and label are
// given as raw strings, and the output includes a hex dump and a bit
// string.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AeonDave/ascon-cxof128/ascon"
	"github.com/AeonDave/ascon-cxof128/internal/xofcache"
)

// labelWarnBytes mirrors crypto_hash.h's documented (non-enforced)
// recommendation to keep customization labels under 256 bytes. The core
// never checks this; only the CLI's -v mode warns about it.
const labelWarnBytes = 256

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "asconcxof: ", 0)

	fs := flag.NewFlagSet("asconcxof", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		outBits  = fs.Uint64("bits", 256, "requested output length, in bits")
		rounds   = fs.Int("rounds", ascon.Rounds12, "Ascon permutation rounds: 6, 8, or 12 (anything else falls back to 12)")
		text     = fs.Bool("text", false, "treat message/label arguments as raw text instead of hex")
		hashMode = fs.Bool("hash", false, "ignore -bits and -rounds; compute the fixed 32-byte hash wrapper")
		verbose  = fs.Bool("v", false, "print the sponge's absorb/squeeze trace to stderr")
		selftest = fs.String("selftest", "", "ignore positional arguments; run the round-count-separation selftest seeded by the given string")
		batch    = fs.Bool("batch", false, "ignore positional arguments; read \"msg_hex label_hex\" pairs from stdin, one per line, memoizing repeated pairs")
	)
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *selftest != "" {
		runSelftest(stdout, *selftest)
		return 0
	}

	if *batch {
		return runBatch(os.Stdin, stdout, logger, xofcache.New(), *outBits, *rounds, *hashMode, *verbose)
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return 2
	}

	msgArg, labelArg := fs.Arg(0), fs.Arg(1)

	var message, label []byte
	var err error
	if *text {
		message, label = []byte(msgArg), []byte(labelArg)
	} else {
		message, err = decodeHex(msgArg)
		if err != nil {
			logger.Printf("invalid message hex: %v", err)
			return 1
		}
		label, err = decodeHex(labelArg)
		if err != nil {
			logger.Printf("invalid label hex: %v", err)
			return 1
		}
	}

	if *verbose && len(label) > labelWarnBytes {
		logger.Printf("warning: customization label length %d > %d bytes; this is a recommendation only", len(label), labelWarnBytes)
	}

	obs := ascon.NoopObserver
	if *verbose {
		obs = &traceObserver{w: stderr}
	}

	if *hashMode {
		var digest [ascon.DigestSize]byte
		ascon.WithObserver(obs, func() {
			ascon.Hash(&digest, message)
		})
		fmt.Fprintln(stdout, strings.ToUpper(hex.EncodeToString(digest[:])))
		return 0
	}

	outBytes := (*outBits + 7) / 8
	out := make([]byte, outBytes)
	ascon.WithObserver(obs, func() {
		ascon.BitsRounds(out, message, label, int(*outBits), *rounds)
	})

	if *text {
		printText(stdout, out, int(*outBits))
		return 0
	}
	fmt.Fprintln(stdout, strings.ToUpper(hex.EncodeToString(out)))
	return 0
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Join(strings.Fields(s), "")
	return hex.DecodeString(s)
}

func printText(w io.Writer, out []byte, outBits int) {
	fmt.Fprintf(w, "out_bits: %d (bytes=%d)\n", outBits, len(out))
	fmt.Fprintln(w, "output (hex):")
	fmt.Fprintln(w, strings.ToUpper(hex.EncodeToString(out)))

	fmt.Fprintln(w, "bits:")
	rem := outBits % 8
	for i, b := range out {
		top := 7
		bottom := 0
		if i == len(out)-1 && rem != 0 {
			bottom = 8 - rem
		}
		for bit := top; bit >= bottom; bit-- {
			if b&(1<<uint(bit)) != 0 {
				fmt.Fprint(w, "1")
			} else {
				fmt.Fprint(w, "0")
			}
		}
	}
	fmt.Fprintln(w)
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags] <message> <label>\n", fs.Name())
	fmt.Fprintln(w, "  message and label are hex strings by default, raw text with -text.")
	fs.PrintDefaults()
}
