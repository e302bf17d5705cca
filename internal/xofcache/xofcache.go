// Copyright (c) 2025, The Garble Authors.
// See LICENSE for licensing information.

// Package xofcache memoizes Ascon-CXOF128 output by the call's own
// arguments, keyed with the module's own Hash rather than a secondary hash
// primitive — CXOF is keyless, so there is nothing to protect the way
// internal/cache protected garble's build cache with ASCON-128 AEAD; only
// the "derive a fixed-size key, look up, store" shape survives.
package xofcache

import (
	"encoding/binary"
	"sync"

	"github.com/AeonDave/ascon-cxof128/ascon"
)

// Cache memoizes outputs of ascon.BytesRounds keyed by (outlen, n, m, z).
// It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[[ascon.DigestSize]byte][]byte
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[[ascon.DigestSize]byte][]byte)}
}

// key derives a cache key from the full call shape by hashing a
// length-prefixed encoding of (outlen, n, m, z) with the module's own Hash.
// Length-prefixing keeps the encoding injective: without it "ab"+"c" and
// "a"+"bc" would hash identically.
func (c *Cache) key(outlen, n int, m, z []byte) [ascon.DigestSize]byte {
	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(outlen))
	binary.LittleEndian.PutUint64(header[8:16], uint64(n))

	buf := make([]byte, 0, len(header)+8+len(m)+8+len(z))
	buf = append(buf, header[:]...)
	buf = appendLenPrefixed(buf, m)
	buf = appendLenPrefixed(buf, z)

	return ascon.Sum(buf)
}

func appendLenPrefixed(buf, data []byte) []byte {
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], uint64(len(data)))
	buf = append(buf, lenBytes[:]...)
	return append(buf, data...)
}

// Get returns the cached output for (outlen, n, m, z), if present.
func (c *Cache) Get(outlen, n int, m, z []byte) (out []byte, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out, ok = c.entries[c.key(outlen, n, m, z)]
	return out, ok
}

// ComputeAndCache returns the cached output for (outlen, n, m, z) if
// present; otherwise it computes it with ascon.BytesRounds, stores it, and
// returns it.
func (c *Cache) ComputeAndCache(outlen, n int, m, z []byte) []byte {
	k := c.key(outlen, n, m, z)

	c.mu.RLock()
	if out, ok := c.entries[k]; ok {
		c.mu.RUnlock()
		return out
	}
	c.mu.RUnlock()

	out := make([]byte, outlen)
	ascon.BytesRounds(out, m, z, n)

	c.mu.Lock()
	c.entries[k] = out
	c.mu.Unlock()

	return out
}

// Len reports the number of distinct cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
