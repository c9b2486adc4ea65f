package rhmap

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key and a per-table seed to a 64-bit hash. The table reduces
// the result modulo its bucket count to pick the home bucket.
//
// The seed must influence the result. It is drawn from a secure random source
// per table instance (and redrawn on growth), so keys crafted to collide
// against a known hash function land in different buckets on every table.
type Hasher[K comparable] func(key K, seed uint64) uint64

// StringHash is the default string hasher: the djb2 hash by Dan Bernstein
// (h = ((h << 5) + h) XOR byte, starting from 5381), with the table seed
// folded in by addition before reduction. Go strings carry their length, so
// keys containing NUL bytes hash like any other.
func StringHash(key string, seed uint64) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = ((h << 5) + h) ^ uint64(key[i])
	}
	return h + seed
}

// XXHash is an alternate string hasher built on xxHash64. It mixes better
// than djb2 on short keys at a slightly higher fixed cost. xxhash exposes no
// seed parameter, so the table seed is folded in by XOR.
func XXHash(key string, seed uint64) uint64 {
	return xxhash.Sum64String(key) ^ seed
}

// randomSeed draws a fresh hash seed from the operating system's random
// source. crypto/rand does not fail on supported platforms; if it ever does,
// there is no reasonable table to hand back.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("rhmap: reading hash seed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
