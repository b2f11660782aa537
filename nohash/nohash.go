// Package nohash is a pass-through hash for keys that are already integers,
// such as IDs and counters decoded by package ints. The hash of a key is the
// key itself.
package nohash

import (
	"encoding/binary"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/constraints"
)

// Sum returns k unchanged. The seed is ignored.
func Sum[K constraints.Integer](k K, _ uint64) uint64 { return uint64(k) }

// NewMap returns a concurrent map that hashes its integer keys with Sum.
func NewMap[K constraints.Integer, V any]() *xsync.MapOf[K, V] {
	return xsync.NewMapOfWithHasher[K, V](Sum[K])
}

// Hash is a hash.Hash64 whose state is the integer written to it. Bytes are
// shifted in big-endian order so that writing the 8 byte encoding of a uint64
// yields that uint64.
type Hash struct{ v uint64 }

func (h *Hash) Write(p []byte) (int, error) {
	for _, c := range p {
		h.v = h.v<<8 | uint64(c)
	}
	return len(p), nil
}

// WriteUint64 replaces the state with v.
func (h *Hash) WriteUint64(v uint64) { h.v = v }

func (h *Hash) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, h.v) }
func (h *Hash) Sum64() uint64       { return h.v }
func (h *Hash) Reset()              { h.v = 0 }
func (h *Hash) Size() int           { return 8 }
func (h *Hash) BlockSize() int      { return 8 }
