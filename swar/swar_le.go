//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package swar

import (
	"encoding/binary"
)

// Lane masks. Each constant repeats one byte value across every lane of the
// word it is used with.
const (
	ascii2  = 0x3030
	ascii4  = 0x30303030
	ascii8  = 0x3030303030303030
	high2   = 0xF0F0
	high4   = 0xF0F0F0F0
	high8   = 0xF0F0F0F0F0F0F0F0
	over2   = 0x7676
	over4   = 0x76767676
	over8   = 0x7676767676767676
	sign2   = 0x8080
	sign4   = 0x80808080
	sign8   = 0x8080808080808080
	pairs4  = 0x00FF00FF
	pairs8  = 0x00FF00FF00FF00FF
	quads8  = 0x0000FFFF0000FFFF
	mulPair = 10<<8 + 1     // lane0*10 + lane1 lands in the upper byte
	mulQuad = 100<<16 + 1   // pair0*100 + pair1 lands in the upper half
	mulOct  = 10000<<32 + 1 // quad0*10000 + quad1 lands in the upper word
)

// A lane is invalid when, after removing the ASCII bias, it has any of its
// upper four bits set, or when adding 0x76 carries it past 0x7F (a value of 10
// through 15). Neither sum can carry into the next lane once the upper nibble
// is known to be clear, and when it is not clear the result is already
// non-zero.

func invalid2(w uint16) uint16 { return (w & high2) | ((w + over2) & sign2) }

func invalid4(w uint32) uint32 { return (w & high4) | ((w + over4) & sign4) }

func invalid8(w uint64) uint64 { return (w & high8) | ((w + over8) & sign8) }

// fold2 combines two digit lanes of a validated word; the most significant
// digit is in the low byte.
func fold2(w uint16) uint16 { return (w * mulPair) >> 8 }

func fold4(w uint32) uint32 {
	w = (w * mulPair) >> 8
	return ((w & pairs4) * mulQuad) >> 16
}

func fold8(w uint64) uint64 {
	w = (w * mulPair) >> 8
	w = ((w & pairs8) * mulQuad) >> 16
	return ((w & quads8) * mulOct) >> 32
}

// Decode2 decodes the two ASCII digits in b[:2].
func Decode2(b []byte) (uint16, bool) {
	w := binary.LittleEndian.Uint16(b) ^ ascii2
	if invalid2(w) != 0 {
		return 0, false
	}
	return fold2(w), true
}

// Decode4 decodes the four ASCII digits in b[:4].
func Decode4(b []byte) (uint32, bool) {
	w := binary.LittleEndian.Uint32(b) ^ ascii4
	if invalid4(w) != 0 {
		return 0, false
	}
	return fold4(w), true
}

// Decode8 decodes the eight ASCII digits in b[:8].
func Decode8(b []byte) (uint64, bool) {
	w := binary.LittleEndian.Uint64(b) ^ ascii8
	if invalid8(w) != 0 {
		return 0, false
	}
	return fold8(w), true
}

// Decode16 decodes the sixteen ASCII digits in b[:16]. The window is handled
// as a pair of 64-bit lanes that are validated together, so the result is at
// most 9999999999999999 and always fits a uint64.
func Decode16(b []byte) (uint64, bool) {
	_ = b[15]
	hi := binary.LittleEndian.Uint64(b) ^ ascii8
	lo := binary.LittleEndian.Uint64(b[8:]) ^ ascii8
	if invalid8(hi)|invalid8(lo) != 0 {
		return 0, false
	}
	return fold8(hi)*100_000_000 + fold8(lo), true
}
