package ints

import (
	"math/bits"

	"lukechampine.com/uint128"

	"btoi.lol/swar"
)

// digits128 is the length of the decimal rendering of the largest uint128.
const digits128 = 39

// mulAdd returns u*m + a, or false if the result does not fit 128 bits.
func mulAdd(u uint128.Uint128, m, a uint64) (uint128.Uint128, bool) {
	carry, lo := bits.Mul64(u.Lo, m)
	top, hi := bits.Mul64(u.Hi, m)
	hi, c := bits.Add64(hi, carry, 0)
	if top != 0 || c != 0 {
		return uint128.Zero, false
	}
	lo, c = bits.Add64(lo, a, 0)
	if hi, c = bits.Add64(hi, 0, c); c != 0 {
		return uint128.Zero, false
	}
	return uint128.New(lo, hi), true
}

// exact128 decodes 20 to 39 digits as a head of up to 19 digits followed by
// 19 digit groups, each pushed in with a checked multiply-add by 10^19. Only
// the 39 digit case can actually fail the check.
func exact128(b []byte) (u uint128.Uint128, ok bool) {
	head := len(b) % maxCombine
	if head == 0 {
		head = maxCombine
	}
	v, ok := combine(b[:head])
	if !ok {
		return uint128.Zero, false
	}
	u = uint128.From64(v)
	for b = b[head:]; len(b) > 0; b = b[maxCombine:] {
		if v, ok = combine(b[:maxCombine]); !ok {
			return uint128.Zero, false
		}
		if u, ok = mulAdd(u, pow10[maxCombine], v); !ok {
			return uint128.Zero, false
		}
	}
	return u, true
}

// fold128 appends the digits in b to u one at a time with checked arithmetic.
func fold128(u uint128.Uint128, b []byte) (uint128.Uint128, bool) {
	for _, c := range b {
		d, ok := swar.Decode1(c)
		if !ok {
			return uint128.Zero, false
		}
		if u, ok = mulAdd(u, 10, uint64(d)); !ok {
			return uint128.Zero, false
		}
	}
	return u, true
}

// ParseUint128 decodes b as a decimal unsigned 128-bit integer. Inputs short
// enough to fit a uint64 go through the 64-bit tiers and are widened.
func ParseUint128(b []byte) (uint128.Uint128, bool) {
	n := len(b)
	switch {
	case n == 0:
		return uint128.Zero, false
	case !fast:
		return fold128(uint128.Zero, b)
	case n <= maxCombine:
		v, ok := ParseUint64(b)
		return uint128.From64(v), ok
	case n <= digits128:
		return exact128(b)
	default:
		u, ok := exact128(b[:digits128])
		if !ok {
			return uint128.Zero, false
		}
		return fold128(u, b[digits128:])
	}
}
