package ints

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// magnitude strips an optional leading sign. A lone byte is always treated
// as the magnitude so that "-" and "+" fail in the digit decoder.
func magnitude(b []byte) (neg bool, m []byte) {
	if len(b) < 2 {
		return false, b
	}
	switch b[0] {
	case '-':
		return true, b[1:]
	case '+':
		return false, b[1:]
	}
	return false, b
}

// signed decodes an optional sign and a magnitude of the unsigned width w,
// returning the two's complement bit pattern. The negative range reaches one
// further than the positive one: w.max/2 + 1 is only accepted after a '-'.
func signed(b []byte, w *width) (uint64, bool) {
	neg, m := magnitude(b)
	u, ok := parse(m, w)
	if !ok {
		return 0, false
	}
	ceil := w.max >> 1
	if neg {
		if u > ceil+1 {
			return 0, false
		}
		return -u, true
	}
	if u > ceil {
		return 0, false
	}
	return u, true
}

// ParseInt8 decodes b as a decimal int8 with an optional leading sign.
func ParseInt8(b []byte) (int8, bool) {
	v, ok := signed(b, w8)
	return int8(v), ok
}

// ParseInt16 decodes b as a decimal int16 with an optional leading sign.
func ParseInt16(b []byte) (int16, bool) {
	v, ok := signed(b, w16)
	return int16(v), ok
}

// ParseInt32 decodes b as a decimal int32 with an optional leading sign.
func ParseInt32(b []byte) (int32, bool) {
	v, ok := signed(b, w32)
	return int32(v), ok
}

// ParseInt64 decodes b as a decimal int64 with an optional leading sign.
func ParseInt64(b []byte) (int64, bool) {
	v, ok := signed(b, w64)
	return int64(v), ok
}

// ParseInt decodes b as a decimal int of the platform's word size.
func ParseInt(b []byte) (int, bool) {
	if bits.UintSize == 32 {
		v, ok := ParseInt32(b)
		return int(v), ok
	}
	v, ok := ParseInt64(b)
	return int(v), ok
}

// fits128 reports whether the magnitude u is in range for its sign.
func fits128(u uint128.Uint128, neg bool) bool {
	const top = 1 << 63
	return u.Hi < top || (neg && u.Hi == top && u.Lo == 0)
}

// ParseInt128 decodes b as a decimal signed 128-bit integer with an optional
// leading sign.
func ParseInt128(b []byte) (Int128, bool) {
	neg, m := magnitude(b)
	u, ok := ParseUint128(m)
	if !ok || !fits128(u, neg) {
		return Int128{}, false
	}
	i := Int128FromBits(u)
	if neg {
		i = i.Neg()
	}
	return i, true
}
