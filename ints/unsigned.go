package ints

import (
	"math"
	"math/bits"

	"btoi.lol/swar"
)

// width describes an unsigned integer type to the shared parsing routine.
type width struct {
	// digits is the length of the decimal rendering of max. Shorter inputs
	// cannot overflow, inputs of exactly this length need one bound check and
	// longer ones must start with leading zeros.
	digits int
	max    uint64
	// exact decodes an input of exactly digits bytes.
	exact func(b []byte) (uint64, bool)
}

var (
	w8  = &width{digits: 3, max: math.MaxUint8}
	w16 = &width{digits: 5, max: math.MaxUint16}
	w32 = &width{digits: 10, max: math.MaxUint32}
	w64 = &width{digits: 20, max: math.MaxUint64, exact: exact20}
)

func init() {
	for _, w := range []*width{w8, w16, w32} {
		w.exact = bounded(w.max)
	}
}

// bounded returns an exact decoder for types whose longest rendering still
// fits in combine, which only has to compare the result against max.
func bounded(limit uint64) func(b []byte) (uint64, bool) {
	return func(b []byte) (v uint64, ok bool) {
		if v, ok = combine(b); !ok || v > limit {
			return 0, false
		}
		return
	}
}

// exact20 decodes a 20 digit uint64 as a 4 digit head weighted by 10^16 plus
// a 16 digit tail, with the multiply and the add both checked for carry.
func exact20(b []byte) (v uint64, ok bool) {
	head, ok := swar.Decode4(b)
	if !ok {
		return
	}
	tail, ok := swar.Decode16(b[4:])
	if !ok {
		return
	}
	hi, lo := bits.Mul64(uint64(head), pow10[16])
	if hi != 0 {
		return 0, false
	}
	var carry uint64
	if v, carry = bits.Add64(lo, tail, 0); carry != 0 {
		return 0, false
	}
	return v, true
}

// parse is the tiered decoder shared by every unsigned width up to 64 bits.
func parse(b []byte, w *width) (uint64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	if !fast {
		return fold(0, b, w.max)
	}
	switch n := len(b); {
	case n < w.digits:
		return combine(b)
	case n == w.digits:
		return w.exact(b)
	default:
		v, ok := w.exact(b[:w.digits])
		if !ok {
			return 0, false
		}
		return fold(v, b[w.digits:], w.max)
	}
}

// fold appends the digits in b to v one at a time, failing as soon as the
// value would pass limit.
func fold(v uint64, b []byte, limit uint64) (uint64, bool) {
	for _, c := range b {
		d, ok := swar.Decode1(c)
		if !ok || v > (limit-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	return v, true
}

// ParseUint8 decodes b as a decimal uint8.
func ParseUint8(b []byte) (uint8, bool) {
	v, ok := parse(b, w8)
	return uint8(v), ok
}

// ParseUint16 decodes b as a decimal uint16.
func ParseUint16(b []byte) (uint16, bool) {
	v, ok := parse(b, w16)
	return uint16(v), ok
}

// ParseUint32 decodes b as a decimal uint32.
func ParseUint32(b []byte) (uint32, bool) {
	v, ok := parse(b, w32)
	return uint32(v), ok
}

// ParseUint64 decodes b as a decimal uint64.
func ParseUint64(b []byte) (uint64, bool) { return parse(b, w64) }

// ParseUint decodes b as a decimal uint of the platform's word size.
func ParseUint(b []byte) (uint, bool) {
	if bits.UintSize == 32 {
		v, ok := ParseUint32(b)
		return uint(v), ok
	}
	v, ok := ParseUint64(b)
	return uint(v), ok
}
