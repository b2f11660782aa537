// Package ints converts between native integers and their ASCII decimal form
// without allocating and without going through strings.
//
// Decoding is the fast direction. Each width has a tiered parser: inputs are
// cut into 1, 2, 4, 8 and 16 byte windows decoded word-parallel by package
// swar, the windows are weighted by powers of ten and summed, and only the
// longest possible input for a type needs an overflow check. Inputs longer
// than that are accepted when they carry leading zeros. Every parser reports
// failure with a false second result, whether the input was malformed or out
// of range.
//
// Encoding uses a base of 10000 and a lookup table of four digit groups.
package ints

import (
	"btoi.lol/errorf"
)

// T is a reusable holder for a uint64 being encoded or decoded.
type T struct {
	N uint64
}

// New returns a T holding n converted to uint64.
func New[V uint | int | uint64 | uint32 | uint16 | uint8 | int64 | int32 | int16 | int8](n V) *T {
	return &T{uint64(n)}
}

// Uint64 returns the held value.
func (n *T) Uint64() uint64 { return n.N }

// Int64 returns the held value reinterpreted as an int64.
func (n *T) Int64() int64 { return int64(n.N) }

// Uint16 returns the low 16 bits of the held value.
func (n *T) Uint16() uint16 { return uint16(n.N) }

// Marshal appends the decimal form of n to dst.
func (n *T) Marshal(dst []byte) (b []byte) { return AppendUint(dst, n.N) }

// Unmarshal reads a positive integer no larger than math.MaxUint64, skipping
// any non-numeric content before it, and returns what follows the digits.
// Leading zeros are part of the number.
func (n *T) Unmarshal(b []byte) (r []byte, err error) {
	if len(b) < 1 {
		err = errorf.E("zero length number")
		return
	}
	start := -1
	for i, v := range b {
		if v >= '0' && v <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		err = errorf.E("no number in %q", b)
		return
	}
	b = b[start:]
	end := 0
	for ; end < len(b) && b[end] >= '0' && b[end] <= '9'; end++ {
	}
	var ok bool
	if n.N, ok = ParseUint64(b[:end]); !ok {
		err = errorf.E("too big number for uint64: %s", b[:end])
		return
	}
	r = b[end:]
	return
}
