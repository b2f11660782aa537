package ints

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Btou decodes b as an unsigned decimal of any fixed width integer type,
// including named types. The width is chosen from the size of T.
func Btou[T constraints.Unsigned](b []byte) (T, bool) {
	var (
		v  uint64
		ok bool
	)
	switch unsafe.Sizeof(T(0)) {
	case 1:
		var x uint8
		x, ok = ParseUint8(b)
		v = uint64(x)
	case 2:
		var x uint16
		x, ok = ParseUint16(b)
		v = uint64(x)
	case 4:
		var x uint32
		x, ok = ParseUint32(b)
		v = uint64(x)
	default:
		v, ok = ParseUint64(b)
	}
	return T(v), ok
}

// Btoi decodes b as a signed decimal of any fixed width integer type, with an
// optional leading sign.
func Btoi[T constraints.Signed](b []byte) (T, bool) {
	var (
		v  int64
		ok bool
	)
	switch unsafe.Sizeof(T(0)) {
	case 1:
		var x int8
		x, ok = ParseInt8(b)
		v = int64(x)
	case 2:
		var x int16
		x, ok = ParseInt16(b)
		v = int64(x)
	case 4:
		var x int32
		x, ok = ParseInt32(b)
		v = int64(x)
	default:
		v, ok = ParseInt64(b)
	}
	return T(v), ok
}
