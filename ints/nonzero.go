package ints

import (
	"lukechampine.com/uint128"
)

// NonZero holds a value that is known not to be zero. The only way to obtain
// one is NewNonZero or one of the ParseNonZero functions.
type NonZero[T comparable] struct{ v T }

// NewNonZero wraps v, or returns false if v is the zero value of T.
func NewNonZero[T comparable](v T) (n NonZero[T], ok bool) {
	var zero T
	if v == zero {
		return
	}
	return NonZero[T]{v}, true
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T { return n.v }

// ParseNonZero runs parse over b and rejects a result of zero.
func ParseNonZero[T comparable](b []byte, parse func([]byte) (T, bool)) (n NonZero[T], ok bool) {
	var v T
	if v, ok = parse(b); !ok {
		return
	}
	return NewNonZero(v)
}

// ParseNonZeroUint8 is ParseNonZero over ParseUint8.
func ParseNonZeroUint8(b []byte) (NonZero[uint8], bool) { return ParseNonZero(b, ParseUint8) }

// ParseNonZeroUint16 is ParseNonZero over ParseUint16.
func ParseNonZeroUint16(b []byte) (NonZero[uint16], bool) { return ParseNonZero(b, ParseUint16) }

// ParseNonZeroUint32 is ParseNonZero over ParseUint32.
func ParseNonZeroUint32(b []byte) (NonZero[uint32], bool) { return ParseNonZero(b, ParseUint32) }

// ParseNonZeroUint64 is ParseNonZero over ParseUint64.
func ParseNonZeroUint64(b []byte) (NonZero[uint64], bool) { return ParseNonZero(b, ParseUint64) }

// ParseNonZeroUint is ParseNonZero over ParseUint.
func ParseNonZeroUint(b []byte) (NonZero[uint], bool) { return ParseNonZero(b, ParseUint) }

// ParseNonZeroInt8 is ParseNonZero over ParseInt8.
func ParseNonZeroInt8(b []byte) (NonZero[int8], bool) { return ParseNonZero(b, ParseInt8) }

// ParseNonZeroInt16 is ParseNonZero over ParseInt16.
func ParseNonZeroInt16(b []byte) (NonZero[int16], bool) { return ParseNonZero(b, ParseInt16) }

// ParseNonZeroInt32 is ParseNonZero over ParseInt32.
func ParseNonZeroInt32(b []byte) (NonZero[int32], bool) { return ParseNonZero(b, ParseInt32) }

// ParseNonZeroInt64 is ParseNonZero over ParseInt64.
func ParseNonZeroInt64(b []byte) (NonZero[int64], bool) { return ParseNonZero(b, ParseInt64) }

// ParseNonZeroInt is ParseNonZero over ParseInt.
func ParseNonZeroInt(b []byte) (NonZero[int], bool) { return ParseNonZero(b, ParseInt) }

// ParseNonZeroUint128 is ParseNonZero over ParseUint128.
func ParseNonZeroUint128(b []byte) (NonZero[uint128.Uint128], bool) {
	return ParseNonZero(b, ParseUint128)
}

// ParseNonZeroInt128 is ParseNonZero over ParseInt128.
func ParseNonZeroInt128(b []byte) (NonZero[Int128], bool) { return ParseNonZero(b, ParseInt128) }
