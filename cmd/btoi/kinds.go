package main

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"btoi.lol/hex"
	"btoi.lol/ints"
	"btoi.lol/sat"
)

type opts struct {
	nice, saturate, raw bool
}

// decoder decodes b and appends the result to dst.
type decoder func(dst, b []byte, o opts) ([]byte, bool)

// kind is a decoder and the output options it supports.
type kind struct {
	decoder
	// wide kinds print through String and cannot be formatted or clamped.
	wide bool
}

// appendRaw appends the big-endian two's complement bytes of v, size bytes
// wide, as hex.
func appendRaw(dst []byte, v uint64, size uintptr) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return hex.EncAppend(dst, b[8-size:])
}

// unsigned decodes with parse. With saturate set, values that fail parse but
// decode as a 64-bit integer are clamped to the range of T, negative values
// to zero. nonZero rejects a result of zero, clamped or not.
func unsigned[T constraints.Unsigned](parse func([]byte) (T, bool), nonZero bool) kind {
	return kind{decoder: func(dst, b []byte, o opts) ([]byte, bool) {
		v, ok := parse(b)
		if !ok && o.saturate {
			if w, good := ints.ParseUint64(b); good {
				v, ok = sat.From[T](w), true
			} else if s, good := ints.ParseInt64(b); good {
				v, ok = sat.From[T](s), true
			}
		}
		if ok && nonZero {
			_, ok = ints.NewNonZero(v)
		}
		if !ok {
			return dst, false
		}
		switch {
		case o.raw:
			return appendRaw(dst, uint64(v), unsafe.Sizeof(v)), true
		case o.nice:
			return ints.AppendNice(dst, uint64(v)), true
		}
		return ints.AppendUint(dst, uint64(v)), true
	}}
}

// signed is unsigned for signed T.
func signed[T constraints.Signed](parse func([]byte) (T, bool), nonZero bool) kind {
	return kind{decoder: func(dst, b []byte, o opts) ([]byte, bool) {
		v, ok := parse(b)
		if !ok && o.saturate {
			var w int64
			if w, ok = ints.ParseInt64(b); ok {
				v = sat.From[T](w)
			}
		}
		if ok && nonZero {
			_, ok = ints.NewNonZero(v)
		}
		if !ok {
			return dst, false
		}
		switch {
		case o.raw:
			return appendRaw(dst, uint64(v), unsafe.Sizeof(v)), true
		case o.nice:
			return ints.AppendNiceInt(dst, int64(v)), true
		}
		return ints.AppendInt(dst, int64(v)), true
	}}
}

func nonZero[T comparable](parse func([]byte) (T, bool)) func([]byte) (T, bool) {
	return func(b []byte) (v T, ok bool) {
		var n ints.NonZero[T]
		if n, ok = ints.ParseNonZero(b, parse); !ok {
			return
		}
		return n.Get(), true
	}
}

func wide[T interface {
	comparable
	String() string
	Bits() uint128.Uint128
}](parse func([]byte) (T, bool)) kind {
	return kind{wide: true, decoder: func(dst, b []byte, o opts) ([]byte, bool) {
		v, ok := parse(b)
		if !ok {
			return dst, false
		}
		if o.raw {
			var be [16]byte
			v.Bits().PutBytesBE(be[:])
			return hex.EncAppend(dst, be[:]), true
		}
		return append(dst, v.String()...), true
	}}
}

// u128 gives uint128.Uint128 the Bits method wide formats raw output with.
type u128 struct{ uint128.Uint128 }

func (u u128) Bits() uint128.Uint128 { return u.Uint128 }

func parseU128(b []byte) (u u128, ok bool) {
	u.Uint128, ok = ints.ParseUint128(b)
	return
}

var decimal = map[string]kind{
	"u8":      unsigned(ints.ParseUint8, false),
	"u16":     unsigned(ints.ParseUint16, false),
	"u32":     unsigned(ints.ParseUint32, false),
	"u64":     unsigned(ints.ParseUint64, false),
	"usize":   unsigned(ints.ParseUint, false),
	"u128":    wide(parseU128),
	"i8":      signed(ints.ParseInt8, false),
	"i16":     signed(ints.ParseInt16, false),
	"i32":     signed(ints.ParseInt32, false),
	"i64":     signed(ints.ParseInt64, false),
	"isize":   signed(ints.ParseInt, false),
	"i128":    wide(ints.ParseInt128),
	"nzu8":    unsigned(ints.ParseUint8, true),
	"nzu16":   unsigned(ints.ParseUint16, true),
	"nzu32":   unsigned(ints.ParseUint32, true),
	"nzu64":   unsigned(ints.ParseUint64, true),
	"nzusize": unsigned(ints.ParseUint, true),
	"nzu128":  wide(nonZero(parseU128)),
	"nzi8":    signed(ints.ParseInt8, true),
	"nzi16":   signed(ints.ParseInt16, true),
	"nzi32":   signed(ints.ParseInt32, true),
	"nzi64":   signed(ints.ParseInt64, true),
	"nzisize": signed(ints.ParseInt, true),
	"nzi128":  wide(nonZero(ints.ParseInt128)),
}

var hexadecimal = map[string]kind{
	"u8":  unsigned(hex.ParseUint8, false),
	"u16": unsigned(hex.ParseUint16, false),
	"u32": unsigned(hex.ParseUint32, false),
	"u64": unsigned(hex.ParseUint64, false),
}
