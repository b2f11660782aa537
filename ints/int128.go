package ints

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// Int128 is a two's complement signed 128-bit integer. The zero value is 0.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	// MinInt128 is -2^127.
	MinInt128 = Int128{Hi: math.MinInt64}
	// MaxInt128 is 2^127-1.
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 { return Int128{Hi: v >> 63, Lo: uint64(v)} }

// Int128FromBits reinterprets the bits of u as a signed value.
func Int128FromBits(u uint128.Uint128) Int128 { return Int128{Hi: int64(u.Hi), Lo: u.Lo} }

// Bits returns the two's complement bit pattern of i.
func (i Int128) Bits() uint128.Uint128 { return uint128.New(i.Lo, uint64(i.Hi)) }

// IsZero reports whether i is 0.
func (i Int128) IsZero() bool { return i.Hi == 0 && i.Lo == 0 }

// Sign returns -1, 0 or 1.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.IsZero():
		return 0
	}
	return 1
}

// Neg returns -i. Like the native signed types, -MinInt128 is MinInt128.
func (i Int128) Neg() Int128 {
	lo := -i.Lo
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Abs returns the magnitude of i, which for MinInt128 is 2^127.
func (i Int128) Abs() uint128.Uint128 {
	if i.Hi < 0 {
		return i.Neg().Bits()
	}
	return i.Bits()
}

// Cmp compares i and j and returns -1, 0 or 1.
func (i Int128) Cmp(j Int128) int {
	switch {
	case i.Hi < j.Hi:
		return -1
	case i.Hi > j.Hi:
		return 1
	case i.Lo < j.Lo:
		return -1
	case i.Lo > j.Lo:
		return 1
	}
	return 0
}

// Big returns i as a *big.Int.
func (i Int128) Big() *big.Int {
	b := i.Abs().Big()
	if i.Hi < 0 {
		b.Neg(b)
	}
	return b
}

func (i Int128) String() string {
	if i.Hi < 0 {
		return "-" + i.Abs().String()
	}
	return i.Bits().String()
}
