package ints

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalid is returned, wrapped, by the error returning decoders when the
// input is not a decimal number that fits the requested type.
var ErrInvalid = errors.New("invalid decimal integer")

func invalid[T any](b []byte) error {
	var t T
	return errors.Wrapf(ErrInvalid, "%q as %T", b, t)
}

// Unsigned is Btou with an error in place of the boolean.
func Unsigned[T constraints.Unsigned](b []byte) (v T, err error) {
	var ok bool
	if v, ok = Btou[T](b); !ok {
		err = invalid[T](b)
	}
	return
}

// Signed is Btoi with an error in place of the boolean.
func Signed[T constraints.Signed](b []byte) (v T, err error) {
	var ok bool
	if v, ok = Btoi[T](b); !ok {
		err = invalid[T](b)
	}
	return
}

// Must returns v, panicking if ok is false. It is meant for decoding
// constants, as in Must(ParseUint32([]byte("4096"))).
func Must[T any](v T, ok bool) T {
	if !ok {
		panic(fmt.Sprintf("ints: invalid %T constant", v))
	}
	return v
}
