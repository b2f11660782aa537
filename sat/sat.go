// Package sat converts between integer types, clamping any value that does
// not fit to the nearest bound of the destination type.
package sat

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bounds returns the smallest and largest values of D.
func Bounds[D constraints.Integer]() (lo, hi D) {
	size := unsafe.Sizeof(D(0)) * 8
	if ^D(0) < 0 {
		hi = D(uint64(1)<<(size-1) - 1)
		lo = -hi - 1
		return
	}
	return 0, ^D(0)
}

// Checked converts s to D, reporting whether the value was preserved.
func Checked[D, S constraints.Integer](s S) (d D, ok bool) {
	d = D(s)
	return d, S(d) == s && (d < 0) == (s < 0)
}

// From converts s to D, saturating at D's bounds.
func From[D, S constraints.Integer](s S) D {
	d, ok := Checked[D](s)
	if ok {
		return d
	}
	lo, hi := Bounds[D]()
	if s < 0 {
		return lo
	}
	return hi
}
