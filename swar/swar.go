// Package swar decodes fixed-size windows of ASCII decimal digits into their
// numeric value using SIMD-within-a-register arithmetic: the window is loaded
// as one little-endian machine word, every byte lane is validated at once, and
// adjacent lanes are folded pairwise with multiply-shift-mask steps so that an
// N digit window costs O(log N) word operations.
//
// The window length is always fixed by the caller. Decode2 reads exactly 2
// bytes, Decode4 4 bytes, Decode8 8 bytes and Decode16 16 bytes; a shorter
// slice panics with an index error like any other out of range slice access.
//
// On big-endian targets the same functions are implemented digit by digit and
// return identical results.
package swar

// Decode1 decodes a single ASCII digit.
func Decode1(c byte) (uint8, bool) {
	d := c - '0'
	return d, d <= 9
}
