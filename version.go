// Package btoi decodes ASCII decimal byte slices into native integers without
// allocating. The decoders live in package ints; this package only carries the
// release version.
package btoi

// Version is the current release.
const Version = "v0.1.0"
