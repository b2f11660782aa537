// Package hex is the byte-string hex codec and a set of nibble-table decoders
// for hexadecimal integers.
package hex

import (
	"github.com/templexxx/xhex"
)

// EncAppend appends the lowercase hex encoding of src to dst.
func EncAppend(dst, src []byte) (b []byte) {
	l := len(dst)
	b = append(dst, make([]byte, len(src)*2)...)
	xhex.Encode(b[l:], src)
	return
}
