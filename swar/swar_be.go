//go:build !(386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm)

package swar

// digits accumulates b one byte at a time. At most 16 digits are ever passed,
// so the value cannot overflow.
func digits(b []byte) (v uint64, ok bool) {
	for _, c := range b {
		d := c - '0'
		if d > 9 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	return v, true
}

// Decode2 decodes the two ASCII digits in b[:2].
func Decode2(b []byte) (uint16, bool) {
	v, ok := digits(b[:2])
	return uint16(v), ok
}

// Decode4 decodes the four ASCII digits in b[:4].
func Decode4(b []byte) (uint32, bool) {
	v, ok := digits(b[:4])
	return uint32(v), ok
}

// Decode8 decodes the eight ASCII digits in b[:8].
func Decode8(b []byte) (uint64, bool) { return digits(b[:8]) }

// Decode16 decodes the sixteen ASCII digits in b[:16].
func Decode16(b []byte) (uint64, bool) { return digits(b[:16]) }
