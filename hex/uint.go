package hex

// nibbles maps an ASCII byte to its hex digit value, or 0xFF.
var nibbles = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return
}()

// parse decodes b as a hexadecimal number of at most size bits. Leading zeros
// are accepted, prefixes and signs are not.
func parse(b []byte, size uint) (v uint64, ok bool) {
	if len(b) == 0 {
		return
	}
	for _, c := range b {
		n := nibbles[c]
		if n > 0xF || v>>(size-4) != 0 {
			return 0, false
		}
		v = v<<4 | uint64(n)
	}
	return v, true
}

// ParseUint8 decodes b as a hexadecimal uint8.
func ParseUint8(b []byte) (uint8, bool) {
	v, ok := parse(b, 8)
	return uint8(v), ok
}

// ParseUint16 decodes b as a hexadecimal uint16.
func ParseUint16(b []byte) (uint16, bool) {
	v, ok := parse(b, 16)
	return uint16(v), ok
}

// ParseUint32 decodes b as a hexadecimal uint32.
func ParseUint32(b []byte) (uint32, bool) {
	v, ok := parse(b, 32)
	return uint32(v), ok
}

// ParseUint64 decodes b as a hexadecimal uint64.
func ParseUint64(b []byte) (uint64, bool) { return parse(b, 64) }
