package swar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
)

// reference decodes b one byte at a time.
func reference(b []byte) (v uint64, ok bool) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	return v, true
}

func TestDecode1(t *testing.T) {
	for c := 0; c < 256; c++ {
		v, ok := Decode1(byte(c))
		if c >= '0' && c <= '9' {
			require.True(t, ok, "byte %#x", c)
			require.Equal(t, uint8(c-'0'), v)
		} else {
			require.False(t, ok, "byte %#x", c)
		}
	}
}

func TestDecode2AllPairs(t *testing.T) {
	b := make([]byte, 2)
	for x := 0; x < 1<<16; x++ {
		b[0], b[1] = byte(x), byte(x>>8)
		want, wok := reference(b)
		v, ok := Decode2(b)
		if ok != wok || uint64(v) != want {
			t.Fatalf("Decode2(%q) = %d, %v; want %d, %v", b, v, ok, want, wok)
		}
	}
}

func TestDecode4AllValues(t *testing.T) {
	for i := 0; i < 10000; i++ {
		b := []byte(fmt.Sprintf("%04d", i))
		v, ok := Decode4(b)
		require.True(t, ok)
		require.Equal(t, uint32(i), v)
	}
}

// every non-digit byte in every lane must poison the whole window.
func TestInvalidLane(t *testing.T) {
	decoders := map[int]func([]byte) (uint64, bool){
		2:  func(b []byte) (uint64, bool) { v, ok := Decode2(b); return uint64(v), ok },
		4:  func(b []byte) (uint64, bool) { v, ok := Decode4(b); return uint64(v), ok },
		8:  Decode8,
		16: Decode16,
	}
	for size, decode := range decoders {
		for lane := 0; lane < size; lane++ {
			for c := 0; c < 256; c++ {
				if c >= '0' && c <= '9' {
					continue
				}
				b := []byte("9876543210987654")[:size]
				b[lane] = byte(c)
				v, ok := decode(b)
				if ok || v != 0 {
					t.Fatalf("size %d lane %d byte %#x: got %d, %v", size, lane, c, v, ok)
				}
			}
		}
	}
}

func TestDecode8Random(t *testing.T) {
	for range 100000 {
		n := frand.Uint64n(100_000_000)
		v, ok := Decode8([]byte(fmt.Sprintf("%08d", n)))
		require.True(t, ok)
		require.Equal(t, n, v)
	}
	v, ok := Decode8([]byte("99999999"))
	require.True(t, ok)
	require.Equal(t, uint64(99999999), v)
}

func TestDecode16Random(t *testing.T) {
	for range 100000 {
		n := frand.Uint64n(10_000_000_000_000_000)
		v, ok := Decode16([]byte(fmt.Sprintf("%016d", n)))
		require.True(t, ok)
		require.Equal(t, n, v)
	}
	v, ok := Decode16([]byte("9999999999999999"))
	require.True(t, ok)
	require.Equal(t, uint64(9999999999999999), v)
}

// only the window is read, whatever follows it is ignored.
func TestWindowIgnoresTail(t *testing.T) {
	v, ok := Decode4([]byte("1234xyz"))
	require.True(t, ok)
	require.Equal(t, uint32(1234), v)
	w, ok := Decode8([]byte("00000042-"))
	require.True(t, ok)
	require.Equal(t, uint64(42), w)
}

func BenchmarkDecode(bb *testing.B) {
	in := []byte("1234567890123456")
	bb.Run("Decode8", func(bb *testing.B) {
		for i := 0; i < bb.N; i++ {
			_, _ = Decode8(in)
		}
	})
	bb.Run("Decode16", func(bb *testing.B) {
		for i := 0; i < bb.N; i++ {
			_, _ = Decode16(in)
		}
	})
	bb.Run("reference16", func(bb *testing.B) {
		for i := 0; i < bb.N; i++ {
			_, _ = reference(in)
		}
	})
}
