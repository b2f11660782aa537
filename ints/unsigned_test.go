package ints

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"
	"lukechampine.com/uint128"
)

func TestScenarios(t *testing.T) {
	v32, ok := ParseUint32([]byte("4294967295"))
	require.True(t, ok)
	require.Equal(t, uint32(4294967295), v32)

	_, ok = ParseUint32([]byte("4294967296"))
	require.False(t, ok)

	v64, ok := ParseUint64([]byte("018446744073709551615"))
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), v64)

	i64, ok := ParseInt64([]byte("-9223372036854775808"))
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), i64)

	_, ok = ParseUint8([]byte(""))
	require.False(t, ok)

	_, ok = ParseUint16([]byte("+123"))
	require.False(t, ok)
}

func TestUnsignedRejects(t *testing.T) {
	for _, s := range []string{
		"", " 1", "1 ", "1.0", "+123", "-1", "--1", "1_000", "0x10", "١", "12a4",
		"9999999999999999x", "00000000000000000000000000000000000000000000000000z",
	} {
		b := []byte(s)
		_, ok8 := ParseUint8(b)
		_, ok16 := ParseUint16(b)
		_, ok32 := ParseUint32(b)
		_, ok64 := ParseUint64(b)
		_, ok128 := ParseUint128(b)
		_, okw := ParseUint(b)
		require.False(t, ok8 || ok16 || ok32 || ok64 || ok128 || okw, "%q", s)
	}
}

func TestUint8Exhaustive(t *testing.T) {
	for v := 0; v <= math.MaxUint8; v++ {
		s := strconv.Itoa(v)
		for k := 0; k <= 40; k++ {
			got, ok := ParseUint8([]byte(strings.Repeat("0", k) + s))
			require.True(t, ok, "%d with %d zeros", v, k)
			require.Equal(t, uint8(v), got)
		}
	}
	for v := math.MaxUint8 + 1; v < 100000; v++ {
		_, ok := ParseUint8([]byte(strconv.Itoa(v)))
		require.False(t, ok, "%d", v)
	}
}

func TestUint16Exhaustive(t *testing.T) {
	for v := 0; v <= math.MaxUint16; v++ {
		s := strconv.Itoa(v)
		got, ok := ParseUint16([]byte(s))
		if !ok || got != uint16(v) {
			t.Fatalf("ParseUint16(%q) = %d, %v", s, got, ok)
		}
		k := v % 25
		got, ok = ParseUint16([]byte(strings.Repeat("0", k) + s))
		if !ok || got != uint16(v) {
			t.Fatalf("ParseUint16(%d zeros + %q) = %d, %v", k, s, got, ok)
		}
	}
	for v := math.MaxUint16 + 1; v < 1_000_000; v += 7 {
		_, ok := ParseUint16([]byte(strconv.Itoa(v)))
		require.False(t, ok, "%d", v)
	}
}

func TestUnsignedBoundaries(t *testing.T) {
	for _, c := range []struct {
		bits int
		max  uint64
	}{
		{8, math.MaxUint8}, {16, math.MaxUint16}, {32, math.MaxUint32}, {64, math.MaxUint64},
	} {
		s := strconv.FormatUint(c.max, 10)
		for k := 0; k <= 30; k++ {
			z := strings.Repeat("0", k)
			v, ok := parseBits([]byte(z+s), c.bits)
			require.True(t, ok, "%d zeros + max of uint%d", k, c.bits)
			require.Equal(t, c.max, v)
			// max+1, computed as a string so the 64-bit case does not wrap
			over := []byte(z + addOne(s))
			_, ok = parseBits(over, c.bits)
			require.False(t, ok, "%s as uint%d", over, c.bits)
			over = []byte(z + s + "0")
			_, ok = parseBits(over, c.bits)
			require.False(t, ok, "%s as uint%d", over, c.bits)
		}
	}
}

func TestUint32Random(t *testing.T) {
	for range 1_000_000 {
		v := uint32(frand.Uint64n(math.MaxUint32 + 1))
		got, ok := ParseUint32(strconv.AppendUint(nil, uint64(v), 10))
		if !ok || got != v {
			t.Fatalf("ParseUint32(%d) = %d, %v", v, got, ok)
		}
	}
}

func TestUint64Random(t *testing.T) {
	b := make([]byte, 0, 24)
	for range 1_000_000 {
		// spread the magnitudes so every length is exercised
		v := frand.Uint64n(math.MaxUint64) >> frand.Intn(64)
		b = strconv.AppendUint(b[:0], v, 10)
		got, ok := ParseUint64(b)
		if !ok || got != v {
			t.Fatalf("ParseUint64(%s) = %d, %v", b, got, ok)
		}
	}
}

// Every width agrees with strconv at every length from 1 to 45, including
// lengths past each natural digit count that overflow after leading zeros.
func TestUnsignedAgainstStrconv(t *testing.T) {
	for n := 1; n <= 45; n++ {
		for range 3000 {
			b := randomDigits(n)
			for _, bits := range []int{8, 16, 32, 64} {
				want, err := strconv.ParseUint(string(b), 10, bits)
				got, ok := parseBits(b, bits)
				if ok != (err == nil) || (ok && got != want) {
					t.Fatalf("uint%d %q: got %d, %v; strconv %d, %v", bits, b, got, ok, want, err)
				}
			}
		}
	}
}

func TestParseUint(t *testing.T) {
	v, ok := ParseUint([]byte("4294967295"))
	require.True(t, ok)
	require.Equal(t, uint(math.MaxUint32), v)
	v, ok = ParseUint([]byte(strconv.FormatUint(math.MaxUint, 10)))
	require.True(t, ok)
	require.Equal(t, uint(math.MaxUint), v)
	_, ok = ParseUint([]byte("1" + strconv.FormatUint(math.MaxUint, 10)))
	require.False(t, ok)
}

func TestPlansCoverLengths(t *testing.T) {
	for n := 1; n <= maxCombine; n++ {
		p := plans[n]
		end := 0
		for _, w := range p.windows[:p.n] {
			require.Equal(t, end, int(w.off))
			end += int(w.size)
			require.Equal(t, pow10[n-end], w.weight)
		}
		require.Equal(t, n, end)
	}
}

func parseBits(b []byte, bits int) (uint64, bool) {
	switch bits {
	case 8:
		v, ok := ParseUint8(b)
		return uint64(v), ok
	case 16:
		v, ok := ParseUint16(b)
		return uint64(v), ok
	case 32:
		v, ok := ParseUint32(b)
		return uint64(v), ok
	}
	return ParseUint64(b)
}

// randomDigits returns n ASCII digits with a random run of leading zeros.
func randomDigits(n int) []byte {
	b := frand.Bytes(n)
	zeros := frand.Intn(n + 1)
	for i := range b {
		if i < zeros {
			b[i] = '0'
		} else {
			b[i] = '0' + b[i]%10
		}
	}
	return b
}

// addOne increments a decimal string.
func addOne(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

func BenchmarkParseUint64(bb *testing.B) {
	const nTests = 10000
	inputs := make([][]byte, nTests)
	strs := make([]string, nTests)
	for i := range nTests {
		inputs[i] = strconv.AppendUint(nil, frand.Uint64n(math.MaxUint64)>>frand.Intn(64), 10)
		strs[i] = string(inputs[i])
	}
	bb.Run("ParseUint64", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			_, _ = ParseUint64(inputs[i%nTests])
		}
	})
	bb.Run("strconv.ParseUint", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			_, _ = strconv.ParseUint(strs[i%nTests], 10, 64)
		}
	})
}

func FuzzParseUint64(f *testing.F) {
	for _, s := range []string{"0", "18446744073709551615", "18446744073709551616", "007", "+1", ""} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		want, err := strconv.ParseUint(string(b), 10, 64)
		got, ok := ParseUint64(b)
		if ok != (err == nil) || (ok && got != want) {
			t.Fatalf("%q: got %d, %v; strconv %d, %v", b, got, ok, want, err)
		}
	})
}

// The byte at a time fold is the whole decoder on big-endian targets, so it
// must agree with the tiers everywhere.
func TestFoldMatchesTiers(t *testing.T) {
	for n := 1; n <= 45; n++ {
		for range 2000 {
			b := randomDigits(n)
			if frand.Intn(10) == 0 {
				b[frand.Intn(n)] = '/'
			}
			for _, w := range []*width{w8, w16, w32, w64} {
				want, wok := parse(b, w)
				got, ok := fold(0, b, w.max)
				if ok != wok || (ok && got != want) {
					t.Fatalf("%q max %d: fold %d, %v; tiers %d, %v", b, w.max, got, ok, want, wok)
				}
			}
			want, wok := ParseUint128(b)
			got, ok := fold128(uint128.Zero, b)
			require.Equal(t, wok, ok, "%q", b)
			require.Equal(t, want, got, "%q", b)
		}
	}
}
