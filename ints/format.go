package ints

const base = 10000

// base10k holds every number below base as four ASCII digits.
var base10k [base * 4]byte

func init() {
	for i := 0; i < base; i++ {
		n := i
		for j := 3; j >= 0; j-- {
			base10k[i*4+j] = byte('0' + n%10)
			n /= 10
		}
	}
}

var powers = [...]uint64{
	1,
	1_0000,
	1_0000_0000,
	1_0000_0000_0000,
	1_0000_0000_0000_0000,
}

// AppendUint appends the decimal form of v to dst.
func AppendUint(dst []byte, v uint64) (b []byte) {
	b = dst
	if v == 0 {
		return append(b, '0')
	}
	var trimmed bool
	for k := len(powers) - 1; k >= 0; k-- {
		q := v / powers[k]
		if !trimmed && q == 0 {
			continue
		}
		bb := base10k[q*4 : q*4+4]
		if !trimmed {
			for bb[0] == '0' {
				bb = bb[1:]
			}
			trimmed = true
		}
		b = append(b, bb...)
		v -= q * powers[k]
	}
	return
}

// AppendInt appends the decimal form of v, with a leading '-' if negative.
func AppendInt(dst []byte, v int64) []byte {
	if v < 0 {
		return AppendUint(append(dst, '-'), uint64(-v))
	}
	return AppendUint(dst, uint64(v))
}

// AppendNice appends v with a ',' between every group of three digits.
func AppendNice(dst []byte, v uint64) []byte {
	var buf [20]byte
	d := AppendUint(buf[:0], v)
	lead := len(d) % 3
	if lead == 0 {
		lead = 3
	}
	dst = append(dst, d[:lead]...)
	for d = d[lead:]; len(d) > 0; d = d[3:] {
		dst = append(dst, ',')
		dst = append(dst, d[:3]...)
	}
	return dst
}

// AppendNiceInt is AppendNice for signed values.
func AppendNiceInt(dst []byte, v int64) []byte {
	if v < 0 {
		return AppendNice(append(dst, '-'), uint64(-v))
	}
	return AppendNice(dst, uint64(v))
}
