package ints

import (
	"btoi.lol/swar"
)

// layouts lists, for every input length that fits a uint64 without any
// overflow check (1 through 19 digits), the sizes of the windows the input is
// cut into, most significant first.
var layouts = [...][]uint8{
	1:  {1},
	2:  {2},
	3:  {2, 1},
	4:  {4},
	5:  {4, 1},
	6:  {4, 2},
	7:  {4, 2, 1},
	8:  {8},
	9:  {8, 1},
	10: {8, 2},
	11: {8, 2, 1},
	12: {8, 4},
	13: {8, 4, 1},
	14: {8, 4, 2},
	15: {8, 4, 2, 1},
	16: {16},
	17: {16, 1},
	18: {16, 2},
	19: {16, 2, 1},
}

// maxCombine is the longest input combine accepts.
const maxCombine = len(layouts) - 1

// pow10 holds 10^0 through 10^19.
var pow10 = [20]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// window is one chunk of an input of known length: where it starts, how many
// digits it holds and the positional weight of its value.
type window struct {
	off    uint8
	size   uint8
	weight uint64
}

type plan struct {
	n       int
	windows [4]window
}

// plans[n] is the decomposition for an n digit input, derived from layouts.
var plans [len(layouts)]plan

func init() {
	for n := 1; n < len(layouts); n++ {
		p := &plans[n]
		off := 0
		for _, size := range layouts[n] {
			off += int(size)
			p.windows[p.n] = window{
				off:    uint8(off) - size,
				size:   size,
				weight: pow10[n-off],
			}
			p.n++
		}
		if off != n {
			panic("ints: layout does not cover its length")
		}
	}
}

// combine decodes 1 to 19 ASCII digits. Every such value is below 10^19, so
// the weighted sum never overflows.
func combine(b []byte) (v uint64, ok bool) {
	p := &plans[len(b)]
	for _, w := range p.windows[:p.n] {
		var d uint64
		c := b[w.off:]
		switch w.size {
		case 1:
			var x uint8
			x, ok = swar.Decode1(c[0])
			d = uint64(x)
		case 2:
			var x uint16
			x, ok = swar.Decode2(c)
			d = uint64(x)
		case 4:
			var x uint32
			x, ok = swar.Decode4(c)
			d = uint64(x)
		case 8:
			d, ok = swar.Decode8(c)
		case 16:
			d, ok = swar.Decode16(c)
		}
		if !ok {
			return 0, false
		}
		v += d * w.weight
	}
	return v, true
}
