// Package main is a command line decoder for decimal (and hexadecimal)
// integers. Each value given on the command line, or each line of standard
// input when there are none, is decoded as the chosen integer type and printed
// back, or "none" when it does not decode.
package main

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	"btoi.lol/chk"
	"btoi.lol/config"
	"btoi.lol/errorf"
	"btoi.lol/log"
)

type args struct {
	Kind     string   `arg:"-k,--kind" help:"integer type: u8 u16 u32 u64 u128 usize i8 i16 i32 i64 i128 isize, nz prefix for non-zero"`
	Hex      bool     `arg:"-x,--hex" help:"decode values as hexadecimal (u8 through u64 only)"`
	Raw      bool     `arg:"-r,--raw" help:"print the big-endian bytes of each value in hex"`
	Nice     bool     `arg:"-n,--nice" help:"print values with thousands separators (not with u128, i128 or --raw)"`
	Saturate bool     `arg:"-s,--saturate" help:"clamp values that fit in 64 bits to the bounds of the type, negative values to zero for unsigned types (not with u128 or i128)"`
	Strict   bool     `help:"exit with status 1 at the first value that does not decode"`
	Values   []string `arg:"positional" help:"values to decode; standard input is read one value per line when there are none"`
}

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		os.Exit(1)
	}
	a := args{Kind: cfg.Kind, Nice: cfg.Nice, Saturate: cfg.Saturate, Strict: cfg.Strict}
	arg.MustParse(&a)
	stop := func() {}
	if cfg.Pprof {
		stop = profile.Start(profile.CPUProfile).Stop
	}
	err = run(a, os.Stdin, os.Stdout)
	stop()
	if chk.E(err) {
		os.Exit(1)
	}
}

func run(a args, in io.Reader, out io.Writer) (err error) {
	table := decimal
	if a.Hex {
		table = hexadecimal
	}
	k, ok := table[strings.ToLower(a.Kind)]
	if !ok {
		var names []string
		for k := range table {
			names = append(names, k)
		}
		sort.Strings(names)
		return errorf.E("unknown kind %q, expected one of %s", a.Kind, strings.Join(names, " "))
	}
	switch {
	case k.wide && a.Nice:
		return errorf.E("--nice does not apply to %s", a.Kind)
	case k.wide && a.Saturate:
		return errorf.E("--saturate does not apply to %s", a.Kind)
	case a.Raw && a.Nice:
		return errorf.E("--raw and --nice cannot be combined")
	}
	o := opts{nice: a.Nice, saturate: a.Saturate, raw: a.Raw}
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()
	buf := make([]byte, 0, 64)
	emit := func(b []byte) error {
		var good bool
		if buf, good = k.decoder(buf[:0], b, o); !good {
			log.D.F("%q does not decode as %s", b, a.Kind)
			if a.Strict {
				return errorf.E("%q does not decode as %s", b, a.Kind)
			}
			buf = append(buf, "none"...)
		}
		buf = append(buf, '\n')
		_, err := w.Write(buf)
		return err
	}
	if len(a.Values) > 0 {
		for _, v := range a.Values {
			if err = emit([]byte(v)); err != nil {
				return
			}
		}
		return
	}
	s := bufio.NewScanner(in)
	for s.Scan() {
		if err = emit(s.Bytes()); err != nil {
			return
		}
	}
	return s.Err()
}
