// Package chk is a shortcut to the lol.Main error checkers: chk.E(err) logs
// err at error level if it is not nil and reports whether it was.
package chk

import (
	"btoi.lol/lol"
)

var (
	F = lol.Main.Check.F
	E = lol.Main.Check.E
	W = lol.Main.Check.W
	I = lol.Main.Check.I
	D = lol.Main.Check.D
	T = lol.Main.Check.T
)
