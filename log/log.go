// Package log is a shortcut to the lol.Main level printers, as in
// log.I.F("format", args...).
package log

import (
	"btoi.lol/lol"
)

var (
	F = lol.Main.Log.F
	E = lol.Main.Log.E
	W = lol.Main.Log.W
	I = lol.Main.Log.I
	D = lol.Main.Log.D
	T = lol.Main.Log.T
)
