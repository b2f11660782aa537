// Package errorf is a shortcut to the lol.Main error constructors: errorf.E
// builds an error like fmt.Errorf and logs it at error level.
package errorf

import (
	"btoi.lol/lol"
)

var (
	F = lol.Main.Errorf.F
	E = lol.Main.Errorf.E
	W = lol.Main.Errorf.W
	I = lol.Main.Errorf.I
	D = lol.Main.Errorf.D
	T = lol.Main.Errorf.T
)
