// Package config loads the environment configuration of the btoi command.
package config

import (
	"fmt"
	"os"

	"go-simpler.org/env"

	"btoi.lol"
	"btoi.lol/config/keyvalue"
	"btoi.lol/lol"
)

// C is the configuration for btoi. Every field can be overridden by the matching
// command line flag.
type C struct {
	AppName  string `env:"BTOI_APP_NAME" default:"btoi"`
	LogLevel string `env:"BTOI_LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug or trace"`
	Kind     string `env:"BTOI_KIND" default:"u64" usage:"integer type values are decoded as"`
	Nice     bool   `env:"BTOI_NICE" default:"false" usage:"print values with thousands separators"`
	Saturate bool   `env:"BTOI_SATURATE" default:"false" usage:"clamp out of range values to the bounds of the type"`
	Strict   bool   `env:"BTOI_STRICT" default:"false" usage:"exit with status 1 at the first value that does not decode"`
	Pprof    bool   `env:"BTOI_PPROF" default:"false" usage:"write a cpu profile of the run to a temporary directory"`
}

// New loads C from the environment. The single arguments "version", "help" and
// "env" print their output and exit.
func New() (c *C, err error) {
	if len(os.Args) == 2 && os.Args[1] == "version" {
		fmt.Println(btoi.Version)
		os.Exit(0)
	}
	c = &C{}
	if err = env.Load(c, &env.Options{SliceSep: ","}); err != nil {
		return
	}
	lol.SetLogLevel(c.LogLevel)
	if len(os.Args) == 2 && os.Args[1] == "help" {
		fmt.Printf("\nenvironment variables that configure %s\n\n", c.AppName)
		env.Usage(c, os.Stdout, nil)
		fmt.Printf(`
commands:

  - print this help message

      %s help

  - print version info

      %s version

  - print environment variables as a shell script that can be edited to set the configuration

      %s env

`, os.Args[0], os.Args[0], os.Args[0])
		os.Exit(0)
	}
	if len(os.Args) == 2 && os.Args[1] == "env" {
		keyvalue.PrintEnv(*c, os.Stdout)
		os.Exit(0)
	}
	return
}
