/*
Reon translates a REON document into a Python 3 re pattern assignment.

Usage:

	reon [flags]

The flags are:

	-i, --input PATH
		Read REON source from PATH instead of stdin.

	-o, --output PATH
		Write the translated pattern to PATH instead of stdout.

	-v, --variable NAME
		Python variable name the translated pattern is assigned to.
		Defaults to "re".

	--dump-table
		Print the translator's LL(1) grammar table to stderr and exit
		without reading any input.

	-h, --help
		Show this help text and exit.

Flag defaults may also be supplied by a .reonrc.toml file in the current
directory or the user's home directory; flags given on the command line
always take precedence.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"

	"github.com/dekarrin/reon"
	"github.com/dekarrin/reon/internal/reonconfig"
)

const exitSuccess = 0

// errorOutputWidth bounds how wide a wrapped error message line gets
// before stderr is written to, mirroring engine.go's console wrapping.
const errorOutputWidth = 100

var (
	returnCode = exitSuccess

	flagInput     = pflag.StringP("input", "i", "", "Read REON source from this file instead of stdin")
	flagOutput    = pflag.StringP("output", "o", "", "Write the translated pattern to this file instead of stdout")
	flagVariable  = pflag.StringP("variable", "v", "", "Python variable the translated pattern is assigned to")
	flagDumpTable = pflag.Bool("dump-table", false, "Print the LL(1) grammar table and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	tr, err := reon.New()
	if err != nil {
		fail(err, "ERROR")
		return
	}

	if *flagDumpTable {
		fmt.Fprint(os.Stderr, tr.DumpTable())
		return
	}

	cfg, err := reonconfig.Load()
	if err != nil {
		fail(err, "ERROR: reading .reonrc.toml")
		return
	}

	input := resolve(*flagInput, cfg.Input)
	output := resolve(*flagOutput, cfg.Output)
	variable := resolve(*flagVariable, cfg.Variable)

	in := os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			fail(err, "ERROR")
			return
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fail(err, "ERROR")
			return
		}
		defer f.Close()
		out = f
	}

	if err := tr.Translate(in, out, variable); err != nil {
		fail(err, "ERROR")
		return
	}
}

// resolve returns flagValue if the user set it, otherwise configValue.
func resolve(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func fail(err error, prefix string) {
	msg := rosed.Edit(prefix + ": " + err.Error()).Wrap(errorOutputWidth).String()
	fmt.Fprintln(os.Stderr, msg)
	returnCode = int(reon.ExitCodeFor(err))
}
