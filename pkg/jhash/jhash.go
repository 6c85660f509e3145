// Package jhash implements the main subprogram of jhash, which hashes values,
// documents, bytes and character strings given on the command line.
package jhash

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"src.jhash.dev/pkg/logutil"
	"src.jhash.dev/pkg/prog"
)

var logger = logutil.GetLogger("[jhash] ")

// Program is the hash subprogram.
type Program struct{}

type mode struct {
	name string
	run  func(fds [3]*os.File, f *prog.Flags, args []string) error
}

var modes = []mode{
	{"value", runValue},
	{"seq", runSeq},
	{"bytes", runBytes},
	{"chars", runChars},
}

// Run runs the mode named by the first argument.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no mode given")
	}
	for _, m := range modes {
		if m.name == args[0] {
			logger.Println("mode", m.name, "args", args[1:])
			return m.run(fds, f, args[1:])
		}
	}
	return prog.BadUsage(fmt.Sprintf("unknown mode %q", args[0]))
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Parses mode flags, turning errors into bad usage errors.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return prog.BadUsage(fs.Name() + ": " + err.Error())
	}
	return nil
}

// Reports a runtime failure on stderr and exits with 1.
func fail(fds [3]*os.File, err error) error {
	fmt.Fprintln(fds[2], err)
	return prog.Exit(1)
}
