package jhash

import (
	"io"
	"os"

	"src.jhash.dev/pkg/hashcode"
	"src.jhash.dev/pkg/prog"
	"src.jhash.dev/pkg/valdoc"
)

// Prints the hash of the sequence of values in a document.
func runSeq(fds [3]*os.File, f *prog.Flags, args []string) error {
	fs := newFlagSet("seq")
	formatName := fs.String("format", "", "document format: yaml, json, toml or msgpack (default from extension, else yaml)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return prog.BadUsage("seq: at most one file can be given")
	}
	name := fs.Arg(0)

	format := valdoc.YAML
	var err error
	if *formatName != "" {
		format, err = valdoc.ParseFormat(*formatName)
		if err != nil {
			return prog.BadUsage("seq: " + err.Error())
		}
	} else if name != "" && name != "-" {
		if ext, err := valdoc.FormatFromPath(name); err == nil {
			format = ext
		}
	}

	data, label, err := readInput(fds, name)
	if err != nil {
		return fail(fds, err)
	}
	values, err := valdoc.Decode(format, data)
	if err != nil {
		return fail(fds, err)
	}
	logger.Printf("%s: %d values in %v", label, len(values), format)
	newPrinter(fds, f, 1).print(label, hashcode.Hash(values...))
	return nil
}

// Reads the named file, or stdin if name is empty or "-".
func readInput(fds [3]*os.File, name string) ([]byte, string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(fds[0])
		return data, "-", err
	}
	data, err := os.ReadFile(name)
	return data, name, err
}
