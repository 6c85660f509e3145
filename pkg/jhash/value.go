package jhash

import (
	"os"

	"src.jhash.dev/pkg/hashcode"
	"src.jhash.dev/pkg/prog"
	"src.jhash.dev/pkg/valdoc"
)

// Prints the hash code of each argument, parsed as a YAML value unless --raw
// is given. Arguments that are not valid YAML are hashed as strings.
func runValue(fds [3]*os.File, f *prog.Flags, args []string) error {
	fs := newFlagSet("value")
	raw := fs.Bool("raw", false, "hash arguments as strings without parsing")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return prog.BadUsage("value: no values given")
	}
	p := newPrinter(fds, f, fs.NArg())
	for _, arg := range fs.Args() {
		p.print(arg, hashcode.Of(parseValue(arg, *raw)))
	}
	return nil
}

func parseValue(arg string, raw bool) any {
	if raw {
		return arg
	}
	v, err := valdoc.DecodeValue(valdoc.YAML, []byte(arg))
	if err != nil {
		logger.Printf("hashing %q as string: %v", arg, err)
		return arg
	}
	return v
}
