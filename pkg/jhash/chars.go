package jhash

import (
	"fmt"
	"os"
	"unicode/utf16"

	"golang.org/x/text/encoding/htmlindex"

	"src.jhash.dev/pkg/hashcode"
	"src.jhash.dev/pkg/prog"
)

// Prints the character-sequence hash of each argument, or of the content of
// each file when --file is given.
func runChars(fds [3]*os.File, f *prog.Flags, args []string) error {
	fs := newFlagSet("chars")
	fromFile := fs.Bool("file", false, "treat arguments as file names and hash their content")
	encName := fs.String("encoding", "utf-8", "encoding of file content, as a WHATWG encoding label")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return prog.BadUsage("chars: no strings given")
	}
	enc, err := htmlindex.Get(*encName)
	if err != nil {
		return prog.BadUsage(fmt.Sprintf("chars: unknown encoding %q", *encName))
	}

	p := newPrinter(fds, f, fs.NArg())
	for _, arg := range fs.Args() {
		s := arg
		if *fromFile {
			data, _, err := readInput(fds, arg)
			if err != nil {
				return fail(fds, err)
			}
			decoded, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				return fail(fds, fmt.Errorf("decode %s: %w", arg, err))
			}
			s = string(decoded)
		}
		p.print(arg, hashcode.Chars(utf16.Encode([]rune(s))))
	}
	return nil
}
