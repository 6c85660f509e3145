package jhash

import (
	"encoding/hex"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"src.jhash.dev/pkg/errutil"
	"src.jhash.dev/pkg/hashcode"
	"src.jhash.dev/pkg/prog"
)

// Prints the byte-sequence hash of each file, stdin, or each hex argument.
// Files are read concurrently, but results are printed in argument order.
func runBytes(fds [3]*os.File, f *prog.Flags, args []string) error {
	fs := newFlagSet("bytes")
	hexArgs := fs.Bool("hex", false, "treat arguments as hex-encoded bytes instead of file names")
	jobs := fs.Int("jobs", runtime.NumCPU(), "maximum number of files to read at once")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *jobs < 1 {
		return prog.BadUsage("bytes: --jobs must be positive")
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		if *hexArgs {
			return prog.BadUsage("bytes: no hex strings given")
		}
		inputs = []string{"-"}
	}

	hashes := make([]int32, len(inputs))
	errs := make([]error, len(inputs))
	var g errgroup.Group
	g.SetLimit(*jobs)
	for i, input := range inputs {
		g.Go(func() error {
			data, err := readBytes(fds, input, *hexArgs)
			if err != nil {
				errs[i] = err
				return nil
			}
			logger.Printf("%s: %d bytes", input, len(data))
			hashes[i] = hashcode.Bytes(data)
			return nil
		})
	}
	g.Wait()

	p := newPrinter(fds, f, len(inputs))
	for i, input := range inputs {
		if errs[i] == nil {
			p.print(input, hashes[i])
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		return fail(fds, err)
	}
	return nil
}

func readBytes(fds [3]*os.File, input string, hexArg bool) ([]byte, error) {
	if hexArg {
		data, err := hex.DecodeString(input)
		if err != nil {
			return nil, fmt.Errorf("bad hex string %q: %w", input, err)
		}
		if data == nil {
			// Arguments are never absent.
			data = []byte{}
		}
		return data, nil
	}
	data, _, err := readInput(fds, input)
	return data, err
}
