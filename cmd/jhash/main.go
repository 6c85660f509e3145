// Jhash computes 31-multiplier combinator hash codes of values, documents,
// byte strings and character strings, compatible with the hash codes of the
// corresponding JVM values.
package main

import (
	"os"

	"src.jhash.dev/pkg/buildinfo"
	"src.jhash.dev/pkg/jhash"
	"src.jhash.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, jhash.Program{})))
}
