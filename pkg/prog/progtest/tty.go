//go:build !windows

package progtest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/creack/pty"

	"src.jhash.dev/pkg/must"
	"src.jhash.dev/pkg/prog"
)

// RunWithTTY runs a Program with a pseudo-terminal as its stdout, and returns
// the exit status and the content written to stdout. Stdin is empty and stderr
// is discarded.
//
// The test is skipped if no pseudo-terminal can be allocated.
func RunWithTTY(t *testing.T, p prog.Program, args ...string) (int, string) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	defer ptmx.Close()
	devNull := must.OK1(os.Open(os.DevNull))
	defer devNull.Close()
	r2, w2 := must.Pipe()
	go io.Copy(io.Discard, r2)

	stdoutCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		// Reading the master side fails with EIO once the terminal side is
		// closed; everything written before that is in buf.
		io.Copy(&buf, ptmx)
		stdoutCh <- buf.String()
	}()

	exit := prog.Run([3]*os.File{devNull, tty, w2},
		append([]string{"jhash"}, args...), p)
	tty.Close()
	w2.Close()
	return exit, <-stdoutCh
}
