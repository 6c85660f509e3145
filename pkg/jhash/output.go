package jhash

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"src.jhash.dev/pkg/prog"
)

// Writes one line per hashed input.
type printer struct {
	out   io.Writer
	json  bool
	multi bool
	hash  *color.Color
	label *color.Color
}

func newPrinter(fds [3]*os.File, f *prog.Flags, n int) *printer {
	p := &printer{
		out: fds[1], json: f.JSON, multi: n > 1,
		hash:  color.New(color.FgYellow, color.Bold),
		label: color.New(color.FgCyan),
	}
	if f.ColorEnabled(fds[1]) {
		p.hash.EnableColor()
		p.label.EnableColor()
	} else {
		p.hash.DisableColor()
		p.label.DisableColor()
	}
	return p
}

type jsonLine struct {
	Input string `json:"input"`
	Hash  int32  `json:"hash"`
}

func (p *printer) print(label string, h int32) {
	switch {
	case p.json:
		b, _ := json.Marshal(jsonLine{label, h})
		fmt.Fprintf(p.out, "%s\n", b)
	case p.multi:
		fmt.Fprintf(p.out, "%s\t%s\n", p.hash.Sprint(h), p.label.Sprint(label))
	default:
		fmt.Fprintln(p.out, p.hash.Sprint(h))
	}
}
