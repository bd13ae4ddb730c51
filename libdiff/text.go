package libdiff

import (
	"bytes"
	"strings"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs a and b line by line.
func Lines(a, b string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Text renders the line diff of the indented JSON encodings of from and
// to, with each line prefixed by "-", "+" or " ". It reports whether the
// encodings differ.
func Text(from, to *ir.Node, opts ...encode.EncodeOption) (string, bool, error) {
	fromBuf, toBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, fromBuf, opts...); err != nil {
		return "", false, err
	}
	if err := encode.Encode(to, toBuf, opts...); err != nil {
		return "", false, err
	}
	out := &strings.Builder{}
	changed := false
	for _, d := range Lines(fromBuf.String(), toBuf.String()) {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String(), changed, nil
}
