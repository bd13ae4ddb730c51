package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/scott-cotton/cli"
)

func readObjFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// inputs returns the file arguments, standing for stdin when there are
// none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func (cfg *MainConfig) writeNode(w io.Writer, node *ir.Node) error {
	return encode.Encode(node, w, cfg.encOpts(w)...)
}
