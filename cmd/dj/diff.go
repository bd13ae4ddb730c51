package main

import (
	"fmt"
	"io"

	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	if cfg.Patch {
		changes := libdiff.Diff(from, to)
		if err := cfg.writeNode(w, libdiff.ToPatch(changes)); err != nil {
			return false, err
		}
		return len(changes) != 0, nil
	}
	txt, differs, err := libdiff.Text(from, to, cfg.encOpts(w)...)
	if err != nil {
		return false, err
	}
	if !differs {
		return false, nil
	}
	_, err = io.WriteString(w, txt)
	return true, err
}
