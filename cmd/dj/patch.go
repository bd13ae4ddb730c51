package main

import (
	"fmt"

	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"
	"github.com/dandelion-json/dandelion/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var p *ir.Node
	if cfg.String {
		p, err = parse.ParseString(args[0])
	} else {
		p, err = getObjFile(cc, args[0])
	}
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var res *ir.Node
		if cfg.Merge {
			res, err = patch.Merge(doc, p)
		} else {
			res, err = patch.Apply(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
