package main

import (
	"fmt"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	path := normPath(args[0])
	var v *ir.Node
	if cfg.String {
		v = ir.FromString(args[1])
	} else {
		v, err = parse.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("%w: value %q: %w", cli.ErrUsage, args[1], err)
		}
	}
	file := "-"
	if len(args) == 3 {
		file = args[2]
	}
	y, err := getObjFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if debug.Index() {
		debug.Logf("set %s to %s in %s\n", path, debug.Node{Node: v}, debug.Node{Node: y})
	}
	if err := y.SetPath(path, v); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return cfg.writeNode(cc.Out, y)
}
