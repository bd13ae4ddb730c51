package main

import (
	"fmt"

	"github.com/dandelion-json/dandelion/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, file := range inputs(args) {
		d, err := readObjFile(cc, file)
		if err == nil {
			_, err = parse.Parse(d)
		}
		if err == nil {
			continue
		}
		bad++
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
