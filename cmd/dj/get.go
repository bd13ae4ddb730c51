package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := normPath(args[0])
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	for _, file := range inputs(args[1:]) {
		y, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := y.GetPath(path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if res == nil {
			return fmt.Errorf("%s: nothing at %s", file, path)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// normPath lets paths be given without the leading $.
func normPath(p string) string {
	if p == "" || p[0] == '$' {
		return p
	}
	return "$" + p
}
