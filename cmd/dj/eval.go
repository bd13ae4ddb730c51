package main

import (
	"fmt"
	"strings"

	"github.com/dandelion-json/dandelion/eval"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	as, err := eval.ParseAs(cfg.As)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	src := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := eval.EvalAs(doc, src, cfg.Env, as)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := eval.ExpandIR(doc, cfg.Env)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := cfg.writeNode(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// envFunc binds key to val in env. Dotted keys bind into nested
// objects. val is parsed as json, falling back to a string.
func envFunc(env eval.Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	node, err := parse.ParseString(val)
	if err != nil {
		v = val
	} else {
		v = ir.ToAny(node)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
