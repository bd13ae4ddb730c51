package eval

import (
	"fmt"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/expr-lang/expr"
)

// As says how the result of an expression becomes a node.
type As string

const (
	// AsAny converts the result with ir.FromAny.
	AsAny As = "any"
	// AsValue parses a string result as JSON.
	AsValue As = "value"
	// AsString requires a string result.
	AsString As = "string"
)

func ParseAs(v string) (As, error) {
	as, ok := map[string]As{
		"any":    AsAny,
		"value":  AsValue,
		"string": AsString,
	}[v]
	if ok {
		return as, nil
	}
	return "", fmt.Errorf("invalid eval as: %q", v)
}

func (as As) String() string { return string(as) }

// Eval evaluates src with doc bound in the environment and converts the
// result with ir.FromAny. Bindings in env are added to those of NewEnv.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	return EvalAs(doc, src, env, AsAny)
}

// EvalAs is like Eval with the conversion of the result given by as.
func EvalAs(doc *ir.Node, src string, env Env, as As) (*ir.Node, error) {
	if doc == nil {
		doc = ir.Null()
	}
	res, err := run(src, NewEnv(doc).With(env), doc)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q gave ", src)
		debug.LogAny(res)
	}
	switch as {
	case AsValue:
		v, ok := res.(string)
		if !ok {
			return nil, fmt.Errorf("eval as value but returned type %T", res)
		}
		return parse.ParseString(v)
	case AsString:
		switch v := res.(type) {
		case string:
			return ir.FromString(v), nil
		case nil:
			return ir.Null(), nil
		default:
			return nil, fmt.Errorf("eval as string but returned type %T", res)
		}
	case AsAny:
		node, err := ir.FromAny(res)
		if err != nil {
			return nil, fmt.Errorf("could not translate result of %q: %w", src, err)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("invalid eval as: %q", as)
	}
}

func run(src string, env Env, doc *ir.Node) (any, error) {
	program, err := expr.Compile(src, append(exprOpts(doc), expr.Env(map[string]any(env)))...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := expr.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return res, nil
}
