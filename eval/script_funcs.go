package eval

import (
	"os"

	"github.com/dandelion-json/dandelion/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res != nil, nil
		},
			new(func(string) bool)),
		expr.Function("truthy", func(params ...any) (any, error) {
			node, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return ir.Truth(node), nil
		},
			new(func(any) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
