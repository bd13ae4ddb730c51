package parse

import (
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the start position of every node of a
// successfully parsed tree. Nothing is recorded when parsing fails.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
