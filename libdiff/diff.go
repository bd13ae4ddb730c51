package libdiff

import (
	"github.com/dandelion-json/dandelion/ir"
)

type DiffFunc func(path string, from, to *ir.Node) []Change

// Diff returns the changes which turn from into to, in the order they
// must be applied, or nil if the trees are equal. Object fields are
// visited in sorted key order; arrays are compared element by element
// after aligning equal runs.
func Diff(from, to *ir.Node) []Change {
	return diff("", from, to)
}

func diff(path string, from, to *ir.Node) []Change {
	if ir.Equal(from, to) {
		return nil
	}
	if from.Type != to.Type {
		return []Change{MakeChange(path, from, to)}
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(path, from, to, diff)
	case ir.ArrayType:
		return DiffArrayByIndex(path, from, to, diff)
	default:
		return []Change{MakeChange(path, from, to)}
	}
}

func DiffObject(path string, from, to *ir.Node, df DiffFunc) []Change {
	var res []Change
	for _, k := range from.Keys() {
		fv := from.Fields[k]
		tv, ok := to.Fields[k]
		if !ok {
			res = append(res, MakeChange(PointerAppend(path, k), fv, nil))
			continue
		}
		res = append(res, df(PointerAppend(path, k), fv, tv)...)
	}
	for _, k := range to.Keys() {
		if _, ok := from.Fields[k]; ok {
			continue
		}
		res = append(res, MakeChange(PointerAppend(path, k), nil, to.Fields[k]))
	}
	return res
}
