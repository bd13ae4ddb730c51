package libdiff

import (
	"fmt"

	"github.com/dandelion-json/dandelion/ir"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// Change is one step turning one tree into another. Path is a JSON
// pointer valid once the preceding changes of the same diff have been
// applied.
type Change struct {
	Op   Op
	Path string
	// From is the value removed or replaced, To the value added or
	// the replacement.
	From, To *ir.Node
}

func (c *Change) String() string {
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("add %s", c.Path)
	case OpRemove:
		return fmt.Sprintf("remove %s", c.Path)
	default:
		return fmt.Sprintf("replace %s", c.Path)
	}
}

func MakeChange(path string, from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: OpAdd, Path: path, To: to.Clone()}
	case to == nil:
		return Change{Op: OpRemove, Path: path, From: from.Clone()}
	default:
		return Change{Op: OpReplace, Path: path, From: from.Clone(), To: to.Clone()}
	}
}

// ToPatch renders changes as an RFC 6902 JSON Patch document.
func ToPatch(changes []Change) *ir.Node {
	res := ir.EmptyArray()
	for i := range changes {
		c := &changes[i]
		op := ir.FromMap(map[string]*ir.Node{
			"op":   ir.FromString(string(c.Op)),
			"path": ir.FromString(c.Path),
		})
		if c.Op != OpRemove {
			op.Fields["value"] = c.To.Clone()
		}
		res.Values = append(res.Values, op)
	}
	return res
}
