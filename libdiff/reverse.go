package libdiff

import (
	"fmt"
	"slices"
)

// Reverse returns the changes undoing changes: applying changes and then
// Reverse(changes) gives back the original tree.
func Reverse(changes []Change) ([]Change, error) {
	res := make([]Change, 0, len(changes))
	for _, c := range slices.Backward(changes) {
		switch c.Op {
		case OpAdd:
			res = append(res, MakeChange(c.Path, c.To, nil))
		case OpRemove:
			res = append(res, MakeChange(c.Path, nil, c.From))
		case OpReplace:
			res = append(res, MakeChange(c.Path, c.To, c.From))
		default:
			return nil, fmt.Errorf("cannot reverse op %q at %s", c.Op, c.Path)
		}
	}
	return res, nil
}
