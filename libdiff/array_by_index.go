package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/dandelion-json/dandelion/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we map each element to a rune standing for its summary
//
//  1. scalars are summarised by type and value, containers by type
//  2. diff the sequences of summaries
//  3. equal runs of containers are recursed into
//  4. in a run of deletes and inserts, pairs become replaces
//
// The running index ri is the position in the array with all previous
// changes applied, so the resulting paths can be applied in order.
func DiffArrayByIndex(path string, from, to *ir.Node, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti, ri := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		if diffs[i].Type == diffpatch.DiffEqual {
			for range utf8.RuneCountInString(diffs[i].Text) {
				res = append(res, df(itemPath(path, ri), from.Values[fi], to.Values[ti])...)
				ri++
				fi++
				ti++
			}
			continue
		}
		nDel, nIns := 0, 0
		for ; i < len(diffs) && diffs[i].Type != diffpatch.DiffEqual; i++ {
			n := utf8.RuneCountInString(diffs[i].Text)
			if diffs[i].Type == diffpatch.DiffDelete {
				nDel += n
			} else {
				nIns += n
			}
		}
		i--
		nRepl := min(nDel, nIns)
		for range nRepl {
			res = append(res, MakeChange(itemPath(path, ri), from.Values[fi], to.Values[ti]))
			ri++
			fi++
			ti++
		}
		for range nDel - nRepl {
			res = append(res, MakeChange(itemPath(path, ri), from.Values[fi], nil))
			fi++
		}
		for range nIns - nRepl {
			res = append(res, MakeChange(itemPath(path, ri), nil, to.Values[ti]))
			ri++
			ti++
		}
	}
	return res
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if node.Number == 0 {
			return node.Type.String() + "-0"
		}
		return node.Type.String() + "-" + strconv.FormatFloat(node.Number, 'g', -1, 64)
	default:
		panic("type")
	}
}

func itemPath(path string, i int) string {
	return PointerAppend(path, strconv.Itoa(i))
}
