package ir

import (
	"encoding/json"
	"fmt"
	"math"
)

// ToAny converts node to the plain Go values used by encoding/json:
// nil, bool, float64, string, []any and map[string]any.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for k, v := range node.Fields {
			res[k] = ToAny(v)
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny is the inverse of ToAny. It also accepts Go integer and float
// kinds, json.Number and nodes, which are cloned.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return fromFloatChecked(x)
	case float32:
		return fromFloatChecked(float64(x))
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromFloatChecked(float64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromFloatChecked(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", x, err)
		}
		return fromFloatChecked(f)
	case []any:
		res := EmptyArray()
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	case map[string]any:
		res := EmptyObject()
		for k, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathString(k), err)
			}
			res.Fields[k] = y
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, v)
	}
}

func fromFloatChecked(f float64) (*Node, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, fmt.Errorf("non-finite number %v", f)
	}
	return FromFloat(f), nil
}
