package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Node is a JSON value. Type selects which of the payload fields is
// meaningful: Bool, Number, String, Values (arrays) or Fields (objects).
//
// A node owns its children; trees built by this module never share
// sub-trees and carry no parent links.
type Node struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Values []*Node
	Fields map[string]*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromFloat panics if f is not finite; numbers in a tree are always finite.
func FromFloat(f float64) *Node {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic(fmt.Sprintf("ir: non-finite number %v", f))
	}
	return &Node{
		Type:   NumberType,
		Number: f,
	}
}

func FromInt(v int64) *Node {
	return FromFloat(float64(v))
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func EmptyArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

func EmptyObject() *Node {
	return &Node{Type: ObjectType, Fields: map[string]*Node{}}
}

func FromSlice(ySlice []*Node) *Node {
	res := EmptyArray()
	res.Values = append(res.Values, ySlice...)
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := EmptyObject()
	maps.Copy(res.Fields, yMap)
	return res
}

// Keys returns the keys of an object in sorted order, or nil for
// any other type.
func (y *Node) Keys() []string {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	return slices.Sorted(maps.Keys(y.Fields))
}

// Len returns the number of elements of an array or fields of an object.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ArrayType:
		return len(y.Values)
	case ObjectType:
		return len(y.Fields)
	}
	return 0
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		Bool:   y.Bool,
		Number: y.Number,
		String: y.String,
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	if y.Fields != nil {
		res.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y and, while f returns true, on its descendants in
// pre-order. Object fields are visited in sorted key order.
func (y *Node) Visit(f func(y *Node) (bool, error)) error {
	dive, err := f(y)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	switch y.Type {
	case ArrayType:
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	case ObjectType:
		for _, k := range y.Keys() {
			if err := y.Fields[k].Visit(f); err != nil {
				return err
			}
		}
	}
	return nil
}
