package ir

import (
	"fmt"
	"strconv"
)

// Index is a key into a node: Idx for arrays, Key for objects.
type Index interface {
	// indexInto returns the addressed child or nil when absent.
	indexInto(y *Node) *Node
	// indexOrInsert returns the addressed child, creating object slots,
	// and panics on misuse.
	indexOrInsert(y *Node) *Node

	fmt.Stringer
}

// Idx addresses an array element by position.
type Idx int

// Key addresses an object field by name.
type Key string

func (i Idx) String() string { return "[" + strconv.Itoa(int(i)) + "]" }
func (k Key) String() string { return "." + pathString(string(k)) }

func (i Idx) indexInto(y *Node) *Node {
	if y.Type != ArrayType || i < 0 || int(i) >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (i Idx) indexOrInsert(y *Node) *Node {
	if y.Type != ArrayType {
		panic(fmt.Errorf("%w: cannot access index %d of %s", ErrTypeMismatch, int(i), y.Type))
	}
	if i < 0 || int(i) >= len(y.Values) {
		panic(fmt.Errorf("%w: cannot access index %d of array of length %d", ErrIndexOutOfBounds, int(i), len(y.Values)))
	}
	return y.Values[i]
}

func (k Key) indexInto(y *Node) *Node {
	if y.Type != ObjectType {
		return nil
	}
	return y.Fields[string(k)]
}

func (k Key) indexOrInsert(y *Node) *Node {
	if y.Type == NullType {
		*y = *EmptyObject()
	}
	if y.Type != ObjectType {
		panic(fmt.Errorf("%w: cannot access key %q in %s", ErrTypeMismatch, string(k), y.Type))
	}
	if y.Fields == nil {
		y.Fields = map[string]*Node{}
	}
	v := y.Fields[string(k)]
	if v == nil {
		v = Null()
		y.Fields[string(k)] = v
	}
	return v
}

// sentinelNull is returned by At on a miss. It is shared and must never
// be written to.
var sentinelNull = &Node{Type: NullType}

// IsSentinelNull reports whether y is the shared null returned by At.
func IsSentinelNull(y *Node) bool {
	return y == sentinelNull
}

// Get returns the child of y at ix, or nil if y has no such child. A type
// mismatch between y and ix, a missing key and an out of range index all
// yield nil.
func (y *Node) Get(ix Index) *Node {
	if y == nil {
		return nil
	}
	return ix.indexInto(y)
}

// At is like Get but returns a shared null node rather than nil on a miss,
// so lookups can be chained:
//
//	y.At(ir.Key("a")).At(ir.Idx(2)).At(ir.Key("b"))
//
// The null returned on a miss must not be modified.
func (y *Node) At(ix Index) *Node {
	if res := y.Get(ix); res != nil {
		return res
	}
	return sentinelNull
}

// IndexOrInsert returns the child of y at ix for writing.
//
// For an Idx, y must be an array and ix must address an existing element.
// For a Key, a null y is first replaced in place by an empty object, then
// the field is created with a null value if absent; y must be null or an
// object.
//
// Violating these preconditions is a programming error: IndexOrInsert
// panics with an error wrapping ErrIndexOutOfBounds or ErrTypeMismatch.
// Use SetPath for a variant which returns those errors instead.
func (y *Node) IndexOrInsert(ix Index) *Node {
	if y == sentinelNull {
		panic(fmt.Errorf("%w: %s", ErrSentinelMutation, ix))
	}
	return ix.indexOrInsert(y)
}

// Set replaces the child of y at ix with v, with the preconditions of
// IndexOrInsert. v is stored by value; the tree does not alias it.
func (y *Node) Set(ix Index, v *Node) {
	dst := y.IndexOrInsert(ix)
	if v == nil {
		v = Null()
	}
	*dst = *v.Clone()
}

// checkIndexOrInsert returns the error IndexOrInsert would panic with.
func (y *Node) checkIndexOrInsert(ix Index) error {
	if y == sentinelNull {
		return fmt.Errorf("%w: %s", ErrSentinelMutation, ix)
	}
	switch x := ix.(type) {
	case Idx:
		if y.Type != ArrayType {
			return fmt.Errorf("%w: cannot access index %d of %s", ErrTypeMismatch, int(x), y.Type)
		}
		if x < 0 || int(x) >= len(y.Values) {
			return fmt.Errorf("%w: cannot access index %d of array of length %d", ErrIndexOutOfBounds, int(x), len(y.Values))
		}
	case Key:
		if y.Type != NullType && y.Type != ObjectType {
			return fmt.Errorf("%w: cannot access key %q in %s", ErrTypeMismatch, string(x), y.Type)
		}
	}
	return nil
}
