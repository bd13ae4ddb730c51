// Package ir provides the in-memory value tree for JSON documents.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field selects the variant
// and the payload field it uses:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number, always a finite float64
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields, keyed by name; iteration order is unspecified
//
// Every container exclusively owns its children. There are no parent
// links, so moving a sub-tree is a matter of storing its pointer in
// exactly one place.
//
// # Indexing
//
// Index keys are Idx (array position) and Key (object field name).
//
//	v := node.Get(ir.Key("name"))       // nil if absent
//	v = node.At(ir.Key("a")).At(ir.Idx(0)) // shared null if absent
//	node.IndexOrInsert(ir.Key("k")).Bool = true
//
// Reads never fail. IndexOrInsert creates missing object fields, and turns
// a null node into an object, but panics when asked to index an array out
// of bounds or to index a node of the wrong type. SetPath provides the
// same writes with errors instead of panics.
//
// # Related Packages
//
//   - github.com/dandelion-json/dandelion/parse - parse JSON text into nodes
//   - github.com/dandelion-json/dandelion/encode - encode nodes as text
package ir
