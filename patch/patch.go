package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 JSON Patch ops, an array of operation
// objects, to a copy of doc and returns the copy.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: json patch must be an array, got %s", ErrPatch, ops.Type)
	}
	d, err := toJSON(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	jDoc, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch %s on %s\n", d, jDoc)
	}
	jOut, err := p.Apply(jDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(jOut)
}

// ApplyChanges applies changes computed by libdiff.Diff to a copy of doc.
func ApplyChanges(doc *ir.Node, changes []libdiff.Change) (*ir.Node, error) {
	if len(changes) == 0 {
		return doc.Clone(), nil
	}
	// whole document replacement, which json-patch does not address
	if len(changes) == 1 && changes[0].Path == "" {
		if changes[0].Op == libdiff.OpRemove {
			return ir.Null(), nil
		}
		return changes[0].To.Clone(), nil
	}
	return Apply(doc, libdiff.ToPatch(changes))
}

// Merge applies the RFC 7386 merge patch mp to a copy of doc.
func Merge(doc, mp *ir.Node) (*ir.Node, error) {
	jDoc, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	jPatch, err := toJSON(mp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", jPatch, jDoc)
	}
	jOut, err := jsonpatch.MergePatch(jDoc, jPatch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(jOut)
}

// CreateMerge returns a merge patch which Merge turns from into to. Both
// must be objects.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	if from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: merge patches are between objects, got %s and %s", ErrPatch, from.Type, to.Type)
	}
	jFrom, err := toJSON(from)
	if err != nil {
		return nil, err
	}
	jTo, err := toJSON(to)
	if err != nil {
		return nil, err
	}
	jOut, err := jsonpatch.CreateMergePatch(jFrom, jTo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return fromJSON(jOut)
}

func toJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fromJSON reads the output of json-patch, which may contain \u escapes.
func fromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.FromAny(v)
}
