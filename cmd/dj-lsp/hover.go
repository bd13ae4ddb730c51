package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/token"
	"go.lsp.dev/protocol"
)

const maxHoverValue = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	node := nodeAt(doc.node, doc.positions, off)
	if node == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node),
		},
	}, nil
}

// nodeAt returns the node starting closest before rune offset off. Nodes
// record only where they start, so a position in the whitespace after a
// value still refers to that value.
func nodeAt(root *ir.Node, positions map[*ir.Node]*token.Pos, off int) *ir.Node {
	var (
		best    *ir.Node
		bestOff = -1
	)
	_ = root.Visit(func(y *ir.Node) (bool, error) {
		pos := positions[y]
		if pos == nil {
			return true, nil
		}
		if pos.I <= off && pos.I >= bestOff {
			best, bestOff = y, pos.I
		}
		return true, nil
	})
	return best
}

func hoverText(node *ir.Node) string {
	parts := []string{fmt.Sprintf("**Type:** %s", node.Type)}
	switch {
	case node.Type.IsLeaf():
		v := encode.MustString(node, encode.EncodeWire(true))
		if r := []rune(v); len(r) > maxHoverValue {
			v = string(r[:maxHoverValue]) + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", v))
	case node.Type == ir.ArrayType:
		parts = append(parts, fmt.Sprintf("array with %d elements", node.Len()))
	default:
		parts = append(parts, fmt.Sprintf("object with %d keys", node.Len()))
	}
	return strings.Join(parts, "\n\n")
}
