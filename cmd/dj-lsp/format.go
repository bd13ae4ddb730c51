package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc.content, int(params.Options.TabSize))
}

// formatEdits returns a single edit replacing content with its indented
// encoding, no edits when it is already formatted, and nil when content
// does not parse.
func formatEdits(content string, indent int) ([]protocol.TextEdit, error) {
	node, err := parse.ParseString(content)
	if err != nil {
		return nil, nil
	}
	opts := []encode.EncodeOption{}
	if indent > 0 {
		opts = append(opts, encode.EncodeIndent(indent))
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	formatted := buf.String()
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(content, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
