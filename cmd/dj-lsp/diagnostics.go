package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf16"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"
	"github.com/dandelion-json/dandelion/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.ParseString(content, parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string, diagnostics []protocol.Diagnostic) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnostics,
	})
	if err != nil && debug.LSP() {
		debug.Logf("dj-lsp: publish diagnostics for %s: %v\n", uri, err)
	}
}

// diagnostics reports the parse error of doc, if any. A parse stops at
// the first error so there is at most one.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "dj",
	}
	var pe *parse.ParseErr
	if errors.As(doc.err, &pe) {
		d.Message = pe.Err.Error()
		line, col := pe.Pos.LineCol()
		col = utf16Col(doc.content, line, col)
		d.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(res, d)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, diagnostics(doc))
	return nil
}

// DidChange expects full text changes, as advertised by Initialize; the
// last change wins.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if s.docs.get(uri) == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri, diagnostics(doc))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	s.publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// lineColToOffset converts an LSP line and UTF-16 column to a rune
// offset in content, as used by token.Pos.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	i := 0
	for _, r := range content {
		if currentLine == line && currentCol >= col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol += utf16Len(r)
		}
		i++
	}
	return i
}

// utf16Col converts a rune column on line to the UTF-16 column LSP
// clients count in.
func utf16Col(content string, line, col int) int {
	currentLine := 0
	res := 0
	n := 0
	for _, r := range content {
		if currentLine > line || (currentLine == line && n == col) {
			break
		}
		if r == '\n' {
			currentLine++
			continue
		}
		if currentLine == line {
			res += utf16Len(r)
			n++
		}
	}
	return res
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
