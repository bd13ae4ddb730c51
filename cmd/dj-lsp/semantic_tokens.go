package main

import (
	"context"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
	"go.lsp.dev/protocol"
)

// semanticTokenTypes is the legend sent in Initialize; token data refers
// to it by index.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

// semanticTokenType maps the encoder's color attributes to a token type,
// so editors highlight the same parts dj colors on a terminal.
func semanticTokenType(nodeType ir.Type, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	}
	switch nodeType {
	case ir.NumberType:
		return protocol.SemanticTokenNumber
	case ir.BoolType, ir.NullType:
		return protocol.SemanticTokenKeyword
	default:
		return protocol.SemanticTokenString
	}
}

func semanticTokenIndex(t protocol.SemanticTokenTypes) uint32 {
	for i, tt := range semanticTokenTypes {
		if tt == t {
			return uint32(i)
		}
	}
	return 0
}

type semToken struct {
	line, char, length uint32
	tokenType          protocol.SemanticTokenTypes
}

// lexTokens splits content into highlightable tokens. It works on text
// that does not parse too, so highlighting survives while typing.
func lexTokens(content string) []semToken {
	rs := []rune(content)
	var (
		res        []semToken
		line, char uint32
		i          int
	)
	emit := func(n int, t ir.Type, attr encode.ColorAttr) {
		res = append(res, semToken{line: line, char: char, length: width(rs[i : i+n]), tokenType: semanticTokenType(t, attr)})
	}
	for i < len(rs) {
		n := 1
		switch r := rs[i]; {
		case r == '\n':
			line++
			char = 0
			i++
			continue
		case r == '{' || r == '}':
			emit(1, ir.ObjectType, encode.SepColor)
		case r == '[' || r == ']' || r == ',':
			emit(1, ir.ArrayType, encode.SepColor)
		case r == ':':
			emit(1, ir.ObjectType, encode.SepColor)
		case r == '"':
			n = stringLen(rs[i:])
			attr := encode.ValueColor
			if followedByColon(rs[i+n:]) {
				attr = encode.FieldColor
			}
			emit(n, ir.StringType, attr)
		case r == '-' || isDigit(r):
			n = spanLen(rs[i:], isNumberRune)
			emit(n, ir.NumberType, encode.ValueColor)
		case isLetter(r):
			n = spanLen(rs[i:], isLetter)
			switch string(rs[i : i+n]) {
			case "true", "false":
				emit(n, ir.BoolType, encode.ValueColor)
			case "null":
				emit(n, ir.NullType, encode.ValueColor)
			}
		}
		char += width(rs[i : i+n])
		i += n
	}
	return res
}

// width is the length of rs in UTF-16 code units, the unit of LSP
// columns.
func width(rs []rune) uint32 {
	n := 0
	for _, r := range rs {
		n += utf16Len(r)
	}
	return uint32(n)
}

// stringLen returns the length of the quoted string at the start of rs,
// stopping at a line end when it is unterminated.
func stringLen(rs []rune) int {
	for i := 1; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		case '\n':
			return i
		}
	}
	return len(rs)
}

func followedByColon(rs []rune) bool {
	for _, r := range rs {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

func spanLen(rs []rune, f func(rune) bool) int {
	n := 1
	for n < len(rs) && f(rs[n]) {
		n++
	}
	return n
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }

func isNumberRune(r rune) bool {
	return isDigit(r) || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-'
}

// encodeSemanticTokens produces the relative encoding of the LSP
// semantic tokens response for tokens on lines first through last.
func encodeSemanticTokens(toks []semToken, first, last uint32) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.line < first || t.line > last {
			continue
		}
		deltaLine := t.line - prevLine
		deltaChar := t.char
		if deltaLine == 0 {
			deltaChar = t.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, semanticTokenIndex(t.tokenType), 0)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(lexTokens(doc.content), 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(lexTokens(doc.content), params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
