package main

import (
	"context"

	"go.lsp.dev/protocol"
)

var completionItems = []protocol.CompletionItem{
	{Label: "null", Kind: protocol.CompletionItemKindKeyword, Detail: "null"},
	{Label: "true", Kind: protocol.CompletionItemKindKeyword, Detail: "boolean"},
	{Label: "false", Kind: protocol.CompletionItemKindKeyword, Detail: "boolean"},
	{Label: "{}", Kind: protocol.CompletionItemKindValue, Detail: "object"},
	{Label: "[]", Kind: protocol.CompletionItemKindValue, Detail: "array"},
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems,
	}, nil
}

func (s *Server) CompletionResolve(ctx context.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return params, nil
}
