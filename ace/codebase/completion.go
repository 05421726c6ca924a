package codebase

import (
	"github.com/dhamidi/acels/ace/keyword"
	"github.com/dhamidi/acels/ace/marker"
	"github.com/dhamidi/acels/ace/parser"
)

type CompletionKind int

const (
	CompletionKindKeyword CompletionKind = iota
	CompletionKindSnippet
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// CompletionsAtPoint returns the candidates for the position in the file at
// path. Statement pragmas with a snippet insert the whole block.
func (c *Codebase) CompletionsAtPoint(path string, pos parser.Position) []CompletionItem {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}

	res := f.Document.QueryPosition(pos)
	detail := detailFor(res.Label())

	var items []CompletionItem
	for _, label := range res.Completions() {
		item := CompletionItem{
			Label:      label,
			Kind:       CompletionKindKeyword,
			Detail:     detail,
			InsertText: label,
		}
		if res.Label() == marker.Statement {
			if snippet := keyword.Snippet(label); snippet != "" {
				item.Kind = CompletionKindSnippet
				item.InsertText = snippet
			}
		}
		items = append(items, item)
	}
	return items
}

func detailFor(l marker.Label) string {
	switch l {
	case marker.Statement:
		return "statement"
	case marker.Attribute:
		return "attribute"
	}
	return ""
}
