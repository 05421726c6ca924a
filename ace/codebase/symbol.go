package codebase

import (
	"strings"

	"github.com/dhamidi/acels/ace/parser"
)

type SymbolKind int

const (
	SymbolKindStatement SymbolKind = iota
	SymbolKindAttribute
	SymbolKindInvalid
)

// Symbol is an outline entry: a statement with its attributes as children.
type Symbol struct {
	Name   string
	Detail string
	Kind   SymbolKind
	Range  parser.Range
	// Selection is the part of Range an editor highlights, the pragma.
	Selection parser.Range
	Children  []Symbol
}

// SymbolsOf returns the outline of the file at path.
func (c *Codebase) SymbolsOf(path string) []Symbol {
	f := c.GetFile(path)
	if f == nil {
		return nil
	}

	var out []Symbol
	for _, s := range f.Document.Statements {
		switch s := s.(type) {
		case *parser.Cpu:
			sym := statementSymbol(s.Pragma, s.Range())
			for _, a := range s.Attributes {
				sym.Children = append(sym.Children, attributeSymbol(a))
				if name, ok := a.(*parser.Name); ok {
					sym.Detail = name.Identifier.Text
				}
			}
			out = append(out, sym)
		case *parser.Config:
			sym := statementSymbol(s.Pragma, s.Range())
			for _, a := range s.Attributes {
				sym.Children = append(sym.Children, attributeSymbol(a))
			}
			out = append(out, sym)
		case *parser.InvalidStatement:
			out = append(out, invalidSymbol(s.Text, s.Range(), s.Diagnostic))
		}
	}
	return out
}

func statementSymbol(pragma *parser.Token, rng parser.Range) Symbol {
	return Symbol{
		Name:      pragma.Text,
		Kind:      SymbolKindStatement,
		Range:     rng,
		Selection: pragma.TextRange(),
	}
}

func attributeSymbol(a parser.Node) Symbol {
	var pragma *parser.Token
	var value parser.Node
	switch a := a.(type) {
	case *parser.Name:
		pragma, value = a.Pragma, a.Identifier
	case *parser.Vlen:
		pragma, value = a.Pragma, a.Length
	case *parser.TimeoutCycle:
		pragma, value = a.Pragma, a.Cycles
	case *parser.InvalidAttribute:
		return invalidSymbol(a.Text, a.Range(), a.Diagnostic)
	}

	var detail string
	if toks := parser.Tokens(value); len(toks) > 0 {
		detail = toks[0].Text
	}
	return Symbol{
		Name:      pragma.Text,
		Detail:    detail,
		Kind:      SymbolKindAttribute,
		Range:     a.Range(),
		Selection: pragma.TextRange(),
	}
}

func invalidSymbol(text string, rng parser.Range, d parser.Diagnostic) Symbol {
	name := strings.TrimSpace(text)
	if i := strings.IndexAny(name, " \t\r\n"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		name = "invalid"
	}
	sel := d.Range
	if !rng.Covers(sel) {
		sel = rng
	}
	return Symbol{
		Name:      name,
		Detail:    d.Message,
		Kind:      SymbolKindInvalid,
		Range:     rng,
		Selection: sel,
	}
}
