package codebase

import (
	"fmt"
	"strings"

	"github.com/dhamidi/acels/ace/parser"
)

type Hover struct {
	Range parser.Range
	// Text is Markdown.
	Text string
}

// HoverAtPoint describes the token at pos and the constructs around it.
func (c *Codebase) HoverAtPoint(path string, pos parser.Position) (Hover, bool) {
	f := c.GetFile(path)
	if f == nil {
		return Hover{}, false
	}
	nodes := f.Document.Path(pos)
	if len(nodes) == 0 {
		return Hover{}, false
	}
	leaf := nodes[len(nodes)-1]

	var lines []string
	switch n := leaf.(type) {
	case *parser.Token:
		lines = append(lines, fmt.Sprintf("`%s` %s", n.Text, describeToken(n)))
	case *parser.InvalidStatement:
		lines = append(lines, "invalid statement: "+n.Diagnostic.Message)
	case *parser.InvalidAttribute:
		lines = append(lines, "invalid attribute: "+n.Diagnostic.Message)
	}

	for i := len(nodes) - 2; i >= 0; i-- {
		switch n := nodes[i].(type) {
		case parser.Number:
			if v, err := n.Value(); err == nil {
				lines = append(lines, fmt.Sprintf("value %d (0x%x)", v, v))
			} else {
				lines = append(lines, "value out of range")
			}
		case *parser.Name, *parser.Vlen, *parser.TimeoutCycle:
			lines = append(lines, "in attribute `"+pragmaOf(n)+"`")
		case *parser.Cpu, *parser.Config:
			lines = append(lines, "in statement `"+pragmaOf(n)+"`")
		}
	}

	rng := leaf.Range()
	if t, ok := leaf.(*parser.Token); ok {
		rng = t.TextRange()
	}
	return Hover{Range: rng, Text: strings.Join(lines, "\n\n")}, true
}

func describeToken(t *parser.Token) string {
	switch {
	case t.Kind.IsPragma():
		return "keyword"
	case t.Kind == parser.TokenIdent:
		return "identifier"
	case t.Kind == parser.TokenHexNumber:
		return "hexadecimal number"
	case t.Kind == parser.TokenDecNumber:
		return "decimal number"
	}
	return "symbol"
}

// pragmaOf returns the keyword text of a statement or attribute.
func pragmaOf(n parser.Node) string {
	switch n := n.(type) {
	case *parser.Cpu:
		return n.Pragma.Text
	case *parser.Config:
		return n.Pragma.Text
	case *parser.Name:
		return n.Pragma.Text
	case *parser.Vlen:
		return n.Pragma.Text
	case *parser.TimeoutCycle:
		return n.Pragma.Text
	}
	return ""
}
