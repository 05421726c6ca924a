package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/acels/ace/marker"
	"github.com/dhamidi/acels/ace/parser"
)

// TreeEncoder prints one node per line, indented by depth:
//
//	Cpu 0:0-3:2
//	  Token cpu "cpu" 0:0-0:4
//	  Token { "{" 0:4-1:4 [Attribute]
type TreeEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Document %s\n", e.doc.Range())
	for _, s := range e.doc.Statements {
		writeNode(&sb, s, 1)
	}
	if r, ok := e.doc.Unparsed(); ok {
		fmt.Fprintf(&sb, "  Unparsed %s\n", r)
	}
	for _, d := range e.doc.Diagnostics() {
		fmt.Fprintf(&sb, "%s\n", d)
	}
	return []byte(sb.String()), nil
}

func writeNode(sb *strings.Builder, n parser.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(parser.KindOf(n).String())

	switch n := n.(type) {
	case *parser.Token:
		fmt.Fprintf(sb, " %s %q", n.Kind, n.Text)
	case *parser.InvalidStatement:
		fmt.Fprintf(sb, " %q", n.Text)
	case *parser.InvalidAttribute:
		fmt.Fprintf(sb, " %q", n.Text)
	}

	fmt.Fprintf(sb, " %s", n.Range())
	if l := n.Label(); l != marker.None {
		fmt.Fprintf(sb, " [%s]", l)
	}
	sb.WriteByte('\n')

	for _, child := range parser.Children(n) {
		writeNode(sb, child, depth+1)
	}
}
