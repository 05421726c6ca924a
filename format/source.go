package format

import (
	"io"
	"strings"

	"github.com/dhamidi/acels/ace/parser"
)

// Source rebuilds the text of doc from its leading trivia, its tokens and
// the text held by recovery placeholders. The result equals the parsed
// input up to the start of Document.Unparsed.
func Source(doc *parser.Document) string {
	var sb strings.Builder
	for _, tr := range doc.Leading {
		sb.WriteString(tr.Text)
	}
	for _, s := range doc.Statements {
		parser.Walk(s, func(n parser.Node) bool {
			switch n := n.(type) {
			case *parser.Token:
				sb.WriteString(n.Source())
			case *parser.InvalidStatement:
				sb.WriteString(n.Text)
			case *parser.InvalidAttribute:
				sb.WriteString(n.Text)
			}
			return true
		})
	}
	return sb.String()
}

// SourceEncoder writes Source(doc).
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(doc *parser.Document) error {
	_, err := io.WriteString(e.w, Source(doc))
	return err
}
