package format

import (
	"github.com/dhamidi/acels/ace/marker"
	"github.com/dhamidi/acels/ace/parser"
)

// treeDocument is the serializable form of a document shared by the JSON and
// msgpack encoders.
type treeDocument struct {
	Range       treeRange        `json:"range" msgpack:"range"`
	Leading     []treeTrivia     `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Statements  []*treeNode      `json:"statements" msgpack:"statements"`
	Unparsed    *treeRange       `json:"unparsed,omitempty" msgpack:"unparsed,omitempty"`
	Diagnostics []treeDiagnostic `json:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

type treeNode struct {
	Kind     string       `json:"kind" msgpack:"kind"`
	Range    treeRange    `json:"range" msgpack:"range"`
	Label    string       `json:"label,omitempty" msgpack:"label,omitempty"`
	Token    string       `json:"token,omitempty" msgpack:"token,omitempty"`
	Text     string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Trivia   []treeTrivia `json:"trivia,omitempty" msgpack:"trivia,omitempty"`
	Error    string       `json:"error,omitempty" msgpack:"error,omitempty"`
	Children []*treeNode  `json:"children,omitempty" msgpack:"children,omitempty"`
}

type treeRange struct {
	Start treePosition `json:"start" msgpack:"start"`
	End   treePosition `json:"end" msgpack:"end"`
}

type treePosition struct {
	Line      uint32 `json:"line" msgpack:"line"`
	Character uint32 `json:"character" msgpack:"character"`
}

type treeTrivia struct {
	Kind  string    `json:"kind" msgpack:"kind"`
	Text  string    `json:"text" msgpack:"text"`
	Range treeRange `json:"range" msgpack:"range"`
}

type treeDiagnostic struct {
	Range    treeRange `json:"range" msgpack:"range"`
	Severity string    `json:"severity" msgpack:"severity"`
	Message  string    `json:"message" msgpack:"message"`
}

func rangeToTree(r parser.Range) treeRange {
	return treeRange{
		Start: treePosition{Line: r.Start.Line, Character: r.Start.Character},
		End:   treePosition{Line: r.End.Line, Character: r.End.Character},
	}
}

func triviaToTree(trivia []parser.Trivia) []treeTrivia {
	var out []treeTrivia
	for _, tr := range trivia {
		if tr.Kind == parser.TriviaEOF {
			continue
		}
		out = append(out, treeTrivia{Kind: tr.Kind.String(), Text: tr.Text, Range: rangeToTree(tr.Range)})
	}
	return out
}

func documentToTree(doc *parser.Document) *treeDocument {
	td := &treeDocument{
		Range:      rangeToTree(doc.Range()),
		Leading:    triviaToTree(doc.Leading),
		Statements: make([]*treeNode, len(doc.Statements)),
	}
	for i, s := range doc.Statements {
		td.Statements[i] = nodeToTree(s)
	}
	if r, ok := doc.Unparsed(); ok {
		tr := rangeToTree(r)
		td.Unparsed = &tr
	}
	for _, d := range doc.Diagnostics() {
		td.Diagnostics = append(td.Diagnostics, treeDiagnostic{
			Range:    rangeToTree(d.Range),
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}
	return td
}

func nodeToTree(n parser.Node) *treeNode {
	tn := &treeNode{
		Kind:  parser.KindOf(n).String(),
		Range: rangeToTree(n.Range()),
	}
	if l := n.Label(); l != marker.None {
		tn.Label = l.String()
	}

	switch n := n.(type) {
	case *parser.Token:
		tn.Token = n.Kind.String()
		tn.Text = n.Text
		tn.Trivia = triviaToTree(n.Trivia)
	case *parser.InvalidStatement:
		tn.Text = n.Text
		tn.Error = n.Diagnostic.Message
	case *parser.InvalidAttribute:
		tn.Text = n.Text
		tn.Error = n.Diagnostic.Message
	}

	children := parser.Children(n)
	if len(children) > 0 {
		tn.Children = make([]*treeNode, len(children))
		for i, child := range children {
			tn.Children[i] = nodeToTree(child)
		}
	}
	return tn
}
