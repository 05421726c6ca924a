package parser

import (
	"io"

	"github.com/dhamidi/acels/ace/keyword"
	"github.com/dhamidi/acels/ace/marker"
)

type Option func(*Parser)

// WithRecovery replaces malformed statements and attributes with
// InvalidStatement and InvalidAttribute placeholders and keeps parsing after
// them. Without it, parsing stops at the first statement that does not match
// and the rest of the input is left out of the tree.
func WithRecovery() Option {
	return func(p *Parser) {
		p.recovery = true
	}
}

// WithCompletions sets the candidate table used by query results.
func WithCompletions(table marker.Table) Option {
	return func(p *Parser) {
		p.completions = table
	}
}

type Parser struct {
	recovery    bool
	completions marker.Table
}

func New(opts ...Option) *Parser {
	p := &Parser{completions: keyword.Completions}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Recovers reports whether the parser was built WithRecovery.
func (p *Parser) Recovers() bool {
	return p.recovery
}

// Parse builds the tree for src. It never fails: input that does not match
// the grammar is reported through Document.Diagnostics.
func (p *Parser) Parse(src string) *Document {
	doc := newGrammar(p.recovery).document(src)
	doc.completions = p.completions
	return doc
}

// Parse is New(opts...).Parse(src).
func Parse(src string, opts ...Option) *Document {
	return New(opts...).Parse(src)
}

// ParseReader reads r to the end and parses it. The only error is the one
// returned while reading.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...), nil
}

// Document is the root of the tree. It is immutable once Parse returns and
// may be queried from several goroutines at once.
type Document struct {
	// Leading is the trivia before the first statement, the only trivia not
	// trailing a token.
	Leading    []Trivia
	Statements []Statement

	source      string
	unparsed    *Range
	residual    Diagnostic
	completions marker.Table
}

// Source returns the text the document was parsed from.
func (d *Document) Source() string {
	return d.source
}

// Range covers the whole source text.
func (d *Document) Range() Range {
	return Range{End: PositionAt(d.source, len(d.source))}
}

// Unparsed returns the range of the input left out of the tree because no
// statement matched there.
func (d *Document) Unparsed() (Range, bool) {
	if d.unparsed == nil {
		return Range{}, false
	}
	return *d.unparsed, true
}

// Diagnostics lists the recovered placeholders in source order, followed by
// the failure at the start of the unparsed input if there is one.
func (d *Document) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for _, s := range d.Statements {
		Walk(s, func(n Node) bool {
			switch n := n.(type) {
			case *InvalidStatement:
				out = append(out, n.Diagnostic)
			case *InvalidAttribute:
				out = append(out, n.Diagnostic)
			}
			return true
		})
	}
	if d.unparsed != nil {
		out = append(out, d.residual)
	}
	return out
}
