package parser

import "github.com/dhamidi/acels/ace/marker"

// Result is the outcome of a query: a node, or a miss when no statement
// contains the position.
type Result struct {
	node        Node
	completions marker.Table
}

// Query resolves a zero-based line and character to the most specific node
// containing it.
func (d *Document) Query(line, character uint32) Result {
	return d.QueryPosition(Position{Line: line, Character: character})
}

func (d *Document) QueryPosition(pos Position) Result {
	for _, s := range d.Statements {
		if !s.Range().Contains(pos) {
			continue
		}
		if n, ok := s.Query(pos); ok {
			return Result{node: n, completions: d.completions}
		}
	}
	return Result{completions: d.completions}
}

// Path returns the nodes containing pos from the statement down to the
// node Query would return. It is empty on a miss.
func (d *Document) Path(pos Position) []Node {
	var path []Node
	for _, s := range d.Statements {
		if s.Range().Contains(pos) {
			path = append(path, s)
			break
		}
	}
	for len(path) > 0 {
		var next Node
		for _, c := range Children(path[len(path)-1]) {
			if c.Range().Contains(pos) {
				next = c
				break
			}
		}
		if next == nil {
			break
		}
		path = append(path, next)
	}
	return path
}

// Node returns the resolved node, or false on a miss.
func (r Result) Node() (Node, bool) {
	return r.node, r.node != nil
}

// Miss reports whether the position fell outside every statement: before
// the first, between two, or after the last.
func (r Result) Miss() bool {
	return r.node == nil
}

// Label is the resolved node's label. A miss is treated as a position
// between statements and yields marker.Statement.
func (r Result) Label() marker.Label {
	if r.node == nil {
		return marker.Statement
	}
	return r.node.Label()
}

// Completions returns the candidates for Label.
func (r Result) Completions() []string {
	return r.completions.Candidates(r.Label())
}
