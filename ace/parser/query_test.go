package parser

import (
	"reflect"
	"sync"
	"testing"

	"github.com/dhamidi/acels/ace/keyword"
	"github.com/dhamidi/acels/ace/marker"
)

func TestQueryExample(t *testing.T) {
	doc := Parse(exampleSource)

	tests := []struct {
		name  string
		pos   Position
		kind  TokenKind
		text  string
		label marker.Label
	}{
		{"cpu pragma", Position{0, 0}, TokenCpu, "cpu", marker.None},
		{"space after pragma", Position{0, 3}, TokenCpu, "cpu", marker.None},
		{"left brace", Position{0, 4}, TokenLBrace, "{", marker.Attribute},
		{"indentation", Position{1, 2}, TokenLBrace, "{", marker.Attribute},
		{"name pragma", Position{1, 4}, TokenName, "name", marker.None},
		{"inside identifier", Position{1, 14}, TokenIdent, "nx45v", marker.None},
		{"attribute semicolon", Position{1, 16}, TokenSemicolon, ";", marker.Attribute},
		{"number", Position{2, 12}, TokenDecNumber, "512", marker.None},
		{"right brace", Position{3, 0}, TokenRBrace, "}", marker.None},
		{"statement semicolon", Position{3, 1}, TokenSemicolon, ";", marker.Statement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doc.QueryPosition(tt.pos)
			n, ok := res.Node()
			if !ok {
				t.Fatalf("query at %s missed", tt.pos)
			}
			tok, ok := n.(*Token)
			if !ok {
				t.Fatalf("query at %s returned %s, want a token", tt.pos, KindOf(n))
			}
			if tok.Kind != tt.kind || tok.Text != tt.text {
				t.Errorf("got %s %q, want %s %q", tok.Kind, tok.Text, tt.kind, tt.text)
			}
			if res.Label() != tt.label {
				t.Errorf("Label = %s, want %s", res.Label(), tt.label)
			}
		})
	}
}

func TestQueryMiss(t *testing.T) {
	doc := Parse(exampleSource)

	for _, pos := range []Position{{3, 2}, {4, 0}, {9, 9}} {
		res := doc.Query(pos.Line, pos.Character)
		if !res.Miss() {
			t.Errorf("query at %s did not miss", pos)
			continue
		}
		if res.Label() != marker.Statement {
			t.Errorf("miss label = %s, want Statement", res.Label())
		}
		if got := res.Completions(); !reflect.DeepEqual(got, keyword.Statements) {
			t.Errorf("miss completions = %v, want the statement list", got)
		}
	}
}

func TestQueryMissBeforeFirstStatement(t *testing.T) {
	doc := Parse("\n\n// comment\ncpu {};")
	if !doc.Query(0, 0).Miss() {
		t.Error("leading trivia should be a miss")
	}
	if doc.Query(3, 0).Miss() {
		t.Error("cpu pragma should resolve")
	}
}

func TestQueryCompletions(t *testing.T) {
	doc := Parse(exampleSource)

	if got := doc.Query(0, 4).Completions(); !reflect.DeepEqual(got, keyword.Attributes) {
		t.Errorf("left brace completions = %v, want the attribute list", got)
	}
	if got := doc.Query(1, 14).Completions(); len(got) != 0 {
		t.Errorf("identifier completions = %v, want none", got)
	}
	if got := doc.Query(3, 1).Completions(); !reflect.DeepEqual(got, keyword.Statements) {
		t.Errorf("statement semicolon completions = %v, want the statement list", got)
	}
}

func TestQueryCustomCompletions(t *testing.T) {
	table := marker.Table{
		marker.Statement: {"alpha", "beta"},
		marker.Attribute: {"gamma"},
	}
	doc := Parse(exampleSource, WithCompletions(table))

	if got := doc.Query(10, 0).Completions(); !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("miss completions = %v", got)
	}
	if got := doc.Query(0, 4).Completions(); !reflect.DeepEqual(got, []string{"gamma"}) {
		t.Errorf("brace completions = %v", got)
	}
}

func TestQueryEveryPositionInToken(t *testing.T) {
	sources := []string{
		exampleSource,
		"// c\nconfig { timeout_cycle = 0x40; // cycles\n};\ncpu{name=é_1;};",
	}

	for _, src := range sources {
		doc := Parse(src)
		for _, s := range doc.Statements {
			for _, tok := range Tokens(s) {
				start, end := tok.Offsets()
				for off := start; off < end; off++ {
					pos := PositionAt(src, off)
					n, ok := doc.QueryPosition(pos).Node()
					if !ok || n != Node(tok) {
						t.Errorf("query at %s: got %v, want token %s %q", pos, n, tok.Kind, tok.Text)
					}
				}
			}
		}
	}
}

func TestQueryInvalidPlaceholders(t *testing.T) {
	doc := Parse("cpu { bogus };\nwhat\n", WithRecovery())

	res := doc.Query(0, 7)
	if n, _ := res.Node(); n == nil || KindOf(n) != KindInvalidAttribute {
		t.Fatalf("query in bad attribute returned %v", n)
	}
	if res.Label() != marker.Attribute {
		t.Errorf("invalid attribute label = %s, want Attribute", res.Label())
	}

	res = doc.Query(1, 2)
	if n, _ := res.Node(); n == nil || KindOf(n) != KindInvalidStatement {
		t.Fatalf("query in bad statement returned %v", n)
	}
	if res.Label() != marker.Statement {
		t.Errorf("invalid statement label = %s, want Statement", res.Label())
	}
}

func TestPath(t *testing.T) {
	doc := Parse(exampleSource)

	path := doc.Path(Position{1, 14})
	want := []NodeKind{KindCpu, KindName, KindToken}
	if len(path) != len(want) {
		t.Fatalf("got path of %d nodes, want %d", len(path), len(want))
	}
	for i, n := range path {
		if KindOf(n) != want[i] {
			t.Errorf("path[%d] = %s, want %s", i, KindOf(n), want[i])
		}
	}

	leaf, _ := doc.Query(1, 14).Node()
	if path[len(path)-1] != leaf {
		t.Error("path does not end at the queried node")
	}

	path = doc.Path(Position{2, 12})
	want = []NodeKind{KindCpu, KindVlen, KindDecNumber, KindToken}
	if len(path) != len(want) {
		t.Fatalf("got path of %d nodes, want %d", len(path), len(want))
	}

	if got := doc.Path(Position{7, 0}); len(got) != 0 {
		t.Errorf("miss path = %v, want empty", got)
	}
}

func TestConcurrentQueries(t *testing.T) {
	doc := Parse(exampleSource)
	want, _ := doc.Query(1, 14).Node()

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if n, _ := doc.Query(1, 14).Node(); n != want {
					errs <- "wrong node"
					return
				}
				if !doc.Query(5, 0).Miss() {
					errs <- "expected miss"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestConcurrentParses(t *testing.T) {
	sources := []string{exampleSource, "config { timeout_cycle = 1; };", "cpu hello\n"}

	var wg sync.WaitGroup
	results := make([]*Document, len(sources))
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src string) {
			defer wg.Done()
			results[i] = Parse(src, WithRecovery())
		}(i, src)
	}
	wg.Wait()

	for i, doc := range results {
		if doc.Source() != sources[i] {
			t.Errorf("document %d has the wrong source", i)
		}
		if len(doc.Statements) != 1 {
			t.Errorf("document %d has %d statements, want 1", i, len(doc.Statements))
		}
	}
}
