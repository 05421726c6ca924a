package parser

import (
	"testing"

	"github.com/dhamidi/acels/ace/marker"
)

func TestTerminalParse(t *testing.T) {
	tok, next, f := tokCpu.parse(newCursor("cpu {"))
	if f != nil {
		t.Fatalf("unexpected failure: %v", f)
	}
	if tok.Kind != TokenCpu {
		t.Errorf("Kind = %s, want %s", tok.Kind, TokenCpu)
	}
	if tok.Text != "cpu" {
		t.Errorf("Text = %q, want %q", tok.Text, "cpu")
	}
	if len(tok.Trivia) != 1 || tok.Trivia[0].Text != " " {
		t.Errorf("Trivia = %+v, want one space", tok.Trivia)
	}
	want := Range{Start: Position{0, 0}, End: Position{0, 4}}
	if tok.Range() != want {
		t.Errorf("Range = %s, want %s", tok.Range(), want)
	}
	if tok.TextRange() != (Range{Start: Position{0, 0}, End: Position{0, 3}}) {
		t.Errorf("TextRange = %s, want 0:0-0:3", tok.TextRange())
	}
	if next.rest() != "{" {
		t.Errorf("rest = %q, want %q", next.rest(), "{")
	}
}

func TestTerminalAtEOF(t *testing.T) {
	tok, next, f := tokSemicolon.parse(newCursor(";"))
	if f != nil {
		t.Fatalf("unexpected failure: %v", f)
	}
	if len(tok.Trivia) != 1 || tok.Trivia[0].Kind != TriviaEOF {
		t.Errorf("Trivia = %+v, want a single EOF item", tok.Trivia)
	}
	if tok.Range() != (Range{Start: Position{0, 0}, End: Position{0, 1}}) {
		t.Errorf("Range = %s, want 0:0-0:1", tok.Range())
	}
	if !next.atEOF() {
		t.Errorf("cursor not at EOF")
	}
}

func TestTerminalMismatch(t *testing.T) {
	tests := []struct {
		name  string
		term  terminal
		input string
	}{
		{"keyword prefix of identifier", tokCpu, "cpuhello"},
		{"keyword followed by digit", tokName, "name2 = x;"},
		{"keyword followed by underscore", tokConfig, "config_x"},
		{"wrong keyword", tokVlen, "name"},
		{"brace", tokLBrace, "}"},
		{"identifier starting with digit", tokIdent, "9lives"},
		{"empty input", tokEqual, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.input)
			tok, next, f := tt.term.parse(c)
			if f == nil {
				t.Fatalf("expected failure, got %+v", tok)
			}
			if f.Kind != FailureMismatch {
				t.Errorf("Kind = %s, want %s", f.Kind, FailureMismatch)
			}
			if next.off != c.off {
				t.Errorf("failed terminal consumed input")
			}
		})
	}
}

func TestTerminalLabel(t *testing.T) {
	plain, _, _ := tokSemicolon.parse(newCursor(";"))
	if plain.Label() != marker.None {
		t.Errorf("default label = %s, want None", plain.Label())
	}

	labeled, _, _ := tokSemicolon.withLabel(marker.Statement).parse(newCursor(";"))
	if labeled.Label() != marker.Statement {
		t.Errorf("label = %s, want Statement", labeled.Label())
	}
	if tokSemicolon.label != marker.None {
		t.Error("withLabel modified the shared terminal")
	}
}

func TestNumberMatchers(t *testing.T) {
	tests := []struct {
		input string
		hex   int
		dec   int
	}{
		{"0", 0, 0},
		{"00", 0, 0},
		{"012", 0, 0},
		{"1", 0, 1},
		{"512;", 0, 3},
		{"1000000", 0, 7},
		{"0x", 0, 0},
		{"0X", 0, 0},
		{"0xg", 0, 0},
		{"0x1F", 4, 0},
		{"0X1f", 4, 0},
		{"0xdeadBEEF;", 10, 0},
		{"x1", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := hexNumber(tt.input); got != tt.hex {
				t.Errorf("hexNumber(%q) = %d, want %d", tt.input, got, tt.hex)
			}
			if got := decNumber(tt.input); got != tt.dec {
				t.Errorf("decNumber(%q) = %d, want %d", tt.input, got, tt.dec)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"nx45v;", 5},
		{"_a_1 ", 4},
		{"a", 1},
		{"1a", 0},
		{"", 0},
		{"ß9", 3},
		{"-x", 0},
	}

	for _, tt := range tests {
		if got := identifier(tt.input); got != tt.want {
			t.Errorf("identifier(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenCpu, "cpu"},
		{TokenTimeoutCycle, "timeout_cycle"},
		{TokenSemicolon, ";"},
		{TokenIdent, "Identifier"},
		{TokenKind(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if !TokenVlen.IsPragma() || TokenEqual.IsPragma() {
		t.Error("IsPragma misclassifies kinds")
	}
}

func TestMismatchError(t *testing.T) {
	f := mismatch(newCursor("hello world"), `"{"`)
	want := `0:0: expected "{", found "hello"`
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}

	f = mismatch(newCursor(""), "identifier")
	want = "0:0: expected identifier, found end of input"
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}
}
