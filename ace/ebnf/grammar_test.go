package ebnf

import (
	"strings"
	"testing"

	"github.com/dhamidi/acels/ace/parser"
)

func TestGrammarVerifies(t *testing.T) {
	grammar, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar: %v", err)
	}
	for _, name := range []string{Start, "Cpu", "Config", "IDENTIFIER", "HEX_NUMBER", "COMMENT"} {
		if _, ok := grammar[name]; !ok {
			t.Errorf("production %s missing", name)
		}
	}
}

func TestIsToken(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"CPU", true},
		{"TIMEOUT_CYCLE", true},
		{"Document", false},
		{"hex_digit", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsToken(tt.name); got != tt.want {
			t.Errorf("IsToken(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func lex(t *testing.T, input string) []Token {
	t.Helper()
	grammar, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar: %v", err)
	}
	tokens, err := NewLexer(grammar, input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return tokens
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input string
		kinds []string
	}{
		{"cpu", []string{"CPU", "EOF"}},
		{"cpux", []string{"IDENTIFIER", "EOF"}},
		{"name = nx45v;", []string{"NAME", "WHITESPACE", "EQUAL", "WHITESPACE", "IDENTIFIER", "SEMICOLON", "EOF"}},
		{"0x1F 512", []string{"HEX_NUMBER", "WHITESPACE", "DEC_NUMBER", "EOF"}},
		{"// note\n}", []string{"COMMENT", "WHITESPACE", "RIGHT_BRACE", "EOF"}},
		{"a", []string{"IDENTIFIER", "EOF"}},
		{"//", []string{"COMMENT", "EOF"}},
		{"@", []string{"ERROR", "EOF"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := lex(t, tt.input)
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(tt.kinds))
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d = %s, want %s", i, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := lex(t, "cpu {\n  name")
	want := map[string]parser.Position{
		"CPU":        {Line: 0, Character: 0},
		"LEFT_BRACE": {Line: 0, Character: 4},
		"NAME":       {Line: 1, Character: 2},
		"EOF":        {Line: 1, Character: 6},
	}
	for _, tok := range tokens {
		if pos, ok := want[tok.Kind]; ok && tok.Position != pos {
			t.Errorf("%s at %s, want %s", tok.Kind, tok.Position, pos)
		}
	}
}

var tokenKinds = map[string]parser.TokenKind{
	"CPU":           parser.TokenCpu,
	"CONFIG":        parser.TokenConfig,
	"NAME":          parser.TokenName,
	"VLEN":          parser.TokenVlen,
	"TIMEOUT_CYCLE": parser.TokenTimeoutCycle,
	"LEFT_BRACE":    parser.TokenLBrace,
	"RIGHT_BRACE":   parser.TokenRBrace,
	"EQUAL":         parser.TokenEqual,
	"SEMICOLON":     parser.TokenSemicolon,
	"IDENTIFIER":    parser.TokenIdent,
	"HEX_NUMBER":    parser.TokenHexNumber,
	"DEC_NUMBER":    parser.TokenDecNumber,
}

// The grammar and the parser must agree on how a valid document splits into
// tokens.
func TestLexerAgreesWithParser(t *testing.T) {
	src := strings.Join([]string{
		"// leading comment",
		"cpu {",
		"    name = nx45v; // the core",
		"    vlen = 512;",
		"};",
		"config {",
		"\ttimeout_cycle = 0X40;",
		"};",
		"",
	}, "\n")

	var lexed []Token
	for _, tok := range lex(t, src) {
		if tok.Kind != "EOF" && !IsTrivia(tok.Kind) {
			lexed = append(lexed, tok)
		}
	}

	doc := parser.Parse(src)
	if len(doc.Statements) != 2 {
		t.Fatalf("parser produced %d statements, want 2", len(doc.Statements))
	}
	var parsed []*parser.Token
	for _, s := range doc.Statements {
		parsed = append(parsed, parser.Tokens(s)...)
	}

	if len(lexed) != len(parsed) {
		t.Fatalf("lexer produced %d tokens, parser %d", len(lexed), len(parsed))
	}
	for i := range lexed {
		if tokenKinds[lexed[i].Kind] != parsed[i].Kind {
			t.Errorf("token %d: lexer %s, parser %s", i, lexed[i].Kind, parsed[i].Kind)
		}
		if lexed[i].Literal != parsed[i].Text {
			t.Errorf("token %d: lexer %q, parser %q", i, lexed[i].Literal, parsed[i].Text)
		}
		if lexed[i].Position != parsed[i].Range().Start {
			t.Errorf("token %d: lexer at %s, parser at %s", i, lexed[i].Position, parsed[i].Range().Start)
		}
	}
}
