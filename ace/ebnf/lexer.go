package ebnf

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/dhamidi/acels/ace/parser"
	"golang.org/x/exp/ebnf"
)

// Token is a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position parser.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input with the token productions of a grammar. At each
// offset it tries every token production and keeps the longest match; a
// literal production wins a tie, so "cpu" lexes as CPU and "cpux" as
// IDENTIFIER.
type Lexer struct {
	grammar  ebnf.Grammar
	tokens   []string
	input    string
	pos      int
	position parser.Position
	memo     map[memoKey]int // match length, -1 for no match
	visiting map[memoKey]bool
}

func NewLexer(grammar ebnf.Grammar, input string) *Lexer {
	var tokens []string
	for name, prod := range grammar {
		if prod.Expr != nil && IsToken(name) {
			tokens = append(tokens, name)
		}
	}
	sort.Strings(tokens)

	return &Lexer{
		grammar:  grammar,
		tokens:   tokens,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() parser.Position {
	return l.position
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		ch := l.input[l.pos]
		l.pos++
		switch {
		case ch == '\n':
			l.position.Line++
			l.position.Character = 0
		case ch == '\r' && (l.pos >= len(l.input) || l.input[l.pos] != '\n'):
			l.position.Line++
			l.position.Character = 0
		case ch == '\r', !utf8.RuneStart(ch):
		default:
			l.position.Character++
		}
	}
}

// NextToken returns the next token. At the end of input it returns an EOF
// token and io.EOF. Input no production matches is returned one character
// at a time as ERROR tokens.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Position: l.position}, io.EOF
	}

	start := l.position
	offset := l.pos

	// Positions change with every token, so memoized lengths do too.
	l.memo = make(map[memoKey]int)

	var bestKind string
	var bestLen int
	for _, name := range l.tokens {
		expr := l.grammar[name].Expr
		l.visiting = make(map[memoKey]bool)
		n := l.tryMatch(expr, offset)
		if n > bestLen || (n > 0 && n == bestLen && isLiteral(expr) && !isLiteral(l.grammar[bestKind].Expr)) {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		_, size := utf8.DecodeRuneInString(l.input[offset:])
		l.advance(size)
		return Token{Kind: "ERROR", Literal: l.input[offset:l.pos], Position: start}, nil
	}

	l.advance(bestLen)
	return Token{Kind: bestKind, Literal: l.input[offset:l.pos], Position: start}, nil
}

func isLiteral(expr ebnf.Expression) bool {
	_, ok := expr.(*ebnf.Token)
	return ok
}

// tryMatch returns the length of the longest match of expr at offset, 0 for
// no match.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n == 0 && !optional(item) {
				return 0
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.tryMatch(e.Body, offset+total)
			if n == 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)
	}
	return 0
}

// optional reports whether expr may match the empty string, so a sequence
// can continue after it matched nothing.
func optional(expr ebnf.Expression) bool {
	switch expr.(type) {
	case *ebnf.Repetition, *ebnf.Option:
		return true
	}
	return false
}

// tryMatchName matches a named production with memoization and cycle
// detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := l.memo[key]; ok {
		if result == -1 {
			return 0
		}
		return result
	}

	// Left recursion: the production is already being matched here.
	if l.visiting[key] {
		return 0
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	if result == 0 {
		l.memo[key] = -1
	} else {
		l.memo[key] = result
	}
	return result
}

func (l *Lexer) tryMatchToken(token string, offset int) int {
	if offset+len(token) > len(l.input) || token == "" {
		return 0
	}
	if l.input[offset:offset+len(token)] == token {
		return len(token)
	}
	return 0
}

// tryMatchRange matches one character between begin and end inclusive.
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return 0
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	r, size := utf8.DecodeRuneInString(l.input[offset:])
	if r >= lo && r <= hi {
		return size
	}
	return 0
}

// Tokenize reads all tokens from input, ending with the EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
