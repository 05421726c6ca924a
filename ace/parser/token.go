package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/acels/ace/keyword"
	"github.com/dhamidi/acels/ace/marker"
)

type TokenKind uint8

const (
	// Pragmas
	TokenCpu TokenKind = iota
	TokenConfig
	TokenName
	TokenVlen
	TokenTimeoutCycle

	// Symbols
	TokenLBrace
	TokenRBrace
	TokenEqual
	TokenSemicolon

	// Literals
	TokenIdent
	TokenHexNumber
	TokenDecNumber
)

var tokenKindNames = map[TokenKind]string{
	TokenCpu:          keyword.Cpu,
	TokenConfig:       keyword.Config,
	TokenName:         keyword.AttrName,
	TokenVlen:         keyword.AttrVlen,
	TokenTimeoutCycle: keyword.AttrTimeoutCycle,
	TokenLBrace:       keyword.LeftBrace,
	TokenRBrace:       keyword.RightBrace,
	TokenEqual:        keyword.Equal,
	TokenSemicolon:    keyword.Semicolon,
	TokenIdent:        "Identifier",
	TokenHexNumber:    "HexNumber",
	TokenDecNumber:    "DecNumber",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsPragma reports whether the kind is a statement or attribute keyword.
func (k TokenKind) IsPragma() bool {
	return k <= TokenTimeoutCycle
}

// expected is how a failure message names the kind.
func (k TokenKind) expected() string {
	switch k {
	case TokenIdent:
		return "identifier"
	case TokenHexNumber:
		return "hexadecimal number"
	case TokenDecNumber:
		return "decimal number"
	}
	return strconv.Quote(k.String())
}

// Token is a terminal of the tree: the matched text followed by the trivia
// that trails it. Its range runs from the first matched character to the end
// of the trivia.
type Token struct {
	Kind   TokenKind
	Text   string
	Trivia []Trivia

	label      marker.Label
	rng        Range
	start, end int
}

func (t *Token) node() {}

func (t *Token) Range() Range { return t.rng }

func (t *Token) Label() marker.Label { return t.label }

// Query returns the token itself when pos is inside it. Tokens never
// delegate further.
func (t *Token) Query(pos Position) (Node, bool) {
	if t.rng.Contains(pos) {
		return t, true
	}
	return nil, false
}

// Offsets returns the byte offsets of the token's text start and trivia end.
func (t *Token) Offsets() (start, end int) {
	return t.start, t.end
}

// Source returns the text and trailing trivia exactly as they appear in the
// input.
func (t *Token) Source() string {
	var sb strings.Builder
	sb.WriteString(t.Text)
	for _, tr := range t.Trivia {
		sb.WriteString(tr.Text)
	}
	return sb.String()
}

// TextRange is the range of Text alone, without trivia.
func (t *Token) TextRange() Range {
	if len(t.Trivia) == 0 {
		return t.rng
	}
	return Range{Start: t.rng.Start, End: t.Trivia[0].Range.Start}
}

// matcher returns the number of bytes of s it accepts, 0 for no match.
type matcher func(s string) int

// terminal builds one kind of Token. label is the default completion label;
// call sites override it with withLabel.
type terminal struct {
	kind  TokenKind
	match matcher
	label marker.Label
}

func (t terminal) withLabel(l marker.Label) terminal {
	t.label = l
	return t
}

func (t terminal) parse(c cursor) (*Token, cursor, *Failure) {
	n := t.match(c.rest())
	if n == 0 {
		return nil, c, mismatch(c, t.kind.expected())
	}
	after := c.advance(n)
	trivia, next := scanTrivia(after)
	return &Token{
		Kind:   t.kind,
		Text:   c.slice(after),
		Trivia: trivia,
		label:  t.label,
		rng:    c.rangeTo(next),
		start:  c.off,
		end:    next.off,
	}, next, nil
}

func literal(lit string) matcher {
	return func(s string) int {
		if strings.HasPrefix(s, lit) {
			return len(lit)
		}
		return 0
	}
}

// word matches lit only when no identifier character follows it.
func word(lit string) matcher {
	return func(s string) int {
		if !strings.HasPrefix(s, lit) {
			return 0
		}
		if r, _ := utf8.DecodeRuneInString(s[len(lit):]); isIdentContinue(r) {
			return 0
		}
		return len(lit)
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// identifier <- (letter / '_') (letter / digit / '_')*
func identifier(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !isIdentStart(r) {
		return 0
	}
	n := size
	for n < len(s) {
		r, size = utf8.DecodeRuneInString(s[n:])
		if !isIdentContinue(r) {
			break
		}
		n += size
	}
	return n
}

// hexNumber <- ('0x' / '0X') [0-9a-fA-F]+
func hexNumber(s string) int {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0
	}
	n := 2
	for n < len(s) && isHexDigit(s[n]) {
		n++
	}
	if n == 2 {
		return 0
	}
	return n
}

// decNumber <- [1-9] [0-9]*
func decNumber(s string) int {
	if s == "" || s[0] < '1' || s[0] > '9' {
		return 0
	}
	n := 1
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

var (
	tokCpu          = terminal{kind: TokenCpu, match: word(keyword.Cpu)}
	tokConfig       = terminal{kind: TokenConfig, match: word(keyword.Config)}
	tokName         = terminal{kind: TokenName, match: word(keyword.AttrName)}
	tokVlen         = terminal{kind: TokenVlen, match: word(keyword.AttrVlen)}
	tokTimeoutCycle = terminal{kind: TokenTimeoutCycle, match: word(keyword.AttrTimeoutCycle)}
	tokLBrace       = terminal{kind: TokenLBrace, match: literal(keyword.LeftBrace)}
	tokRBrace       = terminal{kind: TokenRBrace, match: literal(keyword.RightBrace)}
	tokEqual        = terminal{kind: TokenEqual, match: literal(keyword.Equal)}
	tokSemicolon    = terminal{kind: TokenSemicolon, match: literal(keyword.Semicolon)}
	tokIdent        = terminal{kind: TokenIdent, match: identifier}
	tokHexNumber    = terminal{kind: TokenHexNumber, match: hexNumber}
	tokDecNumber    = terminal{kind: TokenDecNumber, match: decNumber}
)
