package parser

import "strings"

type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaComment
	// TriviaEOF is the empty item produced when a token ends exactly at the
	// end of the input.
	TriviaEOF
)

var triviaKindNames = map[TriviaKind]string{
	TriviaWhitespace: "Whitespace",
	TriviaComment:    "Comment",
	TriviaEOF:        "EOF",
}

func (k TriviaKind) String() string {
	if name, ok := triviaKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Trivia is a run of non-semantic text: a line comment or whitespace.
type Trivia struct {
	Kind  TriviaKind
	Text  string
	Range Range
}

//	spacing     <- eof / (comment / whitespace)*
//	comment     <- '//' (!end_of_line .)* end_of_line?
//	whitespace  <- (' ' / '\t' / end_of_line)+
//	end_of_line <- '\r\n' / '\n' / '\r'
//
// scanTrivia never fails. Every loop iteration consumes at least one byte.
func scanTrivia(c cursor) ([]Trivia, cursor) {
	if c.atEOF() {
		return []Trivia{{Kind: TriviaEOF, Range: c.rangeTo(c)}}, c
	}

	var out []Trivia
	for !c.atEOF() {
		rest := c.rest()
		var kind TriviaKind
		var n int
		switch {
		case strings.HasPrefix(rest, "//"):
			kind, n = TriviaComment, commentLen(rest)
		case isSpace(rest[0]):
			kind, n = TriviaWhitespace, whitespaceLen(rest)
		default:
			return out, c
		}
		next := c.advance(n)
		out = append(out, Trivia{Kind: kind, Text: c.slice(next), Range: c.rangeTo(next)})
		c = next
	}
	return out, c
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func whitespaceLen(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

// commentLen includes the line terminator when there is one.
func commentLen(s string) int {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return len(s)
	}
	if strings.HasPrefix(s[i:], "\r\n") {
		return i + 2
	}
	return i + 1
}
