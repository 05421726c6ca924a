// Package ebnf holds the ACE grammar in EBNF form and a lexer driven by it.
//
// The grammar is documentation that can be checked: Grammar verifies it with
// golang.org/x/exp/ebnf, and the lexer tokenizes input with the same
// productions so tests can compare it against the hand-written parser.
//
// Productions spelled in capitals (CPU, IDENTIFIER, COMMENT) are tokens.
// Mixed-case productions are syntactic, lower-case ones are character
// classes used by the tokens. Spacing may follow every token.
package ebnf

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production a document is verified from.
const Start = "Document"

//go:embed ace.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Grammar parses and verifies the embedded grammar.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("ace.ebnf", strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(grammar, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return grammar, nil
}

// IsToken reports whether the production name denotes a token.
func IsToken(name string) bool {
	return name != "" && name == strings.ToUpper(name) && name != strings.ToLower(name)
}

// IsTrivia reports whether tokens of this production are skipped by the
// parser.
func IsTrivia(name string) bool {
	return name == "WHITESPACE" || name == "COMMENT"
}
