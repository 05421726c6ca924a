// Package parser builds a lossless concrete syntax tree for ACE configuration
// files and answers position queries over it.
//
// # Overview
//
// ACE files are a sequence of statements such as
//
//	cpu {
//	    name = nx45v;
//	    vlen = 512;
//	};
//
//	config {
//	    timeout_cycle = 0x100;
//	};
//
// Parse turns the text into a Document holding Cpu and Config statements.
// Every terminal of the grammar becomes a Token that keeps its matched text
// and the whitespace and comments trailing it, so concatenating the sources
// of all tokens after Document.Leading gives back the parsed input exactly.
//
// # Positions
//
// Positions are zero-based lines and characters, characters counting Unicode
// code points. Ranges are half open. A token's range runs from its first
// character to the end of its trailing trivia, so adjacent tokens share a
// boundary and every position inside a statement belongs to exactly one
// token.
//
// # Queries
//
// Document.Query returns the token under a position. A position outside
// every statement is a miss; Result.Completions treats a miss as a place
// where a new statement may start. Tokens carry a marker.Label chosen by the
// production that built them: the ';' ending a statement offers statement
// pragmas, the ';' ending an attribute and the '{' opening a statement offer
// attribute pragmas.
//
// # Errors
//
// Parse never fails. By default it stops at the first statement that does
// not match and records the failure as a diagnostic. With WithRecovery the
// malformed statement or attribute is kept as a placeholder node and parsing
// continues after it.
package parser
