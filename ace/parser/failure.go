package parser

import (
	"fmt"
	"strings"
)

type FailureKind uint8

const (
	// FailureMismatch means "try the next alternative". Ordered choice and
	// recovery both absorb it.
	FailureMismatch FailureKind = iota
	// FailureCommitted is raised after a production committed to a choice;
	// ordered choice does not try further alternatives.
	FailureCommitted
	// FailureIncomplete means more input is needed. The whole buffer is
	// resident during a parse, so matchers never produce it, but combinators
	// must still pass it through untouched.
	FailureIncomplete
)

var failureKindNames = map[FailureKind]string{
	FailureMismatch:   "mismatch",
	FailureCommitted:  "committed",
	FailureIncomplete: "incomplete",
}

func (k FailureKind) String() string {
	if name, ok := failureKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Failure is the error value produced by every parsing function.
type Failure struct {
	Kind     FailureKind
	Expected string
	Found    string
	Offset   int
	Position Position
}

func (f *Failure) Error() string {
	if f.Found == "" {
		return fmt.Sprintf("%s: expected %s, found end of input", f.Position, f.Expected)
	}
	return fmt.Sprintf("%s: expected %s, found %q", f.Position, f.Expected, f.Found)
}

func mismatch(c cursor, expected string) *Failure {
	return &Failure{
		Kind:     FailureMismatch,
		Expected: expected,
		Found:    foundAt(c),
		Offset:   c.off,
		Position: c.pos,
	}
}

// foundAt is a short excerpt of the input at c for error messages. It ends
// at whitespace or at the next punctuation.
func foundAt(c cursor) string {
	rest := c.rest()
	end := 0
	for end < len(rest) && end < 16 && !isSpace(rest[end]) {
		if end > 0 && strings.IndexByte(";{}=", rest[end]) >= 0 {
			break
		}
		end += runeLen(rest[end:])
	}
	if end == 0 && rest != "" {
		end = runeLen(rest)
	}
	return rest[:end]
}

type Severity uint8

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Diagnostic describes input the parser could not turn into tree nodes.
type Diagnostic struct {
	Range    Range
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Range.Start, d.Severity, d.Message)
}
