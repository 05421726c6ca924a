package parser

import "fmt"

// Position is a zero-based line and character offset. Character counts
// Unicode code points from the start of the line. A position sits between two
// characters, like an insert cursor.
type Position struct {
	Line      uint32
	Character uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Compare returns -1, 0 or +1 ordering positions line first.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Character < q.Character:
		return -1
	case p.Character > q.Character:
		return 1
	}
	return 0
}

func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

func (p Position) LessEq(q Position) bool {
	return p.Compare(q) <= 0
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Contains reports whether Start <= pos < End.
func (r Range) Contains(pos Position) bool {
	return r.Start.LessEq(pos) && pos.Less(r.End)
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Covers reports whether other lies entirely inside r.
func (r Range) Covers(other Range) bool {
	return r.Start.LessEq(other.Start) && other.End.LessEq(r.End)
}
