// Package marker defines the completion labels carried by parse tree tokens
// and the candidate tables they are looked up in.
package marker

// Label tells a query which candidate list to offer when it resolves to a
// token carrying it.
type Label uint8

const (
	None Label = iota
	Statement
	Attribute
)

var labelNames = map[Label]string{
	None:      "None",
	Statement: "Statement",
	Attribute: "Attribute",
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Table maps a label to its ordered candidate list. A Table is built once and
// only read afterwards, so it may be shared between goroutines.
type Table map[Label][]string

// Candidates returns a copy of the candidates for l. None and unknown labels
// yield an empty list.
func (t Table) Candidates(l Label) []string {
	if l == None {
		return []string{}
	}
	src := t[l]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
