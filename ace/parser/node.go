package parser

import (
	"strconv"

	"github.com/dhamidi/acels/ace/marker"
)

// Node is implemented by every element of the tree. The set of
// implementations is closed: tokens, numbers, attributes and statements
// defined in this package.
type Node interface {
	Range() Range
	// Query returns the most specific node containing pos.
	Query(pos Position) (Node, bool)
	// Label selects the completion candidates offered at this node.
	Label() marker.Label
	node()
}

type NodeKind uint8

const (
	KindToken NodeKind = iota
	KindHexNumber
	KindDecNumber
	KindName
	KindVlen
	KindTimeoutCycle
	KindInvalidAttribute
	KindCpu
	KindConfig
	KindInvalidStatement
)

var nodeKindNames = map[NodeKind]string{
	KindToken:            "Token",
	KindHexNumber:        "HexNumber",
	KindDecNumber:        "DecNumber",
	KindName:             "Name",
	KindVlen:             "Vlen",
	KindTimeoutCycle:     "TimeoutCycle",
	KindInvalidAttribute: "InvalidAttribute",
	KindCpu:              "Cpu",
	KindConfig:           "Config",
	KindInvalidStatement: "InvalidStatement",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KindOf returns the kind of n.
func KindOf(n Node) NodeKind {
	switch n.(type) {
	case *Token:
		return KindToken
	case *HexNumber:
		return KindHexNumber
	case *DecNumber:
		return KindDecNumber
	case *Name:
		return KindName
	case *Vlen:
		return KindVlen
	case *TimeoutCycle:
		return KindTimeoutCycle
	case *InvalidAttribute:
		return KindInvalidAttribute
	case *Cpu:
		return KindCpu
	case *Config:
		return KindConfig
	case *InvalidStatement:
		return KindInvalidStatement
	}
	panic("parser: unknown node type")
}

// queryFirst asks the first node whose range contains pos.
func queryFirst(pos Position, nodes ...Node) (Node, bool) {
	for _, n := range nodes {
		if n.Range().Contains(pos) {
			return n.Query(pos)
		}
	}
	return nil, false
}

// Number is a HexNumber or a DecNumber.
type Number interface {
	Node
	Token() *Token
	// Value converts the literal. Values that overflow 64 bits are an error.
	Value() (uint64, error)
	number()
}

type HexNumber struct {
	tok *Token
}

func (n *HexNumber) node()                           {}
func (n *HexNumber) number()                         {}
func (n *HexNumber) Token() *Token                   { return n.tok }
func (n *HexNumber) Range() Range                    { return n.tok.Range() }
func (n *HexNumber) Label() marker.Label             { return n.tok.Label() }
func (n *HexNumber) Query(pos Position) (Node, bool) { return n.tok.Query(pos) }

func (n *HexNumber) Value() (uint64, error) {
	return strconv.ParseUint(n.tok.Text[2:], 16, 64)
}

type DecNumber struct {
	tok *Token
}

func (n *DecNumber) node()                           {}
func (n *DecNumber) number()                         {}
func (n *DecNumber) Token() *Token                   { return n.tok }
func (n *DecNumber) Range() Range                    { return n.tok.Range() }
func (n *DecNumber) Label() marker.Label             { return n.tok.Label() }
func (n *DecNumber) Query(pos Position) (Node, bool) { return n.tok.Query(pos) }

func (n *DecNumber) Value() (uint64, error) {
	return strconv.ParseUint(n.tok.Text, 10, 64)
}

// CpuAttribute is a Name, a Vlen or an InvalidAttribute.
type CpuAttribute interface {
	Node
	cpuAttribute()
}

// ConfigAttribute is a TimeoutCycle or an InvalidAttribute.
type ConfigAttribute interface {
	Node
	configAttribute()
}

// Name is `name = <identifier>;`.
type Name struct {
	Pragma     *Token
	Equal      *Token
	Identifier *Token
	Semicolon  *Token
	rng        Range
}

func (a *Name) node()               {}
func (a *Name) cpuAttribute()       {}
func (a *Name) Range() Range        { return a.rng }
func (a *Name) Label() marker.Label { return marker.None }

func (a *Name) Query(pos Position) (Node, bool) {
	if !a.rng.Contains(pos) {
		return nil, false
	}
	return queryFirst(pos, a.Pragma, a.Equal, a.Identifier, a.Semicolon)
}

// Vlen is `vlen = <number>;`.
type Vlen struct {
	Pragma    *Token
	Equal     *Token
	Length    Number
	Semicolon *Token
	rng       Range
}

func (a *Vlen) node()               {}
func (a *Vlen) cpuAttribute()       {}
func (a *Vlen) Range() Range        { return a.rng }
func (a *Vlen) Label() marker.Label { return marker.None }

func (a *Vlen) Query(pos Position) (Node, bool) {
	if !a.rng.Contains(pos) {
		return nil, false
	}
	return queryFirst(pos, a.Pragma, a.Equal, a.Length, a.Semicolon)
}

// TimeoutCycle is `timeout_cycle = <number>;`.
type TimeoutCycle struct {
	Pragma    *Token
	Equal     *Token
	Cycles    Number
	Semicolon *Token
	rng       Range
}

func (a *TimeoutCycle) node()               {}
func (a *TimeoutCycle) configAttribute()    {}
func (a *TimeoutCycle) Range() Range        { return a.rng }
func (a *TimeoutCycle) Label() marker.Label { return marker.None }

func (a *TimeoutCycle) Query(pos Position) (Node, bool) {
	if !a.rng.Contains(pos) {
		return nil, false
	}
	return queryFirst(pos, a.Pragma, a.Equal, a.Cycles, a.Semicolon)
}

// InvalidAttribute holds the text skipped after an attribute failed to parse.
// It is only produced when recovery is enabled.
type InvalidAttribute struct {
	Text       string
	Err        *Failure
	Diagnostic Diagnostic
	rng        Range
}

func (a *InvalidAttribute) node()               {}
func (a *InvalidAttribute) cpuAttribute()       {}
func (a *InvalidAttribute) configAttribute()    {}
func (a *InvalidAttribute) Range() Range        { return a.rng }
func (a *InvalidAttribute) Label() marker.Label { return marker.Attribute }

func (a *InvalidAttribute) Query(pos Position) (Node, bool) {
	if a.rng.Contains(pos) {
		return a, true
	}
	return nil, false
}

// Statement is a Cpu, a Config or an InvalidStatement.
type Statement interface {
	Node
	statement()
}

// Cpu is `cpu { <cpu attributes> };`.
type Cpu struct {
	Pragma     *Token
	LeftBrace  *Token
	Attributes []CpuAttribute
	RightBrace *Token
	Semicolon  *Token
	rng        Range
}

func (s *Cpu) node()               {}
func (s *Cpu) statement()          {}
func (s *Cpu) Range() Range        { return s.rng }
func (s *Cpu) Label() marker.Label { return marker.None }

func (s *Cpu) Query(pos Position) (Node, bool) {
	if !s.rng.Contains(pos) {
		return nil, false
	}
	if n, ok := queryFirst(pos, s.Pragma, s.LeftBrace, s.RightBrace, s.Semicolon); ok {
		return n, true
	}
	for _, attr := range s.Attributes {
		if attr.Range().Contains(pos) {
			return attr.Query(pos)
		}
	}
	return nil, false
}

// Config is `config { <config attributes> };`.
type Config struct {
	Pragma     *Token
	LeftBrace  *Token
	Attributes []ConfigAttribute
	RightBrace *Token
	Semicolon  *Token
	rng        Range
}

func (s *Config) node()               {}
func (s *Config) statement()          {}
func (s *Config) Range() Range        { return s.rng }
func (s *Config) Label() marker.Label { return marker.None }

func (s *Config) Query(pos Position) (Node, bool) {
	if !s.rng.Contains(pos) {
		return nil, false
	}
	if n, ok := queryFirst(pos, s.Pragma, s.LeftBrace, s.RightBrace, s.Semicolon); ok {
		return n, true
	}
	for _, attr := range s.Attributes {
		if attr.Range().Contains(pos) {
			return attr.Query(pos)
		}
	}
	return nil, false
}

// InvalidStatement holds the text skipped after a statement failed to parse.
// It is only produced when recovery is enabled.
type InvalidStatement struct {
	Text       string
	Err        *Failure
	Diagnostic Diagnostic
	rng        Range
}

func (s *InvalidStatement) node()               {}
func (s *InvalidStatement) statement()          {}
func (s *InvalidStatement) Range() Range        { return s.rng }
func (s *InvalidStatement) Label() marker.Label { return marker.Statement }

func (s *InvalidStatement) Query(pos Position) (Node, bool) {
	if s.rng.Contains(pos) {
		return s, true
	}
	return nil, false
}
