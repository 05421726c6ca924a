package parser

// Children returns the direct children of n in source order. Tokens have
// none.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Token, *InvalidAttribute, *InvalidStatement:
		return nil
	case *HexNumber:
		return []Node{n.tok}
	case *DecNumber:
		return []Node{n.tok}
	case *Name:
		return []Node{n.Pragma, n.Equal, n.Identifier, n.Semicolon}
	case *Vlen:
		return []Node{n.Pragma, n.Equal, n.Length, n.Semicolon}
	case *TimeoutCycle:
		return []Node{n.Pragma, n.Equal, n.Cycles, n.Semicolon}
	case *Cpu:
		out := []Node{n.Pragma, n.LeftBrace}
		for _, a := range n.Attributes {
			out = append(out, a)
		}
		return append(out, n.RightBrace, n.Semicolon)
	case *Config:
		out := []Node{n.Pragma, n.LeftBrace}
		for _, a := range n.Attributes {
			out = append(out, a)
		}
		return append(out, n.RightBrace, n.Semicolon)
	}
	panic("parser: unknown node type")
}

// Walk visits n and its descendants depth first in source order. Returning
// false from fn skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Tokens returns every token under n in source order.
func Tokens(n Node) []*Token {
	var out []*Token
	Walk(n, func(n Node) bool {
		if t, ok := n.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
