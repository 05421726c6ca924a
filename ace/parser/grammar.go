package parser

import (
	"strings"

	"github.com/dhamidi/acels/ace/marker"
)

//	document         <- spacing? statement*
//	statement        <- cpu / config
//	cpu              <- CPU LEFT_BRACE cpu_attribute* RIGHT_BRACE SEMICOLON
//	cpu_attribute    <- name / vlen
//	name             <- NAME EQUAL IDENTIFIER SEMICOLON
//	vlen             <- VLEN EQUAL number SEMICOLON
//	config           <- CONFIG LEFT_BRACE config_attribute* RIGHT_BRACE SEMICOLON
//	config_attribute <- timeout_cycle
//	timeout_cycle    <- TIMEOUT_CYCLE EQUAL number SEMICOLON
//	number           <- HEX_NUMBER / DEC_NUMBER
//
// Every terminal is followed by spacing, see scanTrivia.
type grammar struct {
	furthest *Failure

	statement       parseFunc[Statement]
	cpuAttribute    parseFunc[CpuAttribute]
	configAttribute parseFunc[ConfigAttribute]
	number          parseFunc[Number]
}

func newGrammar(recovery bool) *grammar {
	g := &grammar{}

	g.number = alt(
		as(g.terminal(tokHexNumber), func(t *Token) Number { return &HexNumber{tok: t} }),
		as(g.terminal(tokDecNumber), func(t *Token) Number { return &DecNumber{tok: t} }),
	)

	g.cpuAttribute = alt(
		as(g.name, func(a *Name) CpuAttribute { return a }),
		as(g.vlen, func(a *Vlen) CpuAttribute { return a }),
	)
	g.configAttribute = as(g.timeoutCycle, func(a *TimeoutCycle) ConfigAttribute { return a })

	g.statement = alt(
		as(g.cpu, func(s *Cpu) Statement { return s }),
		as(g.config, func(s *Config) Statement { return s }),
	)

	if recovery {
		g.cpuAttribute = recoverWith(g.cpuAttribute, func(start cursor, f *Failure) (CpuAttribute, cursor) {
			if a, next := g.invalidAttribute(start, f); a != nil {
				return a, next
			}
			return nil, start
		})
		g.configAttribute = recoverWith(g.configAttribute, func(start cursor, f *Failure) (ConfigAttribute, cursor) {
			if a, next := g.invalidAttribute(start, f); a != nil {
				return a, next
			}
			return nil, start
		})
		g.statement = recoverWith(g.statement, func(start cursor, f *Failure) (Statement, cursor) {
			if s, next := g.invalidStatement(start, f); s != nil {
				return s, next
			}
			return nil, start
		})
	}
	return g
}

// note remembers the failure that reached furthest into the input. It gives
// better messages than the failure that finally propagates, which is often
// reported where an enclosing repetition gave up.
func (g *grammar) note(f *Failure) *Failure {
	if g.furthest == nil || f.Offset > g.furthest.Offset {
		g.furthest = f
	}
	return f
}

func (g *grammar) token(t terminal, c cursor) (*Token, cursor, *Failure) {
	tok, next, f := t.parse(c)
	if f != nil {
		return nil, c, g.note(f)
	}
	return tok, next, nil
}

func (g *grammar) terminal(t terminal) parseFunc[*Token] {
	return func(c cursor) (*Token, cursor, *Failure) {
		return g.token(t, c)
	}
}

func (g *grammar) document(src string) *Document {
	c := newCursor(src)
	doc := &Document{source: src}
	doc.Leading, c = scanTrivia(c)

	for {
		s, next, f := g.statement(c)
		if f != nil {
			if !c.atEOF() {
				doc.unparsed = &Range{Start: c.pos, End: c.advance(len(src)).pos}
				doc.residual = g.diagnostic(c, f)
			}
			break
		}
		if next.off == c.off {
			break
		}
		doc.Statements = append(doc.Statements, s)
		c = next
	}
	return doc
}

func (g *grammar) cpu(c cursor) (*Cpu, cursor, *Failure) {
	start := c
	var s Cpu
	var f *Failure
	if s.Pragma, c, f = g.token(tokCpu, c); f != nil {
		return nil, start, f
	}
	if s.LeftBrace, c, f = g.token(tokLBrace.withLabel(marker.Attribute), c); f != nil {
		return nil, start, f
	}
	if s.Attributes, c, f = many(g.cpuAttribute)(c); f != nil {
		return nil, start, f
	}
	if s.RightBrace, c, f = g.token(tokRBrace, c); f != nil {
		return nil, start, f
	}
	if s.Semicolon, c, f = g.token(tokSemicolon.withLabel(marker.Statement), c); f != nil {
		return nil, start, f
	}
	s.rng = start.rangeTo(c)
	return &s, c, nil
}

func (g *grammar) config(c cursor) (*Config, cursor, *Failure) {
	start := c
	var s Config
	var f *Failure
	if s.Pragma, c, f = g.token(tokConfig, c); f != nil {
		return nil, start, f
	}
	if s.LeftBrace, c, f = g.token(tokLBrace.withLabel(marker.Attribute), c); f != nil {
		return nil, start, f
	}
	if s.Attributes, c, f = many(g.configAttribute)(c); f != nil {
		return nil, start, f
	}
	if s.RightBrace, c, f = g.token(tokRBrace, c); f != nil {
		return nil, start, f
	}
	if s.Semicolon, c, f = g.token(tokSemicolon.withLabel(marker.Statement), c); f != nil {
		return nil, start, f
	}
	s.rng = start.rangeTo(c)
	return &s, c, nil
}

func (g *grammar) name(c cursor) (*Name, cursor, *Failure) {
	start := c
	var a Name
	var f *Failure
	if a.Pragma, c, f = g.token(tokName, c); f != nil {
		return nil, start, f
	}
	if a.Equal, c, f = g.token(tokEqual, c); f != nil {
		return nil, start, f
	}
	if a.Identifier, c, f = g.token(tokIdent, c); f != nil {
		return nil, start, f
	}
	if a.Semicolon, c, f = g.token(tokSemicolon.withLabel(marker.Attribute), c); f != nil {
		return nil, start, f
	}
	a.rng = start.rangeTo(c)
	return &a, c, nil
}

func (g *grammar) vlen(c cursor) (*Vlen, cursor, *Failure) {
	start := c
	var a Vlen
	var f *Failure
	if a.Pragma, c, f = g.token(tokVlen, c); f != nil {
		return nil, start, f
	}
	if a.Equal, c, f = g.token(tokEqual, c); f != nil {
		return nil, start, f
	}
	if a.Length, c, f = g.number(c); f != nil {
		return nil, start, f
	}
	if a.Semicolon, c, f = g.token(tokSemicolon.withLabel(marker.Attribute), c); f != nil {
		return nil, start, f
	}
	a.rng = start.rangeTo(c)
	return &a, c, nil
}

func (g *grammar) timeoutCycle(c cursor) (*TimeoutCycle, cursor, *Failure) {
	start := c
	var a TimeoutCycle
	var f *Failure
	if a.Pragma, c, f = g.token(tokTimeoutCycle, c); f != nil {
		return nil, start, f
	}
	if a.Equal, c, f = g.token(tokEqual, c); f != nil {
		return nil, start, f
	}
	if a.Cycles, c, f = g.number(c); f != nil {
		return nil, start, f
	}
	if a.Semicolon, c, f = g.token(tokSemicolon.withLabel(marker.Attribute), c); f != nil {
		return nil, start, f
	}
	a.rng = start.rangeTo(c)
	return &a, c, nil
}

// invalidStatement skips the malformed statement at start and the trivia
// after it. It returns nil when nothing can be skipped.
func (g *grammar) invalidStatement(start cursor, f *Failure) (*InvalidStatement, cursor) {
	n := skip(start.rest(), false, statementSync)
	if n == 0 {
		return nil, start
	}
	end := resume(start.advance(n))
	return &InvalidStatement{
		Text:       start.slice(end),
		Err:        f,
		Diagnostic: g.diagnostic(start, f),
		rng:        start.rangeTo(end),
	}, end
}

// invalidAttribute is invalidStatement for attributes. It never skips the
// '}' closing the enclosing statement.
func (g *grammar) invalidAttribute(start cursor, f *Failure) (*InvalidAttribute, cursor) {
	n := skip(start.rest(), true, attributeSync)
	if n == 0 {
		return nil, start
	}
	end := resume(start.advance(n))
	return &InvalidAttribute{
		Text:       start.slice(end),
		Err:        f,
		Diagnostic: g.diagnostic(start, f),
		rng:        start.rangeTo(end),
	}, end
}

// resume moves past the trivia following skipped text.
func resume(c cursor) cursor {
	if c.atEOF() {
		return c
	}
	_, c = scanTrivia(c)
	return c
}

var (
	statementSync = []matcher{tokCpu.match, tokConfig.match}
	attributeSync = []matcher{tokName.match, tokVlen.match, tokTimeoutCycle.match}
)

// skip returns how many bytes of s belong to a malformed element: up to and
// including the next ';' outside braces, or up to a pragma in sync that
// starts a word outside braces. With stopAtClose it also stops before a '}'
// closing the enclosing block. Comments are skipped whole.
func skip(s string, stopAtClose bool, sync []matcher) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		if depth == 0 && i > 0 && startsWord(s, i, sync) {
			return i
		}
		switch {
		case strings.HasPrefix(s[i:], "//"):
			i += commentLen(s[i:]) - 1
		case s[i] == '{':
			depth++
		case s[i] == '}':
			if depth == 0 {
				if stopAtClose {
					return i
				}
				continue
			}
			depth--
		case s[i] == ';' && depth == 0:
			return i + 1
		}
	}
	return len(s)
}

func startsWord(s string, i int, sync []matcher) bool {
	if prev := s[i-1]; !isSpace(prev) && prev != ';' && prev != '}' {
		return false
	}
	for _, m := range sync {
		if m(s[i:]) > 0 {
			return true
		}
	}
	return false
}

// diagnostic reports f, or the furthest failure seen after c when that one
// is more precise.
func (g *grammar) diagnostic(c cursor, f *Failure) Diagnostic {
	if g.furthest != nil && g.furthest.Offset >= c.off && g.furthest.Offset > f.Offset {
		f = g.furthest
	}
	at := cursor{src: c.src, off: f.Offset, pos: f.Position}
	return Diagnostic{
		Range:    at.rangeTo(at.advance(len(f.Found))),
		Severity: SeverityError,
		Message:  "expected " + f.Expected,
	}
}
