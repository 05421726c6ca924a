package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/dhamidi/acels/ace/parser"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	pathColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	kindColor    = color.New(color.FgCyan)
	labelColor   = color.New(color.FgMagenta)
)

// sourceLine returns line of src without its terminator.
func sourceLine(src string, line uint32) (string, bool) {
	start := parser.OffsetAt(src, parser.Position{Line: line})
	if parser.PositionAt(src, start).Line != line {
		return "", false
	}
	end := start
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}
	return src[start:end], true
}

// caretLine returns the marker printed under text for the characters
// [from, to). Tabs before the marker are kept so it lines up in a terminal;
// wide characters count by their display width.
func caretLine(text string, from, to uint32) string {
	runes := []rune(text)
	var sb strings.Builder
	for i := 0; i < len(runes) && uint32(i) < from; i++ {
		if runes[i] == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(runes[i])))
	}

	width := 0
	for i := int(from); i < len(runes) && uint32(i) < to; i++ {
		width += max(1, runewidth.RuneWidth(runes[i]))
	}
	sb.WriteString("^")
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

// writeSnippet prints the line holding r.Start and marks r on it. A range
// spanning lines is marked to the end of its first line.
func writeSnippet(w io.Writer, src string, r parser.Range) {
	text, ok := sourceLine(src, r.Start.Line)
	if !ok {
		return
	}
	end := r.End.Character
	if r.End.Line != r.Start.Line {
		end = uint32(len([]rune(text)))
	}
	fmt.Fprintf(w, "    %s\n", text)
	fmt.Fprintf(w, "    %s\n", caretColor.Sprint(caretLine(text, r.Start.Character, end)))
}

// writeDiagnostic prints d as path:line:col with one-based line and column,
// followed by the offending line.
func writeDiagnostic(w io.Writer, path, src string, d parser.Diagnostic) {
	sev := errorColor.Sprint(d.Severity)
	if d.Severity == parser.SeverityWarning {
		sev = warningColor.Sprint(d.Severity)
	}
	loc := fmt.Sprintf("%s:%d:%d", path, d.Range.Start.Line+1, d.Range.Start.Character+1)
	fmt.Fprintf(w, "%s: %s: %s\n", pathColor.Sprint(loc), sev, d.Message)
	writeSnippet(w, src, d.Range)
}

// describeNode is the one-line summary used by query and repl.
func describeNode(n parser.Node) string {
	var sb strings.Builder
	sb.WriteString(kindColor.Sprint(parser.KindOf(n)))
	switch n := n.(type) {
	case *parser.Token:
		fmt.Fprintf(&sb, " %s %q", n.Kind, n.Text)
	case *parser.InvalidStatement:
		fmt.Fprintf(&sb, " %q", n.Text)
	case *parser.InvalidAttribute:
		fmt.Fprintf(&sb, " %q", n.Text)
	}
	fmt.Fprintf(&sb, " %s", n.Range())
	return sb.String()
}

// writeQuery prints what a query at pos resolves to in doc.
func writeQuery(w io.Writer, doc *parser.Document, pos parser.Position) {
	res := doc.QueryPosition(pos)
	if n, ok := res.Node(); ok {
		fmt.Fprintf(w, "node: %s\n", describeNode(n))
		r := n.Range()
		if t, ok := n.(*parser.Token); ok {
			r = t.TextRange()
		}
		writeSnippet(w, doc.Source(), r)
	} else {
		fmt.Fprintln(w, "node: none (between statements)")
	}
	fmt.Fprintf(w, "label: %s\n", labelColor.Sprint(res.Label()))

	completions := res.Completions()
	if len(completions) == 0 {
		return
	}
	fmt.Fprintln(w, "completions:")
	for _, c := range completions {
		fmt.Fprintf(w, "  %s\n", c)
	}
}
