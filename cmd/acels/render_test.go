package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/dhamidi/acels/ace/parser"
)

func init() {
	color.NoColor = true
}

func TestCaretLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		from, to uint32
		want     string
	}{
		{"start", "cpu hello", 0, 3, "^~~"},
		{"middle", "cpu hello", 4, 9, "    ^~~~~"},
		{"empty range", "cpu", 3, 3, "   ^"},
		{"tabs kept", "\tname = x;", 1, 5, "\t^~~~"},
		{"wide characters", "中文 x", 3, 4, "     ^"},
		{"past end", "ab", 5, 7, "  ^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := caretLine(tt.text, tt.from, tt.to); got != tt.want {
				t.Errorf("caretLine(%q, %d, %d) = %q, want %q", tt.text, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSourceLine(t *testing.T) {
	src := "one\r\ntwo\nthree"
	for i, want := range []string{"one", "two", "three"} {
		got, ok := sourceLine(src, uint32(i))
		if !ok || got != want {
			t.Errorf("sourceLine(%d) = %q, %v, want %q", i, got, ok, want)
		}
	}
	if _, ok := sourceLine(src, 3); ok {
		t.Error("sourceLine past the end succeeded")
	}
}

func TestWriteDiagnosticMultiline(t *testing.T) {
	src := "cpu {\n    name = 42;\n};"
	d := parser.Diagnostic{
		Range:    parser.Range{Start: parser.Position{Line: 0, Character: 4}, End: parser.Position{Line: 2, Character: 1}},
		Severity: parser.SeverityWarning,
		Message:  "odd block",
	}
	var buf bytes.Buffer
	writeDiagnostic(&buf, "a.ace", src, d)

	want := "a.ace:1:5: warning: odd block\n" +
		"    cpu {\n" +
		"        ^\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDescribeNode(t *testing.T) {
	doc := parser.Parse("cpu hello\n", parser.WithRecovery())
	got := describeNode(doc.Statements[0])
	if !strings.HasPrefix(got, `InvalidStatement "cpu hello\n" 0:0-`) {
		t.Errorf("describeNode = %q", got)
	}
}
