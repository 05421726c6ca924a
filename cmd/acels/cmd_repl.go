package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/acels/ace/keyword"
	"github.com/dhamidi/acels/ace/parser"
	"github.com/dhamidi/acels/format"
)

const replPrompt = "ace> "

var replCommands = []string{":reload", ":tree", ":diag", ":help", "exit", "quit"}

func newReplCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "repl <file>",
		Short: "Query positions of an ACE file interactively",
		Long: `Load an ACE file and answer queries typed as "line:character"
(zero-based). Type :help for the other commands.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{g: g, path: args[0]}
			if err := s.load(); err != nil {
				return err
			}
			return runRepl(cmd.OutOrStdout(), s)
		},
	}
}

// session is the file a repl works on.
type session struct {
	g    *globals
	path string
	doc  *parser.Document
}

func (s *session) load() error {
	doc, err := parseFile(s.g, s.path)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

func runRepl(out io.Writer, s *session) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeInput)

	historyFile := filepath.Join(os.TempDir(), ".acels_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "%s: %d statement(s)\n", s.path, len(s.doc.Statements))
	fmt.Fprintln(out, `Type "line:character" to query, :help for commands, Ctrl+D to quit`)

	for {
		input, err := line.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if quit := s.eval(out, input); quit {
			return nil
		}
	}
}

// eval runs one line of input and reports whether the repl should stop.
func (s *session) eval(out io.Writer, input string) bool {
	input = strings.TrimSpace(input)
	switch input {
	case "":
		return false
	case "exit", "quit":
		return true
	case ":help":
		fmt.Fprintln(out, "line:character  show the node and completions at a position")
		fmt.Fprintln(out, ":tree           print the syntax tree")
		fmt.Fprintln(out, ":diag           print parse errors")
		fmt.Fprintln(out, ":reload         parse the file again")
		fmt.Fprintln(out, "exit, quit      leave")
		return false
	case ":reload":
		if err := s.load(); err != nil {
			fmt.Fprintln(out, errorColor.Sprint("error:"), err)
			return false
		}
		fmt.Fprintf(out, "%s: %d statement(s)\n", s.path, len(s.doc.Statements))
		return false
	case ":tree":
		if err := format.NewTreeEncoder(out).Encode(s.doc); err != nil {
			fmt.Fprintln(out, errorColor.Sprint("error:"), err)
		}
		return false
	case ":diag":
		diags := s.doc.Diagnostics()
		if len(diags) == 0 {
			fmt.Fprintln(out, "no problems")
		}
		for _, d := range diags {
			writeDiagnostic(out, s.path, s.doc.Source(), d)
		}
		return false
	}

	lineStr, charStr, ok := strings.Cut(input, ":")
	if !ok {
		lineStr, charStr, ok = strings.Cut(input, " ")
	}
	if !ok {
		fmt.Fprintf(out, "%s unknown input %q, try :help\n", errorColor.Sprint("error:"), input)
		return false
	}
	pos, err := parsePosition(strings.TrimSpace(lineStr), strings.TrimSpace(charStr))
	if err != nil {
		fmt.Fprintln(out, errorColor.Sprint("error:"), err)
		return false
	}
	writeQuery(out, s.doc, pos)
	return false
}

// completeInput completes repl commands and statement pragmas.
func completeInput(input string) []string {
	var out []string
	for _, c := range replCommands {
		if strings.HasPrefix(c, input) {
			out = append(out, c)
		}
	}
	if input != "" && !strings.HasPrefix(input, ":") {
		for _, s := range keyword.Statements {
			if strings.HasPrefix(s, input) {
				out = append(out, s)
			}
		}
	}
	sort.Strings(out)
	return out
}
