package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	xebnf "golang.org/x/exp/ebnf"

	"github.com/dhamidi/acels/ace/ebnf"
)

func newGrammarCmd() *cobra.Command {
	var tokensFile string

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the ACE language",
		Long: `Print the EBNF grammar of the ACE language after verifying it.

With --tokens, split a file into the grammar's tokens instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnf.Grammar()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tokensFile == "" {
				fmt.Fprint(out, ebnf.Source())
				return nil
			}

			data, err := os.ReadFile(tokensFile)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			tokens, err := ebnf.NewLexer(grammar, string(data)).Tokenize()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&tokensFile, "tokens", "", "tokenize `file` with the grammar")

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Long: `Parse and verify an EBNF grammar file, for example a draft of an
extended ACE grammar. Every problem is printed on its own line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := xebnf.Parse(filename, f)
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := xebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", ebnf.Start, "start production for verification (empty only checks syntax)")

	return cmd
}

// printErrors prints each error of the list x/exp/ebnf returns.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
