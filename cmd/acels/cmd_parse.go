package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/acels/ace/parser"
	"github.com/dhamidi/acels/format"
)

func newParseCmd(g *globals) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an ACE file and dump its syntax tree",
		Long: `Parse an ACE file and dump its syntax tree.

Use - to read from stdin. The source format prints the parsed text back,
which is the input itself unless parsing stopped early.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(g, args[0])
			if err != nil {
				return err
			}

			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree",
		"output format ("+strings.Join(format.Formats(), ", ")+")")

	return cmd
}

// parseFile parses the file at path, or stdin for "-", with the options of
// the loaded configuration.
func parseFile(g *globals, path string) (*parser.Document, error) {
	var opts []parser.Option
	if g.cfg.Parse.Recover {
		opts = append(opts, parser.WithRecovery())
	}

	if path == "-" {
		doc, err := parser.ParseReader(os.Stdin, opts...)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return doc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parser.Parse(string(data), opts...), nil
}
