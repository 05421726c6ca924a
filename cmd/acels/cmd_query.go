package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/acels/ace/parser"
)

func newQueryCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <file> <line> <character>",
		Short: "Show the node and completions at a position",
		Long: `Show the node at a position of an ACE file, its label and the
completion candidates for it.

Line and character are zero-based; characters count code points.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[1], args[2])
			if err != nil {
				return err
			}
			doc, err := parseFile(g, args[0])
			if err != nil {
				return err
			}
			writeQuery(cmd.OutOrStdout(), doc, pos)
			return nil
		},
	}
	return cmd
}

func parsePosition(line, character string) (parser.Position, error) {
	l, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return parser.Position{}, fmt.Errorf("invalid line %q: %w", line, err)
	}
	c, err := strconv.ParseUint(character, 10, 32)
	if err != nil {
		return parser.Position{}, fmt.Errorf("invalid character %q: %w", character, err)
	}
	return parser.Position{Line: uint32(l), Character: uint32(c)}, nil
}
