package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/acels/ace/codebase"
)

func newLSPCmd(g *globals) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("watch") {
				g.cfg.Workspace.Watch = watch
			}
			server := codebase.NewLSPServer(version, g.cfg)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-parse workspace files changed outside the editor")

	return cmd
}
