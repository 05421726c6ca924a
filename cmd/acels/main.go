package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/acels/config"
)

// globals are the flags shared by every command and the configuration they
// resolve to.
type globals struct {
	configPath string
	verbose    int
	noColor    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "acels",
		Short:         "Tools and language server for ACE configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "configuration file (default: search acels.toml, acels.yaml)")
	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newQueryCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newLSPCmd(g))
	rootCmd.AddCommand(newReplCmd(g))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (g *globals) setup() error {
	cfg, err := config.Load(g.configPath, os.Getenv)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.noColor {
		color.NoColor = true
	}

	verbosity := cfg.Log.Verbosity + g.verbose
	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(verbosity, logFile)
	return nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(errorColor.Sprint("error:"), err)
		os.Exit(1)
	}
}
