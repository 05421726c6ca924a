package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/acels/ace/codebase"
)

// errDiagnostics makes check exit non-zero without printing another error.
type errDiagnostics int

func (e errDiagnostics) Error() string {
	return fmt.Sprintf("%d problem(s) found", int(e))
}

func newCheckCmd(g *globals) *cobra.Command {
	var watch bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report syntax errors in ACE files",
		Long: `Parse files and directories and report every syntax error.

Directories are searched for files with the configured extensions. Without
arguments the current directory is checked. Lines and columns in the report
are one-based. With --watch the files are checked again whenever they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if cmd.Flags().Changed("jobs") {
				g.cfg.Workspace.Jobs = jobs
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cb := codebase.New(".", g.cfg)
			problems, err := runCheck(ctx, cmd.OutOrStdout(), cb, args)
			if err != nil {
				return err
			}
			if !watch {
				if problems > 0 {
					return errDiagnostics(problems)
				}
				return nil
			}
			return watchCheck(ctx, cmd.OutOrStdout(), cb, args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again when files change")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "files parsed at once (default: configured, or one per CPU)")

	return cmd
}

// runCheck parses every file under roots and prints their diagnostics. It
// returns the number of problems, counting unreadable files.
func runCheck(ctx context.Context, w io.Writer, cb *codebase.Codebase, roots []string) (int, error) {
	paths, err := cb.Collect(roots...)
	if err != nil {
		return 0, err
	}

	files, err := cb.ScanFiles(ctx, paths)
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	problems := 0
	if err != nil {
		fmt.Fprintln(w, errorColor.Sprint("error:"), err)
		for _, f := range files {
			if f == nil {
				problems++
			}
		}
	}
	for _, f := range files {
		if f != nil {
			problems += writeFileDiagnostics(w, f)
		}
	}
	fmt.Fprintf(w, "checked %d file(s), %d problem(s)\n", len(paths), problems)
	return problems, nil
}

func writeFileDiagnostics(w io.Writer, f *codebase.FileInfo) int {
	diags := f.Document.Diagnostics()
	for _, d := range diags {
		writeDiagnostic(w, f.Path, f.Content, d)
	}
	return len(diags)
}

func watchCheck(ctx context.Context, w io.Writer, cb *codebase.Codebase, roots []string) error {
	var mu sync.Mutex
	watcher, err := codebase.NewWatcher(cb, func(path string, f *codebase.FileInfo) {
		mu.Lock()
		defer mu.Unlock()
		if f == nil {
			fmt.Fprintf(w, "%s: removed\n", pathColor.Sprint(path))
			return
		}
		if writeFileDiagnostics(w, f) == 0 {
			fmt.Fprintf(w, "%s: ok\n", pathColor.Sprint(path))
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Start(ctx, roots...); err != nil {
		return err
	}
	fmt.Fprintln(w, "watching for changes, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}
