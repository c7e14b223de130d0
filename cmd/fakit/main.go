// cmd/fakit/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fakit/internal/app"
	"fakit/internal/getseqapp"
	"fakit/internal/renameapp"
	"fakit/internal/splitapp"
	"fakit/internal/statsapp"
	"fakit/internal/version"
)

// exitError carries a tool's exit code through cobra without printing
// anything twice; the tools already wrote their own diagnostics.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

type runFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

func wrap(run runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		code := run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if code != 0 {
			return exitError{code}
		}
		return nil
	}
}

func subcommand(use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               wrap(run),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fakit",
		Short:         "streaming FASTA munging toolkit",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		subcommand("filter", "keep records by sequence length", app.RunContext),
		subcommand("stats", "sequence length statistics (N50 and friends)", statsapp.RunContext),
		subcommand("split", "split a multi-FASTA into files or parts", splitapp.RunContext),
		subcommand("rename", "rewrite headers with a prefix counter or ID map", renameapp.RunContext),
		subcommand("getseq", "extract records by ID", getseqapp.RunContext),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ee, ok := err.(exitError); ok {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
