package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "quickly-rank",
		Short:        "Ranked ballot editor",
		SilenceUsage: true,
	}

	// Flags are parsed by cliparse so env fallbacks and validation live in
	// one place.
	serveCmd := &cobra.Command{
		Use:                "serve [flags]",
		Short:              "Serve the editing session API",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ignoreHelp(runServe(cmd.Context(), args))
		},
	}
	editCmd := &cobra.Command{
		Use:                "edit [flags]",
		Short:              "Rank candidates in the terminal and print the ballot as JSON",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ignoreHelp(runEdit(cmd.Context(), args, cmd.OutOrStdout()))
		},
	}

	root.AddCommand(serveCmd, editCmd)
	return root
}

func ignoreHelp(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}
