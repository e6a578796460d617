// Package main provides the CLI entrypoint for srgmap.
//
// srgmap loads the classes, fields and methods mapping tables and answers
// questions about them:
//   - What is this class called under another namespace?
//   - Which field or method does a bytecode reference resolve to?
//   - Are the tables consistent?
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"srgmap/internal/cli"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stderr).command().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// command builds the command tree with every handler bound to a.
func (a *app) command() *cobra.Command {
	root := cli.NewRootCmd(version, &a.global)
	root.AddCommand(
		cli.NewClassCmd(a.runClass),
		cli.NewFieldCmd(a.runField),
		cli.NewMethodCmd(a.runMethod),
		cli.NewRemapCmd(a.runRemap),
		cli.NewCheckCmd(a.runCheck),
		cli.NewStatsCmd(a.runStats),
		cli.NewDumpCmd(a.runDump),
		cli.NewConfigCmd(a.runConfig),
	)

	return root
}
