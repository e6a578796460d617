package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"srgmap/internal/names"
)

// TablesRunFunc handles commands that only need the output writer.
type TablesRunFunc func(ctx context.Context, out io.Writer) error

// NewCheckCmd creates the "check" subcommand.
func NewCheckCmd(runFunc TablesRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report every problem in the mapping tables",
		Long: "Read the mapping tables without stopping at the first problem. Exits non-zero " +
			"when a table could not be loaded by the resolver.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// NewStatsCmd creates the "stats" subcommand.
func NewStatsCmd(runFunc TablesRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the size of the loaded tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// DumpOptions holds the parsed flags for "dump".
type DumpOptions struct {
	Name      string
	Namespace names.Namespace
}

// DumpRunFunc handles "dump".
type DumpRunFunc func(ctx context.Context, out io.Writer, opts DumpOptions) error

// NewDumpCmd creates the "dump" subcommand.
func NewDumpCmd(runFunc DumpRunFunc) *cobra.Command {
	var (
		opts   DumpOptions
		nsFlag string
	)

	cmd := &cobra.Command{
		Use:   "dump CLASS",
		Short: "Dump a class with all its members",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts.Namespace, err = names.Parse(nsFlag)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return runFunc(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&nsFlag, "ns", "notch", "Namespace of CLASS (internal form)")

	return cmd
}

// NewConfigCmd creates the "config" subcommand.
func NewConfigCmd(runFunc TablesRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: "Print the configuration after applying the config file, the " +
			"SRGMAP_DEV_MODE environment variable and the command-line flags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
