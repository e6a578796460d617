// Package cli defines the srgmap command tree. Command handlers are injected
// by the wiring layer (cmd/srgmap/main.go), so this package only parses and
// validates flags.
package cli

import (
	"github.com/spf13/cobra"
)

// GlobalOptions holds the persistent flags shared by every subcommand.
type GlobalOptions struct {
	// Config is the path of an optional YAML config file.
	Config string
	// Dir overrides the mappings directory from the config.
	Dir string
	// Dev overrides the dev mode from the config and environment when DevSet.
	Dev    bool
	DevSet bool
	// Verbose enables debug logging.
	Verbose bool
}

// NewRootCmd creates the top-level srgmap command.
func NewRootCmd(version string, opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srgmap",
		Short: "Resolve symbols across notch, srg and mcp names",
		Long: "srgmap loads mapping tables (classes, fields, methods) and resolves a symbol's " +
			"name in one namespace to its names in the others.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.DevSet = cmd.Flags().Changed("dev")
		},
	}

	cmd.Version = version

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Config, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.Dir, "dir", "", "Directory holding the mapping tables")
	flags.BoolVar(&opts.Dev, "dev", false, "Resolve members by developer (mcp) names only")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
