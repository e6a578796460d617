package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"srgmap/internal/names"
	"srgmap/internal/resolver"
)

// ClassOptions holds the parsed flags for "class".
type ClassOptions struct {
	Name      string
	Form      resolver.Form
	Namespace names.Namespace
}

// ClassRunFunc handles "class".
type ClassRunFunc func(ctx context.Context, out io.Writer, opts ClassOptions) error

// NewClassCmd creates the "class" subcommand.
func NewClassCmd(runFunc ClassRunFunc) *cobra.Command {
	var (
		opts         ClassOptions
		form, nsFlag string
	)

	cmd := &cobra.Command{
		Use:   "class NAME",
		Short: "Show a class under every namespace",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.Form, err = resolver.ParseForm(form); err != nil {
				return err
			}

			opts.Namespace, err = names.Parse(nsFlag)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return runFunc(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&form, "form", "internal", "Class name form: internal (a/b/C) or regular (a.b.C)")
	cmd.Flags().StringVar(&nsFlag, "ns", "notch", "Namespace of NAME: notch, srg or mcp")

	return cmd
}

// FieldOptions holds the arguments of "field".
type FieldOptions struct {
	Owner string
	Name  string
}

// FieldRunFunc handles "field".
type FieldRunFunc func(ctx context.Context, out io.Writer, opts FieldOptions) error

// NewFieldCmd creates the "field" subcommand.
func NewFieldCmd(runFunc FieldRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "field OWNER NAME",
		Short: "Resolve a field reference through the fallback chain",
		Long: "Resolve a field reference as found in bytecode. Outside dev mode srg names are " +
			"tried first, then notch names; in dev mode only mcp names are tried.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), cmd.OutOrStdout(), FieldOptions{Owner: args[0], Name: args[1]})
		},
	}
}

// MethodOptions holds the arguments of "method".
type MethodOptions struct {
	Owner      string
	Name       string
	Descriptor string
}

// MethodRunFunc handles "method".
type MethodRunFunc func(ctx context.Context, out io.Writer, opts MethodOptions) error

// NewMethodCmd creates the "method" subcommand.
func NewMethodCmd(runFunc MethodRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "method OWNER NAME DESCRIPTOR",
		Short: "Resolve a method reference through the fallback chain",
		Args:  cobra.ExactArgs(3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateDescriptor(args[2])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), cmd.OutOrStdout(), MethodOptions{
				Owner:      args[0],
				Name:       args[1],
				Descriptor: args[2],
			})
		},
	}
}

func validateDescriptor(desc string) error {
	if len(desc) < 3 || desc[0] != '(' {
		return fmt.Errorf("invalid method descriptor %q (e.g. (I)V)", desc)
	}

	return nil
}

// RemapOptions holds the parsed flags for "remap".
type RemapOptions struct {
	Name string
	Form resolver.Form
	From names.Namespace
	To   names.Namespace
}

// RemapRunFunc handles "remap".
type RemapRunFunc func(ctx context.Context, out io.Writer, opts RemapOptions) error

// NewRemapCmd creates the "remap" subcommand.
func NewRemapCmd(runFunc RemapRunFunc) *cobra.Command {
	var (
		opts           RemapOptions
		form, from, to string
	)

	cmd := &cobra.Command{
		Use:   "remap NAME",
		Short: "Convert a class name between namespaces",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.Form, err = resolver.ParseForm(form); err != nil {
				return err
			}

			if opts.From, err = names.Parse(from); err != nil {
				return err
			}

			opts.To, err = names.Parse(to)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return runFunc(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&form, "form", "internal", "Class name form: internal or regular")
	cmd.Flags().StringVar(&from, "from", "", "Namespace of NAME (required)")
	cmd.Flags().StringVar(&to, "to", "", "Target namespace (required)")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
