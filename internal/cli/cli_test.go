package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srgmap/internal/names"
	"srgmap/internal/resolver"
)

func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestClassCmd(t *testing.T) {
	var (
		global GlobalOptions
		got    ClassOptions
	)

	root := NewRootCmd("test", &global)
	root.AddCommand(NewClassCmd(func(_ context.Context, out io.Writer, opts ClassOptions) error {
		got = opts
		_, err := io.WriteString(out, "ok")

		return err
	}))

	out, err := execute(t, root, "--dir", "/tmp/mcp", "--dev", "class", "--form", "regular", "--ns", "srg", "net.minecraft.world.World")
	require.NoError(t, err)

	assert.Equal(t, "ok", out)
	assert.Equal(t, ClassOptions{Name: "net.minecraft.world.World", Form: resolver.Regular, Namespace: names.Searge}, got)
	assert.Equal(t, "/tmp/mcp", global.Dir)
	assert.True(t, global.Dev)
	assert.True(t, global.DevSet)
}

func TestClassCmdDefaults(t *testing.T) {
	var (
		global GlobalOptions
		got    ClassOptions
	)

	root := NewRootCmd("test", &global)
	root.AddCommand(NewClassCmd(func(_ context.Context, _ io.Writer, opts ClassOptions) error {
		got = opts
		return nil
	}))

	_, err := execute(t, root, "class", "abc")
	require.NoError(t, err)

	assert.Equal(t, resolver.Internal, got.Form)
	assert.Equal(t, names.Notch, got.Namespace)
	assert.False(t, global.DevSet)
}

func TestClassCmdInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad form", []string{"class", "--form", "binary", "a"}},
		{"bad namespace", []string{"class", "--ns", "yarn", "a"}},
		{"missing name", []string{"class"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			root := NewRootCmd("test", &GlobalOptions{})
			root.AddCommand(NewClassCmd(func(context.Context, io.Writer, ClassOptions) error {
				called = true
				return nil
			}))

			_, err := execute(t, root, tt.args...)
			require.Error(t, err)
			assert.False(t, called)
		})
	}
}

func TestMemberCmds(t *testing.T) {
	var (
		field  FieldOptions
		method MethodOptions
	)

	root := NewRootCmd("test", &GlobalOptions{})
	root.AddCommand(
		NewFieldCmd(func(_ context.Context, _ io.Writer, opts FieldOptions) error {
			field = opts
			return nil
		}),
		NewMethodCmd(func(_ context.Context, _ io.Writer, opts MethodOptions) error {
			method = opts
			return nil
		}),
	)

	_, err := execute(t, root, "field", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, FieldOptions{Owner: "a", Name: "b"}, field)

	_, err = execute(t, root, "method", "a", "b", "(I)V")
	require.NoError(t, err)
	assert.Equal(t, MethodOptions{Owner: "a", Name: "b", Descriptor: "(I)V"}, method)

	_, err = execute(t, root, "method", "a", "b", "I")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid method descriptor")
}

func TestRemapCmd(t *testing.T) {
	var got RemapOptions

	newRoot := func() *cobra.Command {
		root := NewRootCmd("test", &GlobalOptions{})
		root.AddCommand(NewRemapCmd(func(_ context.Context, _ io.Writer, opts RemapOptions) error {
			got = opts
			return nil
		}))

		return root
	}

	_, err := execute(t, newRoot(), "remap", "--from", "mcp", "--to", "notch", "net/minecraft/world/World")
	require.NoError(t, err)
	assert.Equal(t, RemapOptions{
		Name: "net/minecraft/world/World",
		Form: resolver.Internal,
		From: names.MCP,
		To:   names.Notch,
	}, got)

	_, err = execute(t, newRoot(), "remap", "--from", "mcp", "a")
	require.Error(t, err)
}

func TestTableCmds(t *testing.T) {
	var calls []string

	record := func(name string) TablesRunFunc {
		return func(context.Context, io.Writer) error {
			calls = append(calls, name)
			return nil
		}
	}

	var dumped DumpOptions

	root := NewRootCmd("test", &GlobalOptions{})
	root.AddCommand(
		NewCheckCmd(record("check")),
		NewStatsCmd(record("stats")),
		NewConfigCmd(record("config")),
		NewDumpCmd(func(_ context.Context, _ io.Writer, opts DumpOptions) error {
			dumped = opts
			return nil
		}),
	)

	_, err := execute(t, root, "check")
	require.NoError(t, err)

	_, err = execute(t, root, "stats")
	require.NoError(t, err)

	_, err = execute(t, root, "config")
	require.NoError(t, err)

	_, err = execute(t, root, "check", "extra")
	require.Error(t, err)

	_, err = execute(t, root, "dump", "--ns", "mcp", "com/baz/Foo")
	require.NoError(t, err)

	assert.Equal(t, []string{"check", "stats", "config"}, calls)
	assert.Equal(t, DumpOptions{Name: "com/baz/Foo", Namespace: names.MCP}, dumped)
}
