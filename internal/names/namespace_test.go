package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceString(t *testing.T) {
	assert.Equal(t, "notch", Notch.String())
	assert.Equal(t, "srg", Searge.String())
	assert.Equal(t, "mcp", MCP.String())
	assert.Equal(t, "Namespace(9)", Namespace(9).String())
}

func TestAllIsOrdered(t *testing.T) {
	all := All()
	require.Len(t, all, Count)

	for i, ns := range all {
		assert.Equal(t, Namespace(i), ns)
		assert.True(t, ns.Valid())
	}

	assert.False(t, Namespace(-1).Valid())
	assert.False(t, Namespace(Count).Valid())
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Namespace
	}{
		{"notch", Notch},
		{"raw", Notch},
		{"srg", Searge},
		{"Intermediate", Searge},
		{" mcp ", MCP},
		{"dev", MCP},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ns, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ns)
		})
	}

	_, err := Parse("yarn")

	var nsErr *InvalidNamespaceError
	require.ErrorAs(t, err, &nsErr)
	assert.Contains(t, err.Error(), `"yarn"`)
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		input     string
		expected  string
	}{
		{"dotted", Dotted, "net/minecraft/Foo", "net.minecraft.Foo"},
		{"dotted no package", Dotted, "abc", "abc"},
		{"simple name", SimpleName, "net/minecraft/Foo/bar", "bar"},
		{"simple name unqualified", SimpleName, "bar", "bar"},
		{"owner path", OwnerPath, "net/minecraft/Foo/bar", "net/minecraft/Foo"},
		{"owner path unqualified", OwnerPath, "bar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.transform(tt.input))
		})
	}
}
