package names

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srgmap/internal/intern"
)

func TestFromRow(t *testing.T) {
	tests := []struct {
		name      string
		fields    []string
		offset    int
		stride    int
		transform Transform
		expected  [Count]string
	}{
		{
			name:     "class row",
			fields:   []string{"abc", "net/minecraft/world/World", "net/minecraft/world/World"},
			offset:   0,
			stride:   1,
			expected: [Count]string{"abc", "net/minecraft/world/World", "net/minecraft/world/World"},
		},
		{
			name:      "class row dotted",
			fields:    []string{"abc", "net/minecraft/world/World", "net/minecraft/world/World"},
			offset:    0,
			stride:    1,
			transform: Dotted,
			expected:  [Count]string{"abc", "net.minecraft.world.World", "net.minecraft.world.World"},
		},
		{
			name:      "field row simple names",
			fields:    []string{"abc/a", "net/minecraft/world/World/field_72995_K", "net/minecraft/world/World/isRemote"},
			offset:    0,
			stride:    1,
			transform: SimpleName,
			expected:  [Count]string{"a", "field_72995_K", "isRemote"},
		},
		{
			name:      "method names",
			fields:    []string{"abc/b", "(I)V", "net/minecraft/world/World/func_72912_H", "(I)V", "net/minecraft/world/World/tick", "(I)V"},
			offset:    0,
			stride:    2,
			transform: SimpleName,
			expected:  [Count]string{"b", "func_72912_H", "tick"},
		},
		{
			name:     "method descriptors",
			fields:   []string{"abc/b", "(Lxy;)V", "World/func_1", "(Lnet/World;)V", "World/tick", "(Lnet/World;)V"},
			offset:   1,
			stride:   2,
			expected: [Count]string{"(Lxy;)V", "(Lnet/World;)V", "(Lnet/World;)V"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := FromRow(tt.fields, tt.offset, tt.stride, tt.transform, intern.New(8))
			require.NoError(t, err)

			for _, ns := range All() {
				assert.Equal(t, tt.expected[ns], id.Name(ns), ns.String())
			}
		})
	}
}

func TestFromRowMalformed(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		offset int
		stride int
		want   int
	}{
		{"short class row", []string{"a", "b"}, 0, 1, 3},
		{"short method row", []string{"a", "b", "c", "d", "e"}, 1, 2, 6},
		{"empty row", nil, 0, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRow(tt.fields, tt.offset, tt.stride, Identity, intern.New(0))
			require.Error(t, err)

			var rowErr *MalformedRowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, len(tt.fields), rowErr.Got)
			assert.Equal(t, tt.want, rowErr.Want)
		})
	}
}

func TestIdentifiersShareInternedText(t *testing.T) {
	pool := intern.New(8)

	a, err := FromRow([]string{strings.Clone("abc"), "x/A", "y/A"}, 0, 1, Identity, pool)
	require.NoError(t, err)

	b, err := FromRow([]string{strings.Clone("abc"), "x/B", "y/B"}, 0, 1, Identity, pool)
	require.NoError(t, err)

	assert.Same(t, unsafe.StringData(a.Name(Notch)), unsafe.StringData(b.Name(Notch)))
	assert.NotEqual(t, a, b)
}

func TestIdentifierEquality(t *testing.T) {
	pool := intern.New(8)

	a := New("a", "b", "c", pool)
	b := New(strings.Clone("a"), strings.Clone("b"), strings.Clone("c"), pool)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a.IsZero())
	assert.True(t, Identifier{}.IsZero())

	seen := map[Identifier]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestFuse(t *testing.T) {
	pool := intern.New(8)

	name := New("a", "func_1_a", "tick", pool)
	desc := New("(Lb;)V", "(Lnet/World;)V", "(Lnet/World;)V", pool)

	key := Fuse(name, desc, "", pool)
	assert.Equal(t, "a(Lb;)V", key.Name(Notch))
	assert.Equal(t, "func_1_a(Lnet/World;)V", key.Name(Searge))
	assert.Equal(t, "tick(Lnet/World;)V", key.Name(MCP))

	dotted := Fuse(New("A", "B", "C", pool), New("x", "y", "z", pool), ".", pool)
	assert.Equal(t, "A.x", dotted.Name(Notch))
	assert.Equal(t, "C.z", dotted.Name(MCP))
}

func TestLookup(t *testing.T) {
	id := New("a", "b", "c", intern.New(3))

	name, err := id.Lookup(Searge)
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	_, err = id.Lookup(Namespace(7))

	var nsErr *InvalidNamespaceError
	require.ErrorAs(t, err, &nsErr)
	assert.Equal(t, Namespace(7), nsErr.Namespace)
}

func TestIdentifierString(t *testing.T) {
	id := New("a", "net/A", "net/Alpha", intern.New(3))
	assert.Equal(t, "a -> net/A -> net/Alpha", id.String())
}
