package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithin(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		limit    int
		expected int
		ok       bool
	}{
		{"abc", "abc", 1, 0, true},
		{"abc", "", 3, 3, true},
		{"a", "ab", 1, 1, true},
		{"ab", "a", 1, 1, true},
		{"kitten", "sitting", 3, 3, true},
		{"saturday", "sunday", 3, 3, true},
		{"field_72995_K", "field_72995_L", 1, 1, true},
		{"isRemote", "IsREMOTE", 1, 0, true},
		{"worldObj", "world", 3, 3, true},

		// Over the limit, by length or by content.
		{"worldObj", "world", 2, 0, false},
		{"kitten", "sitting", 2, 0, false},
		{"aaaa", "bbbb", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			target := []rune(tt.a)
			d, ok := within(target, []rune(tt.b), tt.limit, make([]int, len(target)+1))
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"isRemote", "worldObj", "rand", "isRemoved", "provider"}

	assert.Equal(t, []string{"isRemote", "isRemoved"}, Closest("isremote", candidates, 3))
	assert.Equal(t, []string{"isRemote"}, Closest("isRemot", candidates, 1))
	assert.Equal(t, []string{"rand"}, Closest("band", candidates, 5))
	assert.Equal(t, []string{"Überfall"}, Closest("überfal", []string{"Überfall", "other"}, 2))
	assert.Empty(t, Closest("zzzzzzzz", candidates, 3))
	assert.Nil(t, Closest("", candidates, 3))
	assert.Nil(t, Closest("rand", candidates, 0))
}
