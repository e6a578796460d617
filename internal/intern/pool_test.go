package intern

import (
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternReturnsCanonicalInstance(t *testing.T) {
	p := New(4)

	// Build two equal strings with distinct backing arrays.
	a := strings.Clone("net/minecraft/block/Block")
	b := strings.Clone("net/minecraft/block/Block")
	require.NotSame(t, unsafe.StringData(a), unsafe.StringData(b))

	ia := p.Intern(a)
	ib := p.Intern(b)

	assert.Equal(t, a, ib)
	assert.Same(t, unsafe.StringData(ia), unsafe.StringData(ib))
	assert.Same(t, unsafe.StringData(a), unsafe.StringData(ib))
	assert.Equal(t, 1, p.Size())
}

func TestInternDistinctValues(t *testing.T) {
	p := New(0)

	for _, s := range []string{"a", "b", "a", "", "b", "c"} {
		p.Intern(s)
	}

	assert.Equal(t, 4, p.Size())
}

func TestInternConcurrent(t *testing.T) {
	p := New(16)
	names := []string{"field_1_a", "field_2_b", "func_3_c", "()V", "(I)Z"}

	var wg sync.WaitGroup
	results := make([][]string, 8)

	for w := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			out := make([]string, 0, len(names))
			for _, n := range names {
				out = append(out, p.Intern(strings.Clone(n)))
			}

			results[w] = out
		}()
	}

	wg.Wait()

	require.Equal(t, len(names), p.Size())

	for _, out := range results[1:] {
		for i := range out {
			assert.Same(t, unsafe.StringData(results[0][i]), unsafe.StringData(out[i]))
		}
	}
}
