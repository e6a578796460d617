// Package suggest finds the known names closest to a name that failed to
// resolve, for "did you mean" hints.
package suggest

import (
	"cmp"
	"slices"
	"unicode"
)

// Closest returns up to n candidates ordered by increasing edit distance to
// name, ignoring those further than half of name's length. Letters compare
// case-insensitively. Ties keep candidate order.
func Closest(name string, candidates []string, n int) []string {
	if n <= 0 || name == "" {
		return nil
	}

	type hit struct {
		name     string
		distance int
	}

	target := []rune(name)
	limit := max(len(target)/2, 1)
	row := make([]int, len(target)+1)

	var hits []hit

	for _, c := range candidates {
		if d, ok := within(target, []rune(c), limit, row); ok {
			hits = append(hits, hit{c, d})
		}
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(a.distance, b.distance)
	})

	out := make([]string, 0, min(n, len(hits)))
	for _, h := range hits[:min(n, len(hits))] {
		out = append(out, h.name)
	}

	return out
}

// within computes the edit distance from target to c (insertions,
// deletions and substitutions of single runes) using one reusable row.
// It gives up as soon as every cell of a row exceeds limit.
func within(target, c []rune, limit int, row []int) (int, bool) {
	if abs(len(target)-len(c)) > limit {
		return 0, false
	}

	for i := range row {
		row[i] = i
	}

	for j, r := range c {
		diag := row[0]
		row[0] = j + 1
		best := row[0]

		for i, t := range target {
			cost := 1
			if fold(t) == fold(r) {
				cost = 0
			}

			next := min(row[i+1]+1, row[i]+1, diag+cost)
			diag = row[i+1]
			row[i+1] = next
			best = min(best, next)
		}

		if best > limit {
			return 0, false
		}
	}

	d := row[len(target)]

	return d, d <= limit
}

func fold(r rune) rune {
	return unicode.ToLower(r)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
