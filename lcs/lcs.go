// Package lcs provides a position-based longest-common-subsequence
// comparison of two slices.
//
// Compare reports one decision per element of either input. Every decision
// carries the positions it refers to in both slices, and Added and Common
// decisions carry the element value, so consumers never need to index back
// into the compared slices.
package lcs

import "slices"

// Op describes a single comparison decision.
type Op int

const (
	Common  Op = iota // Element present in both slices
	Added             // Element present only in the new slice
	Removed           // Element present only in the old slice
)

// Result describes a single comparison decision. OldIndex is -1 for Added
// and NewIndex is -1 for Removed; Value is the element the decision refers
// to.
type Result[T any] struct {
	Op       Op
	OldIndex int
	NewIndex int
	Value    T
}

// Compare reports the per-element decisions that turn a into b. Decisions
// walk both slices monotonically and cover every element of a and b exactly
// once; elements on a longest common subsequence are reported as Common.
func Compare[T comparable](a, b []T) []Result[T] {
	m, n := len(a), len(b)

	// t[i][j] is the length of the LCS of a[:i] and b[:j].
	t := make([][]int, m+1)
	for i := range t {
		t[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				t[i][j] = t[i-1][j-1] + 1
			} else {
				t[i][j] = max(t[i-1][j], t[i][j-1])
			}
		}
	}

	// Walk the table back from (m, n); the decisions come out in reverse.
	results := make([]Result[T], 0, m+n-t[m][n])
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			results = append(results, Result[T]{Common, i - 1, j - 1, a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || t[i][j-1] >= t[i-1][j]):
			results = append(results, Result[T]{Added, -1, j - 1, b[j-1]})
			j--
		default:
			results = append(results, Result[T]{Removed, i - 1, -1, a[i-1]})
			i--
		}
	}
	slices.Reverse(results)
	return results
}
