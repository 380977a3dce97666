// Package onp provides a sequence comparison based on the Wu, Manber, Myers
// O(NP) algorithm.
//
// Unlike slicepatch.dev/lcs, the raw results carry positions only: the
// algorithm tracks furthest-reaching points per diagonal and never copies
// elements, so consumers index back into the compared slices for values.
//
// Wu, Sun; Manber, Udi; Myers, Gene (1989): "An O(NP) Sequence Comparison
// Algorithm". N is the length of the longer input and P the number of
// deletions from it.
package onp

// Op describes a single comparison decision.
type Op int

const (
	Common  Op = iota // Element present in both slices
	Added             // Element present only in the new slice
	Removed           // Element present only in the old slice
)

// Result describes a single comparison decision by position. OldIndex is -1
// for Added and NewIndex is -1 for Removed.
type Result struct {
	Op       Op
	OldIndex int
	NewIndex int
}

type move int8

const (
	moveNone  move = iota // start of the traversal
	moveDown              // consume one element of the longer slice
	moveRight             // consume one element of the shorter slice
)

// route records one unit move plus the diagonal run that follows it. x and y
// are the positions in the shorter and longer slice after the run; prev
// chains back to the route this one extends.
type route struct {
	prev int
	x, y int
	mv   move
}

// furthest is the furthest-reaching point on one diagonal. id is the route
// that reached it, -1 while the diagonal is unreached.
type furthest struct {
	y  int
	id int
}

// Compare reports the per-element decisions that turn a into b. Decisions
// walk both slices monotonically and cover every element of a and b exactly
// once.
func Compare[T comparable](a, b []T) []Result {
	shorter, longer := a, b
	swapped := len(a) > len(b)
	if swapped {
		shorter, longer = b, a
	}
	m, n := len(shorter), len(longer)
	delta := n - m
	offset := m + 1

	fp := make([]furthest, m+n+3)
	for i := range fp {
		fp[i] = furthest{y: -1, id: -1}
	}
	var routes []route

	// snake steps onto diagonal k from whichever neighbor diagonal reaches
	// further and then extends along k as long as the elements match,
	// recording the step and the extension as one route.
	snake := func(k int) {
		kk := k + offset
		down, right := fp[kk-1], fp[kk+1]

		// A neighbor is unusable if it was never reached or if stepping from
		// it would leave the edit graph.
		downOK := down.id >= 0 && down.y+1 <= n
		rightOK := right.id >= 0 && right.y-k <= m
		var (
			prev int
			py   int
			mv   move
		)
		switch {
		case !downOK && !rightOK:
			if k != 0 || len(routes) > 0 {
				return // diagonal not reachable yet
			}
			prev, py, mv = -1, 0, moveNone
		case !rightOK || (downOK && down.y+1 > right.y):
			prev, py, mv = down.id, down.y+1, moveDown
		default:
			prev, py, mv = right.id, right.y, moveRight
		}

		x, y := py-k, py
		for x < m && y < n && shorter[x] == longer[y] {
			x++
			y++
		}
		routes = append(routes, route{prev: prev, x: x, y: y, mv: mv})
		fp[kk] = furthest{y: y, id: len(routes) - 1}
	}

	for p := 0; ; p++ {
		for k := -p; k < delta; k++ {
			snake(k)
		}
		for k := delta + p; k > delta; k-- {
			snake(k)
		}
		snake(delta)
		if fp[delta+offset].y >= n {
			break
		}
	}

	// Backtrack the route chain of the final point, then replay it forward
	// emitting one decision per unit move and per diagonal step.
	var chain []int
	for id := fp[delta+offset].id; id >= 0; id = routes[id].prev {
		chain = append(chain, id)
	}

	var results []Result
	x, y := 0, 0
	for i := len(chain) - 1; i >= 0; i-- {
		r := routes[chain[i]]
		switch r.mv {
		case moveDown:
			if swapped {
				results = append(results, Result{Removed, y, -1})
			} else {
				results = append(results, Result{Added, -1, y})
			}
			y++
		case moveRight:
			if swapped {
				results = append(results, Result{Added, -1, x})
			} else {
				results = append(results, Result{Removed, x, -1})
			}
			x++
		case moveNone:
		}
		for x < r.x {
			if swapped {
				results = append(results, Result{Common, y, x})
			} else {
				results = append(results, Result{Common, x, y})
			}
			x++
			y++
		}
	}
	return results
}
