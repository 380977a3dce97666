package slicepatch

import (
	"znkr.io/diff"

	"slicepatch.dev/lcs"
	"slicepatch.dev/onp"
)

// Changes converts the per-element decisions of [diff.Edits] into an edit
// script. Match decisions contribute nothing; aligned delete/insert pairs
// collapse into a single update. Insert values are taken from the decisions
// themselves, so the compared slices are not needed.
func Changes[T any](edits []diff.Edit[T]) []Change[T] {
	var changes []Change[T]
	removed := 0
	for i, e := range edits {
		n := i - removed
		switch e.Op {
		case diff.Match:
		case diff.Delete:
			changes = AppendRemove(changes, n)
			removed++
		case diff.Insert:
			changes = AppendInsert(changes, n, e.Y)
		default:
			panic("never reached")
		}
	}
	return changes
}

// Diff compares a and b with [diff.Edits] and returns the normalized edit
// script.
func Diff[T comparable](a, b []T) []Change[T] {
	return Changes(diff.Edits(a, b))
}

// LCSChanges converts the position-based decisions of [lcs.Compare] into an
// edit script. Removal positions are rebased onto the slice as transformed so
// far; insert values are taken from the decisions themselves.
func LCSChanges[T any](results []lcs.Result[T]) []Change[T] {
	var changes []Change[T]
	added, removed := 0, 0
	for _, r := range results {
		switch r.Op {
		case lcs.Common:
		case lcs.Removed:
			changes = AppendRemove(changes, r.OldIndex+added-removed)
			removed++
		case lcs.Added:
			changes = AppendInsert(changes, r.NewIndex, r.Value)
			added++
		default:
			panic("never reached")
		}
	}
	return changes
}

// LCSDiff compares a and b with [lcs.Compare] and returns the normalized
// edit script.
func LCSDiff[T comparable](a, b []T) []Change[T] {
	return LCSChanges(lcs.Compare(a, b))
}

// WuChanges converts the decisions of [onp.Compare] into an edit script.
// Unlike [LCSChanges], the raw results carry positions only, so b is needed
// to clone inserted values.
func WuChanges[T any](results []onp.Result, b []T) []Change[T] {
	var changes []Change[T]
	added, removed := 0, 0
	for _, r := range results {
		switch r.Op {
		case onp.Common:
		case onp.Removed:
			changes = AppendRemove(changes, r.OldIndex+added-removed)
			removed++
		case onp.Added:
			changes = AppendInsert(changes, r.NewIndex, b[r.NewIndex])
			added++
		default:
			panic("never reached")
		}
	}
	return changes
}

// WuDiff compares a and b with [onp.Compare] and returns the normalized edit
// script.
func WuDiff[T comparable](a, b []T) []Change[T] {
	return WuChanges(onp.Compare(a, b), b)
}
