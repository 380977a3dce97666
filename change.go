// Package slicepatch normalizes the results of different sequence-comparison
// algorithms into a single edit-script representation and applies such scripts
// to reconstruct the compared-against slice.
//
// An edit script is an ordered []Change. Three adapters produce one from the
// raw decisions of a comparison algorithm: [Changes] for [znkr.io/diff],
// [LCSChanges] for the position-based LCS results of [slicepatch.dev/lcs],
// and [WuChanges] for the O(NP) results of [slicepatch.dev/onp]. The
// convenience functions [Diff], [LCSDiff], and [WuDiff] run comparison and
// adaptation in one call. [Patch] replays a script against the source slice
// and reproduces the target. [AppendInsert] and [AppendRemove] build scripts
// by hand for comparison algorithms not covered here.
//
// The three adapters may order and index the operations around an edit
// differently, but for any of them Patch(a, script) reproduces b exactly.
// Script minimality is the comparison algorithm's concern, not this
// package's.
package slicepatch

// Op describes an edit-script operation.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Remove Op = iota // Remove the element at Index
	Insert           // Insert Value at Index
	Update           // Replace the element at Index with Value
)

// Change describes a single step of an edit script.
//
//   - For Remove, Index addresses the source slice as transformed by the
//     preceding steps and Value is the zero value
//   - For Insert, Index is the position in the target slice where Value
//     belongs
//   - For Update, Index addresses the element to overwrite with Value
//
// Changes are plain values: they compare with ==, copy by assignment, and
// carry no reference to the slices they were computed from.
type Change[T any] struct {
	Op    Op
	Index int
	Value T
}
