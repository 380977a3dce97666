package slicepatch

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfBounds reports an index outside the valid range of the slice an
// operation was asked to modify. During [Patch] it signals an edit script
// that is inconsistent with the source slice it is applied to. Callers match
// it with [errors.Is].
var ErrOutOfBounds = errors.New("index out of bounds")

// InsertAt inserts v immediately before index i, shifting later elements
// right by one; i == len(s) appends. It fails with [ErrOutOfBounds] if i is
// negative or greater than len(s).
//
// Like [slices.Insert], InsertAt consumes its argument: callers must use the
// returned slice and must not use s afterwards.
func InsertAt[T any](s []T, i int, v T) ([]T, error) {
	if i < 0 || i > len(s) {
		return nil, fmt.Errorf("%w: insert at %d with length %d", ErrOutOfBounds, i, len(s))
	}
	return slices.Insert(s, i, v), nil
}

// RemoveAt removes the element at index i, shifting later elements left by
// one. It fails with [ErrOutOfBounds] if i is negative or at least len(s).
//
// Like [slices.Delete], RemoveAt consumes its argument: callers must use the
// returned slice and must not use s afterwards.
func RemoveAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("%w: remove at %d with length %d", ErrOutOfBounds, i, len(s))
	}
	return slices.Delete(s, i, i+1), nil
}
