package slicepatch

import (
	"fmt"
	"slices"
)

// Patch replays an edit script against a and returns the reconstructed
// slice. For a script produced by one of the adapters in this package from
// comparing a against some b, the result is exactly b.
//
// The script is replayed strictly in order: later operations' indices
// already account for the structural effect of earlier ones, so Patch never
// reorders or rebases them. a itself is never modified; the result is a
// freshly allocated slice.
//
// An index outside the working slice fails with [ErrOutOfBounds], wrapped
// with the position of the offending change. This signals a script that was
// not computed for a; Patch never clamps or truncates.
func Patch[T any](a []T, changes []Change[T]) ([]T, error) {
	out := slices.Clone(a)
	for i, c := range changes {
		var err error
		switch c.Op {
		case Remove:
			out, err = RemoveAt(out, c.Index)
		case Insert:
			out, err = InsertAt(out, c.Index, c.Value)
		case Update:
			if c.Index < 0 || c.Index >= len(out) {
				err = fmt.Errorf("%w: update at %d with length %d", ErrOutOfBounds, c.Index, len(out))
			} else {
				out[c.Index] = c.Value
			}
		default:
			panic("never reached")
		}
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
	}
	return out, nil
}
