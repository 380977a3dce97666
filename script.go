package slicepatch

// AppendInsert appends an insertion of v at index n to an edit script under
// construction and returns the extended script. A directly preceding removal
// of the same index is upgraded to an update in place, collapsing the aligned
// remove/insert pair into a single [Update].
//
// AppendInsert and [AppendRemove] are the building blocks of the adapters in
// this package; they let callers hand-assemble a script from the output of a
// comparison algorithm not covered here.
func AppendInsert[T any](changes []Change[T], n int, v T) []Change[T] {
	if k := len(changes) - 1; k >= 0 && changes[k].Op == Remove && changes[k].Index == n {
		changes[k] = Change[T]{Op: Update, Index: n, Value: v}
		return changes
	}
	return append(changes, Change[T]{Op: Insert, Index: n, Value: v})
}

// AppendRemove appends a removal of index n to an edit script under
// construction and returns the extended script. A directly preceding
// insertion at n-1 is upgraded to an update in place, collapsing the aligned
// insert/remove pair into a single [Update].
func AppendRemove[T any](changes []Change[T], n int) []Change[T] {
	if k := len(changes) - 1; k >= 0 && changes[k].Op == Insert && changes[k].Index+1 == n {
		changes[k].Op = Update
		return changes
	}
	return append(changes, Change[T]{Op: Remove, Index: n})
}
