package slicepatch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatch(t *testing.T) {
	tests := []struct {
		name    string
		a       []string
		changes []Change[string]
		want    []string
	}{
		{
			name: "empty-script",
			a:    []string{"foo", "bar"},
			want: []string{"foo", "bar"},
		},
		{
			name: "empty-script-empty-slice",
		},
		{
			name:    "insert-front",
			a:       []string{"bar"},
			changes: []Change[string]{{Insert, 0, "foo"}},
			want:    []string{"foo", "bar"},
		},
		{
			name:    "insert-append",
			a:       []string{"foo"},
			changes: []Change[string]{{Insert, 1, "bar"}},
			want:    []string{"foo", "bar"},
		},
		{
			name:    "insert-into-empty",
			changes: []Change[string]{{Insert, 0, "foo"}},
			want:    []string{"foo"},
		},
		{
			name:    "remove",
			a:       []string{"foo", "bar", "baz"},
			changes: []Change[string]{{Remove, 1, ""}},
			want:    []string{"foo", "baz"},
		},
		{
			name:    "update",
			a:       []string{"foo", "bar"},
			changes: []Change[string]{{Update, 1, "baz"}},
			want:    []string{"foo", "baz"},
		},
		{
			name: "mixed",
			a:    []string{"one", "TWO", "three", "four"},
			changes: []Change[string]{
				{Insert, 0, "zero"},
				{Remove, 2, ""},
				{Update, 2, "two"},
			},
			want: []string{"zero", "one", "two", "four"},
		},
		{
			name: "hand-built",
			a:    []string{"b", "c"},
			changes: []Change[string]{
				{Insert, 0, "a"},
				{Update, 2, "C"},
				{Insert, 3, "d"},
			},
			want: []string{"a", "b", "C", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(tt.a, tt.changes)
			if err != nil {
				t.Fatalf("Patch() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Patch() result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPatchOutOfBounds(t *testing.T) {
	tests := []struct {
		name    string
		a       []string
		changes []Change[string]
	}{
		{
			name:    "insert-past-end",
			a:       []string{"foo"},
			changes: []Change[string]{{Insert, 2, "bar"}},
		},
		{
			name:    "remove-at-length",
			a:       []string{"foo"},
			changes: []Change[string]{{Remove, 1, ""}},
		},
		{
			name:    "remove-from-empty",
			changes: []Change[string]{{Remove, 0, ""}},
		},
		{
			name:    "update-at-length",
			a:       []string{"foo"},
			changes: []Change[string]{{Update, 1, "bar"}},
		},
		{
			name:    "negative-index",
			a:       []string{"foo"},
			changes: []Change[string]{{Update, -1, "bar"}},
		},
		{
			name: "stale-index-after-remove",
			a:    []string{"foo", "bar"},
			changes: []Change[string]{
				{Remove, 0, ""},
				{Remove, 1, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Patch(tt.a, tt.changes); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Patch() error = %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestPatchDoesNotMutateSource(t *testing.T) {
	a := []string{"one", "TWO", "three", "four"}
	changes := []Change[string]{
		{Insert, 0, "zero"},
		{Remove, 2, ""},
		{Update, 2, "two"},
	}
	got, err := Patch(a, changes)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	want := []string{"one", "TWO", "three", "four"}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("source changed (-want, +got):\n%s", diff)
	}

	// The result must not alias the source either.
	got[0] = "mutated"
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("source aliases result (-want, +got):\n%s", diff)
	}
}
