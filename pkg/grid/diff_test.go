package grid

import "testing"

func TestDiff(t *testing.T) {
	base := Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}

	tests := []struct {
		name string
		a, b Layout
		want map[string]Change
	}{
		{
			name: "identical layouts yield empty diff",
			a:    base,
			b:    base.Clone(),
			want: map[string]Change{},
		},
		{
			name: "position change is a move",
			a:    base,
			b: Layout{
				{ID: "a", X: 4, Y: 0, W: 2, H: 2},
				{ID: "b", X: 2, Y: 0, W: 2, H: 2},
			},
			want: map[string]Change{"a": ChangeMove},
		},
		{
			name: "size change is a resize",
			a:    base,
			b: Layout{
				{ID: "a", X: 0, Y: 0, W: 3, H: 2},
				{ID: "b", X: 2, Y: 0, W: 2, H: 2},
			},
			want: map[string]Change{"a": ChangeResize},
		},
		{
			name: "both changed is a moveresize",
			a:    base,
			b: Layout{
				{ID: "a", X: 1, Y: 1, W: 3, H: 3},
				{ID: "b", X: 2, Y: 0, W: 2, H: 2},
			},
			want: map[string]Change{"a": ChangeMoveResize},
		},
		{
			name: "items in only one layout are skipped",
			a: Layout{
				{ID: "a", X: 0, Y: 0, W: 2, H: 2},
				{ID: "gone", X: 5, Y: 5, W: 1, H: 1},
			},
			b: Layout{
				{ID: "a", X: 0, Y: 0, W: 2, H: 2},
				{ID: "new", X: 6, Y: 6, W: 1, H: 1},
			},
			want: map[string]Change{},
		},
		{
			name: "multiple changes reported independently",
			a:    base,
			b: Layout{
				{ID: "a", X: 4, Y: 0, W: 2, H: 2},
				{ID: "b", X: 2, Y: 0, W: 1, H: 1},
			},
			want: map[string]Change{"a": ChangeMove, "b": ChangeResize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("Diff = %v, want %v", got, tt.want)
			}
			for id, change := range tt.want {
				if got[id] != change {
					t.Errorf("Diff[%s] = %s, want %s", id, got[id], change)
				}
			}
		})
	}
}

func TestDiffLimitChangesAreInvisible(t *testing.T) {
	a := Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}}
	b := Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2, MinW: 2, MaxW: 6}}
	if got := Diff(a, b); len(got) != 0 {
		t.Errorf("limit-only change should not be reported, got %v", got)
	}
}
