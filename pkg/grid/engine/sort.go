package engine

import (
	"slices"

	"github.com/mveltman/gridlock/pkg/grid"
)

// sortedForMode returns the layout's items ordered for deterministic cascade
// and compaction: row-major (top-left first) for vertical compaction,
// column-major for horizontal.
func sortedForMode(l grid.Layout, mode string) []grid.Item {
	out := make([]grid.Item, len(l))
	copy(out, l)
	if mode == grid.CompactHorizontal {
		slices.SortStableFunc(out, func(a, b grid.Item) int {
			if a.X != b.X {
				return a.X - b.X
			}
			return a.Y - b.Y
		})
		return out
	}
	slices.SortStableFunc(out, func(a, b grid.Item) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
