package engine

import "github.com/mveltman/gridlock/pkg/grid"

// FirstCollision returns the first layout item overlapping the candidate,
// in layout order. The layout entry sharing the candidate's ID is skipped,
// so an item placed back over its own cells reports no collision.
func (Default) FirstCollision(l grid.Layout, it grid.Item) (grid.Item, bool) {
	for _, other := range l {
		if other.Overlaps(it) {
			return other, true
		}
	}
	return grid.Item{}, false
}

// allCollisions returns every layout item overlapping it, in layout order.
func allCollisions(l grid.Layout, it grid.Item) []grid.Item {
	var out []grid.Item
	for _, other := range l {
		if other.Overlaps(it) {
			out = append(out, other)
		}
	}
	return out
}
