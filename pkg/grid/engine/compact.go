package engine

import "github.com/mveltman/gridlock/pkg/grid"

// Compact removes gaps by sliding each item as far up (vertical) or left
// (horizontal) as it can go without colliding with an already-placed item,
// then resolving any remaining overlap by moving past the collider. Items are
// processed in reading order for the chosen axis, which makes the operation
// deterministic and idempotent. Mode none returns an unchanged copy.
//
// Column-bound violations are passed through untouched; bounds clamping
// happens in the resolvers before the engine ever sees a request.
func (e Default) Compact(l grid.Layout, mode string, cols int) grid.Layout {
	if mode == grid.CompactNone || mode == "" {
		return l.Clone()
	}

	out := l.Clone()
	placed := make(grid.Layout, 0, len(l))

	for _, it := range sortedForMode(l, mode) {
		if mode == grid.CompactHorizontal {
			it = compactItemHorizontal(placed, it)
		} else {
			it = compactItemVertical(placed, it)
		}
		placed = append(placed, it)
		out = out.Replace(it)
	}
	return out
}

// compactItemVertical slides it upward against the items placed so far.
func compactItemVertical(placed grid.Layout, it grid.Item) grid.Item {
	for it.Y > 0 {
		probe := it
		probe.Y--
		if _, hit := (Default{}).FirstCollision(placed, probe); hit {
			break
		}
		it = probe
	}
	// Still overlapping something placed earlier: drop below it.
	for {
		c, hit := (Default{}).FirstCollision(placed, it)
		if !hit {
			return it
		}
		it.Y = c.Y + c.H
	}
}

// compactItemHorizontal slides it leftward against the items placed so far.
func compactItemHorizontal(placed grid.Layout, it grid.Item) grid.Item {
	for it.X > 0 {
		probe := it
		probe.X--
		if _, hit := (Default{}).FirstCollision(placed, probe); hit {
			break
		}
		it = probe
	}
	for {
		c, hit := (Default{}).FirstCollision(placed, it)
		if !hit {
			return it
		}
		it.X = c.X + c.W
	}
}
