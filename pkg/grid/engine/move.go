package engine

import (
	"slices"

	"github.com/mveltman/gridlock/pkg/grid"
)

// MoveElement relocates the item with the given ID to (x, y) and cascades
// displacement through any items the move collides with. The cascade never
// revisits an item it already moved, which bounds the recursion.
//
// With opts.PreventCollision set and the target cells occupied, the move is
// reverted and the input layout returned unchanged. With opts.EnableSwap set,
// a user-initiated move onto an equal-sized item swaps the two instead of
// displacing.
func (e Default) MoveElement(l grid.Layout, id string, x, y int, opts MoveOptions) grid.Layout {
	moved := map[string]bool{id: true}
	return e.move(l, id, x, y, opts, moved)
}

// move is the recursive worker behind MoveElement. The moved set is shared
// across the whole cascade.
func (e Default) move(l grid.Layout, id string, x, y int, opts MoveOptions, moved map[string]bool) grid.Layout {
	out := l.Clone()
	it := out.MustFind(id)
	oldX, oldY := it.X, it.Y
	it.X, it.Y = x, y

	collisions := allCollisions(out, *it)
	if opts.PreventCollision && len(collisions) > 0 {
		it.X, it.Y = oldX, oldY
		return out
	}

	// Process nearest colliders first so the cascade pushes away from the
	// direction of travel.
	sortCollisions(collisions, opts.Mode, y < oldY || (y == oldY && x < oldX))

	for _, c := range collisions {
		if moved[c.ID] {
			continue
		}
		// An earlier displacement may already have resolved this pair.
		cur := out.Find(c.ID)
		if cur == nil || !cur.Overlaps(*it) {
			continue
		}

		if opts.EnableSwap && opts.IsUserAction && cur.W == it.W && cur.H == it.H {
			cur.X, cur.Y = oldX, oldY
			moved[cur.ID] = true
			continue
		}

		moved[cur.ID] = true
		out = e.moveAway(out, cur.ID, *it, opts, moved)
		it = out.MustFind(id)
	}
	return out
}

// moveAway relocates a displaced item out of the mover's footprint. On a
// user-initiated move the slot just before the mover is tried first, so items
// give way in both directions; otherwise the item is pushed one cell past the
// mover along the compaction axis.
func (e Default) moveAway(l grid.Layout, id string, mover grid.Item, opts MoveOptions, moved map[string]bool) grid.Layout {
	it := l.MustFind(id)
	inner := opts
	inner.IsUserAction = false
	inner.PreventCollision = false

	if opts.IsUserAction {
		probe := *it
		if opts.Mode == grid.CompactHorizontal {
			probe.X = max(mover.X-it.W, 0)
		} else {
			probe.Y = max(mover.Y-it.H, 0)
		}
		if _, hit := e.FirstCollision(l, probe); !hit {
			return e.move(l, id, probe.X, probe.Y, inner, moved)
		}
	}

	if opts.Mode == grid.CompactHorizontal {
		return e.move(l, id, it.X+1, it.Y, inner, moved)
	}
	return e.move(l, id, it.X, it.Y+1, inner, moved)
}

// sortCollisions orders colliders by distance along the cascade axis,
// nearest first relative to the direction of travel.
func sortCollisions(cs []grid.Item, mode string, towardsOrigin bool) {
	slices.SortStableFunc(cs, func(a, b grid.Item) int {
		var d int
		if mode == grid.CompactHorizontal {
			d = a.X - b.X
		} else {
			d = a.Y - b.Y
		}
		if towardsOrigin {
			return -d
		}
		return d
	})
}
