package grid

// Change classifies how a single item differs between two layouts.
type Change string

// Change kinds reported by Diff.
const (
	ChangeMove       Change = "move"
	ChangeResize     Change = "resize"
	ChangeMoveResize Change = "moveresize"
)

// Diff compares two layouts and classifies the per-item deltas, keyed by item
// ID. Unchanged items have no entry. Items present in only one of the layouts
// are skipped entirely: this is a gesture-result diff, not a set difference.
//
// B is indexed by ID first, so the comparison runs in O(|A|+|B|).
func Diff(a, b Layout) map[string]Change {
	index := make(map[string]Item, len(b))
	for _, it := range b {
		index[it.ID] = it
	}

	out := make(map[string]Change)
	for _, before := range a {
		after, ok := index[before.ID]
		if !ok {
			continue
		}
		moved := before.X != after.X || before.Y != after.Y
		resized := before.W != after.W || before.H != after.H
		switch {
		case moved && resized:
			out[before.ID] = ChangeMoveResize
		case moved:
			out[before.ID] = ChangeMove
		case resized:
			out[before.ID] = ChangeResize
		}
	}
	return out
}
