package grid_test

import (
	"fmt"
	"sort"

	"github.com/mveltman/gridlock/pkg/grid"
)

func ExampleDiff() {
	before := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
		{ID: "c", X: 4, Y: 0, W: 2, H: 2},
	}
	after := grid.Layout{
		{ID: "a", X: 6, Y: 0, W: 2, H: 2}, // moved
		{ID: "b", X: 2, Y: 0, W: 4, H: 2}, // resized
		{ID: "c", X: 4, Y: 0, W: 2, H: 2}, // untouched
	}

	diff := grid.Diff(before, after)

	ids := make([]string, 0, len(diff))
	for id := range diff {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%s: %s\n", id, diff[id])
	}
	// Output:
	// a: move
	// b: resize
}
