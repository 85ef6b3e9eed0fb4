package gesture_test

import (
	"fmt"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

func ExampleResolveDrag() {
	cfg := grid.Config{
		Cols:      12,
		RowHeight: 50,
		Gap:       10,
		Layout: grid.Layout{
			{ID: "a", X: 0, Y: 0, W: 2, H: 2},
			{ID: "b", X: 2, Y: 0, W: 2, H: 2},
		},
	}

	// Pointer went down on a's top-left corner and now sits over column 6.
	res := gesture.ResolveDrag(engine.New(), cfg, "a", gesture.Dragging{
		PointerDown: grid.Point{X: 0, Y: 0},
		Pointer:     grid.Point{X: 605, Y: 0},
		GridRect:    grid.Rect{Left: 0, Top: 0, Width: 1200, Height: 600},
		ItemRect:    grid.Rect{Left: 0, Top: 0, Width: 191, Height: 110},
	})

	it := res.Layout.Find("a")
	fmt.Printf("a moved to (%d,%d)\n", it.X, it.Y)
	// Output:
	// a moved to (6,0)
}

func ExampleResizeLimits() {
	it := grid.Item{ID: "panel", W: 4, H: 2, MinW: 2, MaxW: 6, MinH: 1, MaxH: 3}
	gridRect := grid.Rect{Width: 1200}

	lim := gesture.ResizeLimits(it, gridRect, 50, 12, 10)
	fmt.Printf("width  %.1f .. %.1f\n", lim.MinWidth, lim.MaxWidth)
	fmt.Printf("height %.1f .. %.1f\n", lim.MinHeight, lim.MaxHeight)
	// Output:
	// width  191.7 .. 595.0
	// height 50.0 .. 170.0
}
