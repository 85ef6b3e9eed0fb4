package gesture

import "github.com/mveltman/gridlock/pkg/grid"

// Gesture kinds.
const (
	KindDrag   = "drag"
	KindResize = "resize"
)

// ValidKinds is the set of supported gesture kinds.
var ValidKinds = map[string]bool{
	KindDrag:   true,
	KindResize: true,
}

// Dragging is the immutable input for one pointer-move computation: where the
// gesture started, where the pointer is now, and the pixel rectangles that
// anchor both to the grid's coordinate frame. ScrollDelta accumulates page
// scroll since pointer-down so the grid frame stays stable while the page
// moves underneath the pointer.
type Dragging struct {
	PointerDown grid.Point `json:"pointer_down" bson:"pointer_down"`
	Pointer     grid.Point `json:"pointer" bson:"pointer"`
	GridRect    grid.Rect  `json:"grid_rect" bson:"grid_rect"`
	ItemRect    grid.Rect  `json:"item_rect" bson:"item_rect"`
	ScrollDelta grid.Point `json:"scroll_delta,omitempty" bson:"scroll_delta,omitempty"`
}

// Result is the outcome of one resolved pointer-move step: the new
// cell-aligned layout, and the continuous pixel rectangle for the visual
// proxy that keeps tracking the pointer between cell snaps.
type Result struct {
	Layout grid.Layout    `json:"layout"`
	Proxy  grid.ProxyRect `json:"proxy"`
}
