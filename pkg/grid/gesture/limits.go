package gesture

import "github.com/mveltman/gridlock/pkg/grid"

// Limits is the pixel-space resize envelope for one item.
type Limits struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// ResizeLimits converts an item's cell-space size constraints into pixel
// bounds for the given grid geometry. MaxW is clamped to the grid's column
// count first, so an item can never be offered more width than the grid has.
func ResizeLimits(it grid.Item, gridRect grid.Rect, rowHeight float64, cols int, gap float64) Limits {
	cw := CellWidth(cols, gridRect.Width, gap)

	minW := it.EffectiveMinW()
	maxW := min(it.EffectiveMaxW(), cols)
	minH := it.EffectiveMinH()
	maxH := it.EffectiveMaxH()

	return Limits{
		MinWidth:  cw*float64(minW) + gap*float64(minW-1),
		MaxWidth:  cw*float64(maxW) + gap*float64(maxW-1),
		MinHeight: rowHeight*float64(minH) + gap*float64(minH-1),
		MaxHeight: rowHeight*float64(maxH) + gap*float64(maxH-1),
	}
}

// clampPx clamps v into [lo, hi] in pixel space. A lower bound under one
// pixel is floored to one, so a degenerate limit can never collapse the
// candidate size to nothing.
func clampPx(v, lo, hi float64) float64 {
	if lo < 1 {
		lo = 1
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
