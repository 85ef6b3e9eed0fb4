package gesture

import (
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
)

// ResolveDrag converts the current pointer position of a drag gesture into a
// candidate cell position for the item with the given ID, delegates
// displacement and compaction to the engine, and returns the new layout plus
// the continuous proxy rectangle.
//
// The candidate is clamped into the grid before the engine sees it: x,y are
// floored at zero and x is pulled back so the item's existing width still
// fits the column bound. The engine performs no bounds correction itself.
//
// Panics if id is not present in cfg.Layout.
func ResolveDrag(eng engine.Engine, cfg grid.Config, id string, d Dragging) Result {
	it := cfg.Layout.MustFind(id)

	// Pointer offset inside the element at pointer-down, so the element
	// does not jump to put its corner under the pointer.
	offX := d.PointerDown.X - d.ItemRect.Left
	offY := d.PointerDown.Y - d.ItemRect.Top

	// Grid-relative position of the element's top-left corner.
	left := d.Pointer.X - d.GridRect.Left - d.ScrollDelta.X - offX
	top := d.Pointer.Y - d.GridRect.Top - d.ScrollDelta.Y - offY

	rowHeight := resolveRowHeight(cfg)

	x := ScreenXToGridX(left, cfg.Cols, d.GridRect.Width, cfg.Gap)
	y := ScreenYToGridY(top, rowHeight, cfg.Gap)
	x = max(x, 0)
	y = max(y, 0)
	if x+it.W > cfg.Cols {
		x = max(0, cfg.Cols-it.W)
	}

	l := eng.MoveElement(cfg.Layout, id, x, y, engine.MoveOptions{
		IsUserAction:     true,
		PreventCollision: cfg.PreventCollision,
		EnableSwap:       cfg.EnableSwap,
		Mode:             cfg.Mode(),
		Cols:             cfg.Cols,
	})
	l = eng.Compact(l, cfg.Mode(), cfg.Cols)

	return Result{
		Layout: l,
		Proxy: grid.ProxyRect{
			Top:    top,
			Left:   left,
			Width:  d.ItemRect.Width,
			Height: d.ItemRect.Height,
		},
	}
}
