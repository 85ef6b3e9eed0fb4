package gesture

import (
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
)

// ResolveResize converts the current pointer position of a resize gesture
// into new cell dimensions for the item with the given ID, applies pixel and
// cell-space limits, runs the collision shrink loop when the config prevents
// collisions, and delegates final compaction to the engine.
//
// Width yields to position: if the clamped span would cross the column bound,
// the width is cut back, never the x coordinate, since position is not being
// dragged during a resize.
//
// Panics if id is not present in cfg.Layout.
func ResolveResize(eng engine.Engine, cfg grid.Config, id string, d Dragging) Result {
	it := cfg.Layout.MustFind(id)

	// Offset from pointer-down to the far edge of the element, so the
	// bottom-right corner tracks the pointer.
	offX := d.ItemRect.Width - (d.PointerDown.X - d.ItemRect.Left)
	offY := d.ItemRect.Height - (d.PointerDown.Y - d.ItemRect.Top)

	pxW := d.Pointer.X + offX - (d.ItemRect.Left + d.ScrollDelta.X)
	pxH := d.Pointer.Y + offY - (d.ItemRect.Top + d.ScrollDelta.Y)

	rowHeight := resolveRowHeight(cfg)
	lim := ResizeLimits(*it, d.GridRect, rowHeight, cfg.Cols, cfg.Gap)
	pxW = clampPx(pxW, lim.MinWidth, lim.MaxWidth)
	pxH = clampPx(pxH, lim.MinHeight, lim.MaxHeight)

	w := ScreenWToGridW(pxW, cfg.Cols, d.GridRect.Width, cfg.Gap)
	h := ScreenHToGridH(pxH, rowHeight, cfg.Gap)
	w = clampCells(w, it.EffectiveMinW(), it.EffectiveMaxW())
	h = clampCells(h, it.EffectiveMinH(), it.EffectiveMaxH())
	if it.X+w > cfg.Cols {
		w = max(1, cfg.Cols-it.X)
	}

	cand := *it
	cand.W, cand.H = w, h
	if cfg.PreventCollision {
		cand = shrinkToFit(eng, cfg.Layout, cand)
	}

	l := cfg.Layout.Replace(cand)
	l = eng.Compact(l, cfg.Mode(), cfg.Cols)

	// The proxy keeps the element's static origin: a resize moves the far
	// edge, not the top-left corner.
	return Result{
		Layout: l,
		Proxy: grid.ProxyRect{
			Top:    d.ItemRect.Top,
			Left:   d.ItemRect.Left,
			Width:  pxW,
			Height: pxH,
		},
	}
}

// shrinkDim tracks which dimension the shrink loop reduced last.
type shrinkDim int

const (
	dimNone shrinkDim = iota
	dimW
	dimH
)

// shrinkToFit shrinks the candidate until it no longer collides with any
// other layout item, alternating dimensions strictly between steps. A
// dimension already at its one-cell floor leaves the rotation. Once the
// collision resolves, the dimension that was not shrunk last is restored to
// its pre-shrink maximum and re-shrunk alone, so the result is not
// over-shrunk in both dimensions when one would have sufficed.
func shrinkToFit(eng engine.Engine, l grid.Layout, cand grid.Item) grid.Item {
	maxW, maxH := cand.W, cand.H
	last := dimNone

	for {
		if _, hit := eng.FirstCollision(l, cand); !hit {
			break
		}
		switch {
		case cand.W <= 1 && cand.H <= 1:
			// Nothing left to shrink; 1x1 at the item's own anchor
			// cannot collide in a well-formed layout.
			return cand
		case cand.W <= 1:
			cand.H--
			last = dimH
		case cand.H <= 1:
			cand.W--
			last = dimW
		case last == dimW:
			cand.H--
			last = dimH
		default:
			cand.W--
			last = dimW
		}
	}

	switch last {
	case dimW:
		cand.H = maxH
		for cand.H > 1 {
			if _, hit := eng.FirstCollision(l, cand); !hit {
				break
			}
			cand.H--
		}
	case dimH:
		cand.W = maxW
		for cand.W > 1 {
			if _, hit := eng.FirstCollision(l, cand); !hit {
				break
			}
			cand.W--
		}
	}
	return cand
}

// clampCells clamps a cell span into [lo, hi].
func clampCells(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
