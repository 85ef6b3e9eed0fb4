package gesture

import (
	"math"

	"github.com/mveltman/gridlock/pkg/grid"
)

// All rounding in this file is round-half-away-from-zero (math.Round). The
// rounding rule fixes the exact pixel threshold at which a drag snaps to the
// next cell, so it is pinned by tests and must not drift to truncation or
// banker's rounding.

// CellWidth returns the pixel width of a single column for a grid of the
// given total width: the gaps are taken off the top and the rest split
// evenly.
func CellWidth(cols int, gridWidth, gap float64) float64 {
	return (gridWidth - gap*float64(cols-1)) / float64(cols)
}

// colUnit is the pixel width of one column-plus-gap stride. Algebraically
// this equals CellWidth+gap; it is derived the long way round to mirror the
// forward formula it inverts.
func colUnit(cols int, gridWidth, gap float64) float64 {
	return (gridWidth - CellWidth(cols, gridWidth, gap)) / float64(cols-1)
}

// RowHeightForFit derives the row height that makes the layout's tallest
// extent exactly fill gridHeight, gaps included. A layout with no rows makes
// this a division by zero; callers with empty layouts must not use the auto
// row height.
func RowHeightForFit(l grid.Layout, gridHeight, gap float64) float64 {
	rows := l.Rows()
	return (gridHeight - gap*float64(rows-1)) / float64(rows)
}

// ScreenXToGridX converts a grid-relative pixel X into a cell column.
func ScreenXToGridX(pixelX float64, cols int, gridWidth, gap float64) int {
	if cols <= 1 {
		return 0
	}
	return int(math.Round(pixelX / colUnit(cols, gridWidth, gap)))
}

// ScreenYToGridY converts a grid-relative pixel Y into a cell row.
func ScreenYToGridY(pixelY, rowHeight, gap float64) int {
	return int(math.Round(pixelY / (rowHeight + gap)))
}

// ScreenWToGridW converts a pixel width into a cell span. A span of exactly
// one cell occupies CellWidth, not CellWidth+gap, hence the trailing +1.
func ScreenWToGridW(pixelW float64, cols int, gridWidth, gap float64) int {
	cw := CellWidth(cols, gridWidth, gap)
	return int(math.Round((pixelW-cw)/(cw+gap))) + 1
}

// ScreenHToGridH converts a pixel height into a cell span.
func ScreenHToGridH(pixelH, rowHeight, gap float64) int {
	return int(math.Round((pixelH-rowHeight)/(rowHeight+gap))) + 1
}

// GridXToScreenX converts a cell column to its grid-relative pixel X.
func GridXToScreenX(x, cols int, gridWidth, gap float64) float64 {
	return float64(x) * (CellWidth(cols, gridWidth, gap) + gap)
}

// GridYToScreenY converts a cell row to its grid-relative pixel Y.
func GridYToScreenY(y int, rowHeight, gap float64) float64 {
	return float64(y) * (rowHeight + gap)
}

// GridWToScreenW converts a cell span to its pixel width.
func GridWToScreenW(w, cols int, gridWidth, gap float64) float64 {
	return CellWidth(cols, gridWidth, gap)*float64(w) + gap*float64(w-1)
}

// GridHToScreenH converts a cell span to its pixel height.
func GridHToScreenH(h int, rowHeight, gap float64) float64 {
	return rowHeight*float64(h) + gap*float64(h-1)
}

// resolveRowHeight returns the config's fixed row height, or derives it from
// the current layout when the config asks for fit-to-content.
func resolveRowHeight(cfg grid.Config) float64 {
	if cfg.RowHeight == grid.RowHeightAuto {
		return RowHeightForFit(cfg.Layout, cfg.GridHeight, cfg.Gap)
	}
	return cfg.RowHeight
}
