package render

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

// Item fill colors, cycled by layout order.
var itemPalette = []string{
	"#4c9aff", "#57d9a3", "#ffc400", "#ff8f73", "#998dd9", "#79e2f2",
}

// SVG renders the grid as a pixel-accurate SVG picture. Item rectangles are
// placed with the forward cell→pixel transforms, so the picture shows exactly
// the geometry the resolvers compute against.
func SVG(cfg grid.Config, opts Options) []byte {
	opts = opts.withDefaults(cfg)

	rows := max(cfg.Layout.Rows(), 1)
	width := int(math.Ceil(opts.GridWidth))
	height := int(math.Ceil(gesture.GridHToScreenH(rows, opts.RowHeight, cfg.Gap)))

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f4f5f7")

	// Cell outlines first, so items draw over them.
	cellW := gesture.CellWidth(cfg.Cols, opts.GridWidth, cfg.Gap)
	for y := 0; y < rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			canvas.Rect(
				px(gesture.GridXToScreenX(x, cfg.Cols, opts.GridWidth, cfg.Gap)),
				px(gesture.GridYToScreenY(y, opts.RowHeight, cfg.Gap)),
				px(cellW),
				px(opts.RowHeight),
				"fill:none;stroke:#dfe1e6;stroke-width:1",
			)
		}
	}

	for i, it := range cfg.Layout {
		fill := itemPalette[i%len(itemPalette)]
		left := gesture.GridXToScreenX(it.X, cfg.Cols, opts.GridWidth, cfg.Gap)
		top := gesture.GridYToScreenY(it.Y, opts.RowHeight, cfg.Gap)
		w := gesture.GridWToScreenW(it.W, cfg.Cols, opts.GridWidth, cfg.Gap)
		h := gesture.GridHToScreenH(it.H, opts.RowHeight, cfg.Gap)

		canvas.Rect(px(left), px(top), px(w), px(h),
			fmt.Sprintf("fill:%s;stroke:#172b4d;stroke-width:1;fill-opacity:0.85", fill))

		if opts.ShowIDs {
			canvas.Text(px(left+w/2), px(top+h/2), it.ID,
				"text-anchor:middle;dominant-baseline:central;font-family:sans-serif;font-size:13px;fill:#172b4d")
		}
	}

	canvas.End()
	return buf.Bytes()
}

// px rounds a pixel coordinate for SVG output.
func px(v float64) int { return int(math.Round(v)) }
