package render

import (
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

// Default pixel geometry for rendered output.
const (
	DefaultGridWidth = 800.0
	DefaultRowHeight = 40.0
)

// Options configures rendering.
type Options struct {
	// GridWidth is the pixel width of the rendered grid. Defaults to
	// DefaultGridWidth.
	GridWidth float64

	// RowHeight overrides the config's row height for rendering. Zero
	// means use the config's value, falling back to DefaultRowHeight when
	// the config uses the auto sentinel and has no grid height.
	RowHeight float64

	// ShowIDs draws item IDs into the rectangles.
	ShowIDs bool

	// Scale multiplies the raster size for PNG output. Zero means 1.
	Scale float64
}

// withDefaults resolves option defaults against a config.
func (o Options) withDefaults(cfg grid.Config) Options {
	if o.GridWidth <= 0 {
		o.GridWidth = DefaultGridWidth
	}
	if o.RowHeight <= 0 {
		switch {
		case cfg.RowHeight > 0:
			o.RowHeight = cfg.RowHeight
		case cfg.RowHeight == grid.RowHeightAuto && cfg.GridHeight > 0 && cfg.Layout.Rows() > 0:
			o.RowHeight = gesture.RowHeightForFit(cfg.Layout, cfg.GridHeight, cfg.Gap)
		default:
			o.RowHeight = DefaultRowHeight
		}
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}
