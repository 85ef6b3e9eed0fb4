package engine

import "github.com/mveltman/gridlock/pkg/grid"

// Engine is the layout-engine capability consumed by the gesture resolvers:
// gap-removing compaction, collision-cascading relocation, and the pairwise
// collision probe.
type Engine interface {
	// Compact removes gaps from the layout along the axis selected by mode.
	// It is idempotent and never corrects items that violate the column
	// bound; that is the resolvers' responsibility.
	Compact(l grid.Layout, mode string, cols int) grid.Layout

	// MoveElement relocates the item with the given ID to cell (x, y),
	// cascading displacement of any items it collides with. With
	// opts.PreventCollision set, a colliding move is reverted instead.
	MoveElement(l grid.Layout, id string, x, y int, opts MoveOptions) grid.Layout

	// FirstCollision returns the first item in the layout whose cell
	// rectangle overlaps it, excluding it itself.
	FirstCollision(l grid.Layout, it grid.Item) (grid.Item, bool)
}

// MoveOptions carries the placement flags for one MoveElement call.
type MoveOptions struct {
	IsUserAction     bool   // true when the move is the dragged item itself
	PreventCollision bool   // revert instead of displacing on collision
	EnableSwap       bool   // swap equal-sized items instead of displacing
	Mode             string // compaction mode steering the cascade axis
	Cols             int    // column bound of the grid
}

// Default is the standard engine implementation.
type Default struct{}

// New returns the default engine.
func New() Engine { return Default{} }

// Ensure Default implements Engine.
var _ Engine = Default{}
