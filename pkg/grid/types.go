package grid

import (
	"math"

	"github.com/google/uuid"

	"github.com/mveltman/gridlock/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Compaction modes.
const (
	CompactVertical   = "vertical"
	CompactHorizontal = "horizontal"
	CompactNone       = "none"
)

// ValidCompactModes is the set of supported compaction modes.
var ValidCompactModes = map[string]bool{
	CompactVertical:   true,
	CompactHorizontal: true,
	CompactNone:       true,
}

// RowHeightAuto is the sentinel row height meaning "derive from the available
// grid height and the tallest row of the current layout".
const RowHeightAuto = -1

// =============================================================================
// Item - Grid-Positioned Rectangle
// =============================================================================

// Item is a rectangular element positioned on the grid in cell coordinates.
// X and Y are the top-left cell, W and H the span in cells. Size limits are
// configuration rather than placement state: MinW and MinH default to 1 when
// zero, MaxW and MaxH are unbounded when zero.
type Item struct {
	ID   string `json:"id" bson:"id"`
	X    int    `json:"x" bson:"x"`
	Y    int    `json:"y" bson:"y"`
	W    int    `json:"w" bson:"w"`
	H    int    `json:"h" bson:"h"`
	MinW int    `json:"min_w,omitempty" bson:"min_w,omitempty"`
	MinH int    `json:"min_h,omitempty" bson:"min_h,omitempty"`
	MaxW int    `json:"max_w,omitempty" bson:"max_w,omitempty"`
	MaxH int    `json:"max_h,omitempty" bson:"max_h,omitempty"`
}

// NewItemID returns a fresh unique item identifier.
func NewItemID() string { return uuid.NewString() }

// EffectiveMinW returns the minimum width, floored at one cell.
func (it Item) EffectiveMinW() int { return max(1, it.MinW) }

// EffectiveMinH returns the minimum height, floored at one cell.
func (it Item) EffectiveMinH() int { return max(1, it.MinH) }

// EffectiveMaxW returns the maximum width, or a practically unbounded value
// when no limit is set.
func (it Item) EffectiveMaxW() int {
	if it.MaxW <= 0 {
		return math.MaxInt32
	}
	return it.MaxW
}

// EffectiveMaxH returns the maximum height, or a practically unbounded value
// when no limit is set.
func (it Item) EffectiveMaxH() int {
	if it.MaxH <= 0 {
		return math.MaxInt32
	}
	return it.MaxH
}

// SamePlacement reports whether two items occupy the same grid cells under the
// same identity. Size limits are deliberately excluded: they are configuration,
// not placement, so a limit change alone never signals a layout change.
func (it Item) SamePlacement(other Item) bool {
	return it.ID == other.ID &&
		it.X == other.X && it.Y == other.Y &&
		it.W == other.W && it.H == other.H
}

// Overlaps reports whether the cell rectangles of two items intersect.
// An item never overlaps itself.
func (it Item) Overlaps(other Item) bool {
	if it.ID == other.ID {
		return false
	}
	if it.X+it.W <= other.X || other.X+other.W <= it.X {
		return false
	}
	if it.Y+it.H <= other.Y || other.Y+other.H <= it.Y {
		return false
	}
	return true
}

// =============================================================================
// Layout - Ordered Item Sequence
// =============================================================================

// Layout is an ordered sequence of items. Order carries no placement meaning
// (items are keyed by ID) but is preserved across operations for stable
// diffing and rendering.
type Layout []Item

// Clone returns a deep copy of the layout. Resolvers replace layouts
// wholesale rather than mutating in place, so callers can always compare a
// before and after value.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Find returns a pointer to the item with the given ID, or nil.
// The pointer aliases the layout's backing array.
func (l Layout) Find(id string) *Item {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// MustFind returns the item with the given ID and panics when it is absent.
// A missing ID during a gesture is a caller contract violation; proceeding
// would corrupt the layout, so this fails fast.
func (l Layout) MustFind(id string) *Item {
	if it := l.Find(id); it != nil {
		return it
	}
	panic("grid: item " + id + " not in layout")
}

// Replace returns a copy of the layout with the item carrying it.ID swapped
// for it, preserving order.
func (l Layout) Replace(it Item) Layout {
	out := l.Clone()
	for i := range out {
		if out[i].ID == it.ID {
			out[i] = it
			break
		}
	}
	return out
}

// Rows returns the bottom-most occupied row extent, max(y+h) over all items,
// floored at zero.
func (l Layout) Rows() int {
	rows := 0
	for _, it := range l {
		if bottom := it.Y + it.H; bottom > rows {
			rows = bottom
		}
	}
	return rows
}

// HasOverlap reports whether any pair of items overlaps in cell space.
func (l Layout) HasOverlap() bool {
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			if l[i].Overlaps(l[j]) {
				return true
			}
		}
	}
	return false
}

// =============================================================================
// Config - Grid Parameters
// =============================================================================

// Config holds the grid parameters for one grid instance together with its
// current layout. The zero value is not usable; Validate reports what is
// missing. RowHeight may be RowHeightAuto, in which case GridHeight must be
// set so the row height can be derived from the layout's tallest extent.
type Config struct {
	Cols             int     `json:"cols" bson:"cols"`
	RowHeight        float64 `json:"row_height" bson:"row_height"`
	Gap              float64 `json:"gap" bson:"gap"`
	GridHeight       float64 `json:"grid_height,omitempty" bson:"grid_height,omitempty"`
	CompactMode      string  `json:"compact_mode,omitempty" bson:"compact_mode,omitempty"`
	PreventCollision bool    `json:"prevent_collision,omitempty" bson:"prevent_collision,omitempty"`
	EnableSwap       bool    `json:"enable_swap,omitempty" bson:"enable_swap,omitempty"`
	Layout           Layout  `json:"layout" bson:"layout"`
}

// Mode returns the configured compaction mode, defaulting to vertical.
func (c Config) Mode() string {
	if c.CompactMode == "" {
		return CompactVertical
	}
	return c.CompactMode
}

// Validate checks the config for degenerate geometry that would produce
// non-finite results in the coordinate transforms. The pure resolvers do not
// guard against zero divisions themselves; every outer surface validates
// first.
func (c Config) Validate() error {
	if c.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "cols must be >= 1, got %d", c.Cols)
	}
	if c.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "gap must be >= 0, got %g", c.Gap)
	}
	if c.RowHeight == RowHeightAuto {
		if c.GridHeight <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "grid_height is required when row_height is auto")
		}
	} else if c.RowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "row_height must be > 0 or auto, got %g", c.RowHeight)
	}
	if !ValidCompactModes[c.Mode()] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid compact_mode: %q", c.CompactMode)
	}
	for _, it := range c.Layout {
		if it.ID == "" {
			return errors.New(errors.ErrCodeInvalidLayout, "item without id at (%d,%d)", it.X, it.Y)
		}
		if it.W < 1 || it.H < 1 {
			return errors.New(errors.ErrCodeInvalidLayout, "item %s has empty span %dx%d", it.ID, it.W, it.H)
		}
		if it.X < 0 || it.Y < 0 {
			return errors.New(errors.ErrCodeInvalidLayout, "item %s has negative position (%d,%d)", it.ID, it.X, it.Y)
		}
		if it.X+it.W > c.Cols {
			return errors.New(errors.ErrCodeInvalidLayout, "item %s exceeds %d columns", it.ID, c.Cols)
		}
	}
	return nil
}

// =============================================================================
// Pixel-Space Geometry
// =============================================================================

// Point is a pointer position in pixel coordinates.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Rect is a client rectangle in pixel coordinates.
type Rect struct {
	Left   float64 `json:"left" bson:"left"`
	Top    float64 `json:"top" bson:"top"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// ProxyRect is the continuous pixel-space rectangle of the visual gesture
// proxy. It tracks the pointer smoothly while the underlying layout stays
// cell-aligned.
type ProxyRect struct {
	Top    float64 `json:"top" bson:"top"`
	Left   float64 `json:"left" bson:"left"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}
