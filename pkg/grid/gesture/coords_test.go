package gesture

import (
	"math"
	"testing"

	"github.com/mveltman/gridlock/pkg/grid"
)

const (
	testCols      = 12
	testGridWidth = 1200.0
	testGap       = 10.0
	testRowHeight = 50.0
)

func TestCellWidth(t *testing.T) {
	// 12 columns, 11 gaps of 10px: (1200 - 110) / 12.
	got := CellWidth(testCols, testGridWidth, testGap)
	want := (testGridWidth - testGap*11) / 12
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("CellWidth = %g, want %g", got, want)
	}
}

// Round-trip property: converting a cell X to pixels and back is the
// identity for every column of the grid.
func TestScreenXRoundTrip(t *testing.T) {
	for x := 0; x < testCols; x++ {
		px := GridXToScreenX(x, testCols, testGridWidth, testGap)
		if got := ScreenXToGridX(px, testCols, testGridWidth, testGap); got != x {
			t.Errorf("round trip x=%d: pixel %g came back as %d", x, px, got)
		}
	}
}

func TestScreenYRoundTrip(t *testing.T) {
	for y := 0; y < 40; y++ {
		px := GridYToScreenY(y, testRowHeight, testGap)
		if got := ScreenYToGridY(px, testRowHeight, testGap); got != y {
			t.Errorf("round trip y=%d: pixel %g came back as %d", y, px, got)
		}
	}
}

func TestSpanRoundTrip(t *testing.T) {
	for w := 1; w <= testCols; w++ {
		px := GridWToScreenW(w, testCols, testGridWidth, testGap)
		if got := ScreenWToGridW(px, testCols, testGridWidth, testGap); got != w {
			t.Errorf("round trip w=%d: pixel %g came back as %d", w, px, got)
		}
	}
	for h := 1; h <= 30; h++ {
		px := GridHToScreenH(h, testRowHeight, testGap)
		if got := ScreenHToGridH(px, testRowHeight, testGap); got != h {
			t.Errorf("round trip h=%d: pixel %g came back as %d", h, px, got)
		}
	}
}

// The rounding rule is round-half-away-from-zero: the snap threshold sits
// exactly halfway into the next column-plus-gap stride. These values pin that
// behavior against accidental truncation or banker's rounding.
func TestRoundingThresholds(t *testing.T) {
	unit := testRowHeight + testGap // 60px per row stride

	tests := []struct {
		name   string
		pixelY float64
		want   int
	}{
		{name: "just below half stays", pixelY: unit/2 - 0.01, want: 0},
		{name: "exactly half snaps up", pixelY: unit / 2, want: 1},
		{name: "just above half snaps up", pixelY: unit/2 + 0.01, want: 1},
		{name: "one stride exact", pixelY: unit, want: 1},
		{name: "negative half snaps away from zero", pixelY: -unit / 2, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreenYToGridY(tt.pixelY, testRowHeight, testGap); got != tt.want {
				t.Errorf("ScreenYToGridY(%g) = %d, want %d", tt.pixelY, got, tt.want)
			}
		})
	}
}

func TestScreenXToGridXSingleColumn(t *testing.T) {
	// A one-column grid has no column stride to invert; everything is
	// column zero.
	if got := ScreenXToGridX(500, 1, 800, 10); got != 0 {
		t.Errorf("single-column grid x = %d, want 0", got)
	}
}

func TestRowHeightForFit(t *testing.T) {
	l := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 2, W: 2, H: 2},
	}
	// 4 rows, 3 gaps: (600 - 30) / 4.
	got := RowHeightForFit(l, 600, 10)
	if math.Abs(got-142.5) > 1e-9 {
		t.Errorf("RowHeightForFit = %g, want 142.5", got)
	}
}

func TestResolveRowHeight(t *testing.T) {
	fixed := grid.Config{Cols: 12, RowHeight: 50, Gap: 10}
	if got := resolveRowHeight(fixed); got != 50 {
		t.Errorf("fixed row height = %g, want 50", got)
	}

	auto := grid.Config{
		Cols:       12,
		RowHeight:  grid.RowHeightAuto,
		Gap:        10,
		GridHeight: 600,
		Layout:     grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 4}},
	}
	// 4 rows: (600 - 30) / 4.
	if got := resolveRowHeight(auto); math.Abs(got-142.5) > 1e-9 {
		t.Errorf("auto row height = %g, want 142.5", got)
	}
}
