package gesture

import (
	"math"
	"testing"

	"github.com/mveltman/gridlock/pkg/grid"
)

func TestResizeLimits(t *testing.T) {
	gridRect := grid.Rect{Left: 0, Top: 0, Width: testGridWidth, Height: 600}
	cw := CellWidth(testCols, testGridWidth, testGap)

	tests := []struct {
		name string
		item grid.Item
		want Limits
	}{
		{
			name: "defaults span one cell to the whole grid",
			item: grid.Item{ID: "a", W: 2, H: 2},
			want: Limits{
				MinWidth:  cw,
				MaxWidth:  testGridWidth, // 12 cells + 11 gaps is exactly the grid
				MinHeight: testRowHeight,
				MaxHeight: math.Inf(1), // effectively unbounded; checked separately
			},
		},
		{
			name: "explicit limits",
			item: grid.Item{ID: "a", W: 2, H: 2, MinW: 2, MaxW: 4, MinH: 2, MaxH: 3},
			want: Limits{
				MinWidth:  cw*2 + testGap,
				MaxWidth:  cw*4 + testGap*3,
				MinHeight: testRowHeight*2 + testGap,
				MaxHeight: testRowHeight*3 + testGap*2,
			},
		},
		{
			name: "max width clamps to column count",
			item: grid.Item{ID: "a", W: 2, H: 2, MaxW: 99},
			want: Limits{
				MinWidth:  cw,
				MaxWidth:  testGridWidth,
				MinHeight: testRowHeight,
				MaxHeight: math.Inf(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeLimits(tt.item, gridRect, testRowHeight, testCols, testGap)
			approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

			if !approx(got.MinWidth, tt.want.MinWidth) {
				t.Errorf("MinWidth = %g, want %g", got.MinWidth, tt.want.MinWidth)
			}
			if !approx(got.MaxWidth, tt.want.MaxWidth) {
				t.Errorf("MaxWidth = %g, want %g", got.MaxWidth, tt.want.MaxWidth)
			}
			if !approx(got.MinHeight, tt.want.MinHeight) {
				t.Errorf("MinHeight = %g, want %g", got.MinHeight, tt.want.MinHeight)
			}
			if math.IsInf(tt.want.MaxHeight, 1) {
				if got.MaxHeight < 1e6 {
					t.Errorf("MaxHeight = %g, want practically unbounded", got.MaxHeight)
				}
			} else if !approx(got.MaxHeight, tt.want.MaxHeight) {
				t.Errorf("MaxHeight = %g, want %g", got.MaxHeight, tt.want.MaxHeight)
			}
		})
	}
}

func TestClampPx(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{name: "inside", v: 50, lo: 10, hi: 100, want: 50},
		{name: "below", v: 5, lo: 10, hi: 100, want: 10},
		{name: "above", v: 500, lo: 10, hi: 100, want: 100},
		{name: "min floored at one pixel", v: 0.2, lo: 0, hi: 100, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPx(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clampPx(%g,%g,%g) = %g, want %g", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
