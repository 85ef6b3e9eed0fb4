package gesture

import (
	"testing"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
)

// recordingEngine wraps the default engine and records the calls made by the
// resolvers, so delegation order and arguments can be asserted.
type recordingEngine struct {
	inner engine.Engine
	calls []string
	moves []engine.MoveOptions
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{inner: engine.New()}
}

func (r *recordingEngine) Compact(l grid.Layout, mode string, cols int) grid.Layout {
	r.calls = append(r.calls, "compact:"+mode)
	return r.inner.Compact(l, mode, cols)
}

func (r *recordingEngine) MoveElement(l grid.Layout, id string, x, y int, opts engine.MoveOptions) grid.Layout {
	r.calls = append(r.calls, "move:"+id)
	r.moves = append(r.moves, opts)
	return r.inner.MoveElement(l, id, x, y, opts)
}

func (r *recordingEngine) FirstCollision(l grid.Layout, it grid.Item) (grid.Item, bool) {
	return r.inner.FirstCollision(l, it)
}

func testConfig(layout grid.Layout) grid.Config {
	return grid.Config{
		Cols:      testCols,
		RowHeight: testRowHeight,
		Gap:       testGap,
		Layout:    layout,
	}
}

// dragInput builds a gesture whose grid-relative element position resolves to
// exactly (left, top): the pointer went down on the element's top-left corner
// and the grid frame sits at the viewport origin.
func dragInput(left, top float64, itemRect grid.Rect) Dragging {
	return Dragging{
		PointerDown: grid.Point{X: itemRect.Left, Y: itemRect.Top},
		Pointer:     grid.Point{X: left, Y: top},
		GridRect:    grid.Rect{Left: 0, Top: 0, Width: testGridWidth, Height: 600},
		ItemRect:    itemRect,
	}
}

// Pinned scenario: cols=12, gap=10, rowHeight=50, grid width 1200. A 2x2 item
// dragged to grid-relative pixel (150, 0) lands in column 1, because
// 150 / colUnit ≈ 1.49 rounds to 1.
func TestResolveDragSnapsToColumn(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	d := dragInput(150, 0, grid.Rect{Left: 0, Top: 0, Width: 190, Height: 110})

	res := ResolveDrag(engine.New(), cfg, "a", d)

	it := res.Layout.Find("a")
	if it.X != 1 || it.Y != 0 {
		t.Errorf("item a at (%d,%d), want (1,0)", it.X, it.Y)
	}
}

func TestResolveDragProxyTracksPointer(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	itemRect := grid.Rect{Left: 0, Top: 0, Width: 190, Height: 110}
	d := dragInput(150, 37, itemRect)

	res := ResolveDrag(engine.New(), cfg, "a", d)

	// The proxy is the continuous grid-relative position, not cell-snapped,
	// with the element's pixel size passed through unmodified.
	if res.Proxy.Left != 150 || res.Proxy.Top != 37 {
		t.Errorf("proxy at (%g,%g), want (150,37)", res.Proxy.Left, res.Proxy.Top)
	}
	if res.Proxy.Width != itemRect.Width || res.Proxy.Height != itemRect.Height {
		t.Errorf("proxy size (%g,%g), want element size (%g,%g)",
			res.Proxy.Width, res.Proxy.Height, itemRect.Width, itemRect.Height)
	}
}

func TestResolveDragHonorsPointerOffset(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	itemRect := grid.Rect{Left: 100, Top: 0, Width: 190, Height: 110}

	// Pointer went down 40px into the element; dragging the pointer to
	// x=190 puts the element's left edge at 150.
	d := Dragging{
		PointerDown: grid.Point{X: 140, Y: 0},
		Pointer:     grid.Point{X: 190, Y: 0},
		GridRect:    grid.Rect{Left: 0, Top: 0, Width: testGridWidth, Height: 600},
		ItemRect:    itemRect,
	}

	res := ResolveDrag(engine.New(), cfg, "a", d)
	if res.Proxy.Left != 150 {
		t.Errorf("proxy left = %g, want 150", res.Proxy.Left)
	}
	if it := res.Layout.Find("a"); it.X != 1 {
		t.Errorf("item a x = %d, want 1", it.X)
	}
}

func TestResolveDragScrollDelta(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	cfg.CompactMode = grid.CompactNone // keep the dropped row observable
	itemRect := grid.Rect{Left: 0, Top: 0, Width: 190, Height: 110}

	// The page scrolled 60px down mid-gesture; the grid-relative position
	// must subtract the accumulated delta.
	d := dragInput(0, 180, itemRect)
	d.ScrollDelta = grid.Point{X: 0, Y: 60}

	res := ResolveDrag(engine.New(), cfg, "a", d)
	if res.Proxy.Top != 120 {
		t.Errorf("proxy top = %g, want 120", res.Proxy.Top)
	}
	// 120px / 60px-per-row = row 2.
	if it := res.Layout.Find("a"); it.Y != 2 {
		t.Errorf("item a y = %d, want 2", it.Y)
	}
}

func TestResolveDragClampsToColumnBound(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 4, H: 2}})
	d := dragInput(testGridWidth, 0, grid.Rect{Left: 0, Top: 0, Width: 390, Height: 110})

	res := ResolveDrag(engine.New(), cfg, "a", d)

	it := res.Layout.Find("a")
	if it.X+it.W > cfg.Cols {
		t.Errorf("item exceeds column bound: x=%d w=%d cols=%d", it.X, it.W, cfg.Cols)
	}
	if it.X != cfg.Cols-it.W {
		t.Errorf("item x = %d, want clamped to %d", it.X, cfg.Cols-it.W)
	}
}

func TestResolveDragClampsNegative(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 3, Y: 3, W: 2, H: 2}})
	d := dragInput(-500, -500, grid.Rect{Left: 0, Top: 0, Width: 190, Height: 110})

	res := ResolveDrag(engine.New(), cfg, "a", d)
	it := res.Layout.Find("a")
	if it.X != 0 || it.Y != 0 {
		t.Errorf("item at (%d,%d), want clamped to (0,0)", it.X, it.Y)
	}
}

func TestResolveDragDelegatesToEngine(t *testing.T) {
	rec := newRecordingEngine()
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	cfg.PreventCollision = true
	cfg.EnableSwap = true

	ResolveDrag(rec, cfg, "a", dragInput(150, 0, grid.Rect{Width: 190, Height: 110}))

	if len(rec.calls) != 2 || rec.calls[0] != "move:a" || rec.calls[1] != "compact:vertical" {
		t.Fatalf("engine calls = %v, want move then compact", rec.calls)
	}
	opts := rec.moves[0]
	if !opts.IsUserAction || !opts.PreventCollision || !opts.EnableSwap {
		t.Errorf("move options not forwarded: %+v", opts)
	}
	if opts.Cols != testCols || opts.Mode != grid.CompactVertical {
		t.Errorf("move options cols/mode = %d/%s", opts.Cols, opts.Mode)
	}
}

func TestResolveDragUnknownIDPanics(t *testing.T) {
	cfg := testConfig(grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}})
	defer func() {
		if recover() == nil {
			t.Error("unknown dragged id should panic")
		}
	}()
	ResolveDrag(engine.New(), cfg, "ghost", dragInput(0, 0, grid.Rect{Width: 190, Height: 110}))
}

func TestResolveDragDoesNotMutateInputLayout(t *testing.T) {
	layout := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 0, Y: 2, W: 2, H: 2},
	}
	cfg := testConfig(layout)
	before := layout.Clone()

	ResolveDrag(engine.New(), cfg, "a", dragInput(0, 300, grid.Rect{Width: 190, Height: 110}))

	for i := range before {
		if layout[i] != before[i] {
			t.Fatalf("input layout mutated at %d: %+v", i, layout[i])
		}
	}
}
