package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/mveltman/gridlock/pkg/cache"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

const (
	testCols      = 12
	testGridWidth = 1200.0
	testGap       = 10.0
	testRowHeight = 50.0
)

func testConfig(items ...grid.Item) grid.Config {
	return grid.Config{
		Cols:      testCols,
		RowHeight: testRowHeight,
		Gap:       testGap,
		Layout:    grid.Layout(items),
	}
}

// dragSample builds one pointer-move sample whose grid-relative element
// position resolves to exactly (left, top).
func dragSample(left, top float64, itemRect grid.Rect) gesture.Dragging {
	return gesture.Dragging{
		PointerDown: grid.Point{X: itemRect.Left, Y: itemRect.Top},
		Pointer:     grid.Point{X: left, Y: top},
		GridRect:    grid.Rect{Left: 0, Top: 0, Width: testGridWidth, Height: 600},
		ItemRect:    itemRect,
	}
}

// dragTrace records a single-gesture drag of an item to grid-relative pixel
// (left, top).
func dragTrace(id string, left, top float64, itemRect grid.Rect) *Trace {
	return &Trace{Gestures: []Gesture{{
		ItemID:  id,
		Kind:    gesture.KindDrag,
		Samples: []gesture.Dragging{dragSample(left, top, itemRect)},
	}}}
}

func TestTraceValidate(t *testing.T) {
	layout := grid.Layout{{ID: "a", X: 0, Y: 0, W: 2, H: 2}}
	sample := dragSample(0, 0, grid.Rect{Width: 190, Height: 110})

	tests := []struct {
		name    string
		trace   Trace
		wantErr bool
	}{
		{
			name:    "empty trace",
			trace:   Trace{},
			wantErr: true,
		},
		{
			name: "unknown kind",
			trace: Trace{Gestures: []Gesture{
				{ItemID: "a", Kind: "pinch", Samples: []gesture.Dragging{sample}},
			}},
			wantErr: true,
		},
		{
			name: "no samples",
			trace: Trace{Gestures: []Gesture{
				{ItemID: "a", Kind: gesture.KindDrag},
			}},
			wantErr: true,
		},
		{
			name: "unknown item",
			trace: Trace{Gestures: []Gesture{
				{ItemID: "ghost", Kind: gesture.KindDrag, Samples: []gesture.Dragging{sample}},
			}},
			wantErr: true,
		},
		{
			name: "valid",
			trace: Trace{Gestures: []Gesture{
				{ItemID: "a", Kind: gesture.KindResize, Samples: []gesture.Dragging{sample}},
			}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trace.Validate(layout)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTraceRoundTrip(t *testing.T) {
	tr := *dragTrace("a", 150, 0, grid.Rect{Width: 190, Height: 110})

	data, err := MarshalTrace(tr)
	if err != nil {
		t.Fatalf("MarshalTrace: %v", err)
	}
	got, err := UnmarshalTrace(data)
	if err != nil {
		t.Fatalf("UnmarshalTrace: %v", err)
	}
	if len(got.Gestures) != 1 || got.Gestures[0].ItemID != "a" || got.Steps() != 1 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestUnmarshalTraceRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalTrace([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExecuteReplaysTrace(t *testing.T) {
	cfg := testConfig(grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 2})
	opts := Options{
		Config:  cfg,
		Trace:   dragTrace("a", 150, 0, grid.Rect{Width: 190, Height: 110}),
		Formats: []string{FormatJSON, FormatSVG, FormatDOT},
	}

	runner := NewRunner(cache.NewNullCache(), nil, nil)
	res, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// 150px into a 1200px 12-col grid with gap 10 snaps to column 1.
	it := res.Layout.Find("a")
	if it == nil || it.X != 1 {
		t.Fatalf("item a = %+v, want X=1", it)
	}
	if res.Diff["a"] != grid.ChangeMove {
		t.Errorf("Diff[a] = %q, want %q", res.Diff["a"], grid.ChangeMove)
	}
	if res.Stats.Steps != 1 || res.Stats.Changed != 1 {
		t.Errorf("Stats = %+v, want Steps=1 Changed=1", res.Stats)
	}
	if res.LayoutHash == "" {
		t.Error("LayoutHash is empty")
	}

	for _, format := range opts.Formats {
		if len(res.Artifacts[format]) == 0 {
			t.Errorf("no %s artifact", format)
		}
	}
	if !strings.Contains(string(res.Artifacts[FormatDOT]), `"a"`) {
		t.Errorf("DOT artifact missing node a: %s", res.Artifacts[FormatDOT])
	}
}

func TestExecuteWithoutTraceRendersAsIs(t *testing.T) {
	cfg := testConfig(grid.Item{ID: "a", X: 3, Y: 2, W: 2, H: 2})
	opts := Options{Config: cfg, Formats: []string{FormatJSON}}

	runner := NewRunner(nil, nil, nil)
	res, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	it := res.Layout.Find("a")
	if it == nil || it.X != 3 || it.Y != 2 {
		t.Errorf("item a = %+v, want unchanged (3,2)", it)
	}
	if len(res.Diff) != 0 {
		t.Errorf("Diff = %v, want empty", res.Diff)
	}
}

func TestExecuteRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "bad config",
			opts: Options{Config: grid.Config{Cols: 0}},
		},
		{
			name: "bad format",
			opts: Options{Config: testConfig(), Formats: []string{"gif"}},
		},
		{
			name: "bad trace",
			opts: Options{
				Config: testConfig(grid.Item{ID: "a", W: 1, H: 1}),
				Trace:  dragTrace("ghost", 0, 0, grid.Rect{Width: 90, Height: 50}),
			},
		},
	}

	runner := NewRunner(nil, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runner.Execute(context.Background(), tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReplayCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	cfg := testConfig(grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 2})
	opts := Options{
		Config: cfg,
		Trace:  dragTrace("a", 150, 0, grid.Rect{Width: 190, Height: 110}),
	}

	ctx := context.Background()
	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.ReplayHit || first.CacheInfo.RenderHit {
		t.Errorf("first run hit cache: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.ReplayHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run missed cache: %+v", second.CacheInfo)
	}
	if second.Layout.Find("a").X != first.Layout.Find("a").X {
		t.Error("cached layout differs from computed layout")
	}

	// Refresh bypasses the replay cache.
	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.ReplayHit {
		t.Error("refresh run hit replay cache")
	}
}

func TestReplayMultiGesture(t *testing.T) {
	cfg := testConfig(
		grid.Item{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		grid.Item{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	)
	tr := Trace{Gestures: []Gesture{
		{
			ItemID:  "a",
			Kind:    gesture.KindDrag,
			Samples: []gesture.Dragging{dragSample(500, 0, grid.Rect{Width: 190, Height: 110})},
		},
		{
			ItemID:  "b",
			Kind:    gesture.KindDrag,
			Samples: []gesture.Dragging{dragSample(800, 0, grid.Rect{Left: 210, Top: 0, Width: 190, Height: 110})},
		},
	}}

	final := Replay(engine.New(), cfg, tr)

	if final.HasOverlap() {
		t.Errorf("replayed layout has overlaps: %+v", final)
	}
	if got := cfg.Layout.Find("a").X; got != 0 {
		t.Errorf("input layout mutated: a.X = %d", got)
	}
}
