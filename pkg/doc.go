// Package pkg provides the core libraries for Gridlock grid-layout gestures.
//
// # Overview
//
// Gridlock resolves pointer drag and resize gestures against a column grid,
// the interaction model behind dashboard builders and tile editors. The pkg
// directory is organized into four main areas:
//
//  1. [grid] - Domain logic (layout types, engine, gesture resolution)
//  2. [cache] / [session] - Infrastructure (caching, session stores)
//  3. [render] - Visualization (SVG, DOT, PNG output)
//  4. [pipeline] - Orchestration (load → replay → render)
//
// # Architecture
//
// The typical data flow through Gridlock:
//
//	Pointer Samples / Gesture Trace
//	         ↓
//	    [grid/gesture] package (pixel↔cell transforms, resolvers)
//	         ↓
//	    [grid/engine] package (collision, compaction, moves)
//	         ↓
//	    [render] package (SVG/DOT/PNG artifacts)
//	         ↓
//	    JSON/SVG/DOT/PNG output
//
// # Quick Start
//
// Resolve a drag gesture against a layout:
//
//	import (
//	    "github.com/mveltman/gridlock/pkg/grid"
//	    "github.com/mveltman/gridlock/pkg/grid/engine"
//	    "github.com/mveltman/gridlock/pkg/grid/gesture"
//	)
//
//	// 1. Describe the grid
//	cfg := grid.Config{
//	    Cols: 12, RowHeight: 50, Gap: 10, GridWidth: 1200,
//	    Layout: grid.Layout{{ID: "a", W: 2, H: 2}},
//	}
//
//	// 2. Resolve a pointer sample
//	eng := engine.New()
//	res := gesture.ResolveDrag(eng, cfg, "a", gesture.Dragging{
//	    Pointer: gesture.Point{X: 450, Y: 80},
//	})
//
//	// 3. Inspect the resulting layout
//	fmt.Println(res.Layout.Find("a").X)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [grid] - Layout, Item, and Config types with JSON codecs, validation,
// and layout diffing.
//
// [grid/engine] - The layout engine: collision detection, item moves with
// push/swap resolution, and vertical/horizontal compaction.
//
// [grid/gesture] - Gesture resolution. Pixel↔cell coordinate transforms,
// resize limits, collision-avoidance shrinking, and the drag/resize
// resolvers that turn pointer samples into layouts.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of replay results and rendered
// artifacts. File, Redis, and null backends behind one interface.
//
// [session] - Gesture session state for the HTTP API. Memory and MongoDB
// backends with TTL expiry.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// [errors] - Coded errors shared across CLI and API surfaces.
//
// ## Visualization
//
// [render] - Artifact rendering: SVG via svgo, DOT adjacency diagrams via
// Graphviz, and PNG conversion via librsvg.
//
// ## Orchestration
//
// [pipeline] - Complete replay pipeline (load → replay → render) used by
// CLI and API. Ensures consistent behavior across all entry points.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/grid/gesture/... # Specific package
//	go test -run Example           # Examples only
//
// [grid]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/grid
// [grid/engine]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/grid/engine
// [grid/gesture]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/grid/gesture
// [cache]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/cache
// [session]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/session
// [observability]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/observability
// [errors]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/errors
// [render]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/mveltman/gridlock/pkg/pipeline
package pkg
