// Package grid defines the cell-space data model for gridlock: items, layouts,
// grid configuration, layout diffing, and placement equality.
//
// A [Layout] is an ordered set of rectangular [Item] values positioned on a
// discrete grid of columns and rows. Items are keyed by ID; order carries no
// placement meaning but is preserved for stable diffing and rendering.
//
// Layouts are value types and are replaced wholesale rather than mutated in
// place. Every operation in this module returns a fresh Layout, so a renderer
// reading the "current" layout always observes some completed computation,
// never a partial one. Callers must keep that copy-on-write discipline when
// sharing layouts across consumers.
//
// The pixel-space side of the system lives in [grid/gesture]; displacement and
// compaction live in [grid/engine].
package grid
