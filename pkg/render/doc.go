// Package render turns grid layouts into visual artifacts.
//
// Two views are supported:
//
//   - SVG: a pixel-accurate picture of the grid, placing each item with the
//     same forward transforms the gesture resolvers invert. What you see is
//     exactly what the coordinate math computes.
//   - DOT: the layout's adjacency graph (items as nodes, shared cell edges as
//     edges, overlaps highlighted), rendered to SVG or PNG via graphviz. This
//     is the debug view for the collision engine.
package render
