// Package engine implements displacement and compaction for grid layouts:
// the collision probe, gap-removing compaction, and the cascading move
// operation used while an item is dragged across occupied cells.
//
// The [Engine] interface is the seam between the gesture resolvers and this
// implementation. Resolvers depend on the interface only, so tests can inject
// a recording double and callers can substitute their own placement rules.
//
// All operations treat layouts as immutable values: they clone the input and
// return a new layout, preserving item order.
package engine
