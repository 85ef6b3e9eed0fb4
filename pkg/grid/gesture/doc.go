// Package gesture converts continuous pointer input into discrete grid
// placement: pixel↔cell coordinate transforms, pixel-space resize limits, and
// the drag and resize resolvers invoked once per pointer-move event.
//
// Every function here is a pure synchronous computation. Nothing blocks,
// caches, or holds state between calls; each pointer move recomputes from the
// caller-owned [grid.Config] and returns a fresh layout plus the continuous
// proxy rectangle for visual feedback. A bad result simply washes out on the
// next pointer move.
//
// Degenerate geometry (zero columns, zero grid width) is the caller's problem:
// validate the config with [grid.Config.Validate] before resolving gestures.
// A dragged or resized ID that is not in the layout panics, since silently
// proceeding would corrupt the layout.
package gesture
