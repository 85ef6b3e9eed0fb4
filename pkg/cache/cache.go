// Package cache provides pluggable caching for replay and render results.
//
// The Cache interface abstracts over storage backends:
//   - FileCache: on-disk cache for CLI runs, bucketed by pipeline stage
//   - RedisCache: Redis-backed cache for server deployments
//   - NullCache: no-op cache for testing or disabled caching
//
// Keys are produced by a Keyer so CLI, server, and pipeline agree on the
// exact key layout, and a ScopedKeyer can prefix keys for tenant isolation.
// All cached values carry a TTL; nothing in this package is a durable store.
package cache

import (
	"context"
	"time"
)

// TTLs for each pipeline stage. Replay results are cheap to recompute, so
// they expire faster than rendered artifacts.
const (
	TTLLayout   = 24 * time.Hour
	TTLReplay   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Stage names. Each one prefixes the keys of one pipeline stage and names
// the FileCache bucket its entries land in.
const (
	StageLayout   = "layout"
	StageReplay   = "replay"
	StageArtifact = "artifact"
)

// Cache is the storage interface for cached byte blobs.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry
	// beyond backend policy.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render parameters that make artifacts distinct for
// the same layout.
type ArtifactKeyOpts struct {
	Format    string  // svg, dot, png, json
	CellSize  float64 // pixel size of one cell in the rendered output
	GridWidth float64 // pixel width of the rendered grid
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey keys a resolved layout by the hash of its config.
	LayoutKey(configHash string) string

	// ReplayKey keys a replay result by config and trace content.
	ReplayKey(configHash, traceHash string) string

	// ArtifactKey keys a rendered artifact by layout content and render
	// options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey generates a key for a resolved layout.
func (DefaultKeyer) LayoutKey(configHash string) string {
	return StageLayout + ":" + configHash
}

// ReplayKey generates a key for a replay result.
func (DefaultKeyer) ReplayKey(configHash, traceHash string) string {
	return stageKey(StageReplay, configHash, traceHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return stageKey(StageArtifact, layoutHash, opts)
}
