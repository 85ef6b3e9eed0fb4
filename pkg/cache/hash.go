package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keys are content-addressed: the inputs that determine a stage's output
// (config hash, trace hash, render options) are hashed together, so two runs
// with identical inputs share one entry and any input change misses cleanly.

// stageKey builds a key of the form stage:hash(parts...). The stage name
// ("replay", "artifact", "layout") doubles as the on-disk bucket for
// FileCache and as the keyType reported to observability hooks.
func stageKey(stage string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars); replay keys mix two hashes, so a
	// truncated digest would invite collisions between unrelated traces.
	return fmt.Sprintf("%s:%s", stage, hex.EncodeToString(sum[:]))
}

// Hash computes the SHA-256 content hash of serialized configs, traces, and
// layouts. Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
