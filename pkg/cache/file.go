package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores entries on disk for CLI runs, bucketed by pipeline stage
// so replay results and rendered artifacts can be inspected and cleared
// independently. Layout on disk:
//
//	<dir>/<stage>/<hh>/<hash>.json
//
// where <stage> is parsed from the key prefix the Keyer produced and <hh> is
// a two-character shard of the key hash, keeping per-directory entry counts
// small for artifact-heavy runs.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-backed cache rooted at dir.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry wraps cached bytes with the stage they belong to and an expiry.
// The stage is redundant with the entry's directory; it is recorded so an
// entry remains self-describing when moved or inspected by hand.
type fileEntry struct {
	Stage     string    `json:"stage"`
	ExpiresAt time.Time `json:"expires_at"`
	Data      []byte    `json:"data"`
}

// Get retrieves a value. Unreadable and expired entries are removed and
// reported as a miss, so one corrupt file costs a replay, not an error.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Data, true, nil
}

// Set stores a value with the given TTL. The entry is written to a temp file
// and renamed in, so an interrupted run never leaves a truncated entry for
// Get to trip over.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{
		Stage: stageOf(key),
		Data:  data,
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(entryData); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes a value. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry of the given stage, or every entry when stage is
// empty, and returns how many were removed. Emptied shard directories are
// pruned afterwards.
func (c *FileCache) Clear(stage string) (int, error) {
	root := c.dir
	if stage != "" {
		root = filepath.Join(c.dir, stage)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if os.Remove(path) == nil {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	// Prune now-empty directories, deepest first.
	var dirs []string
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.IsDir() && path != c.dir {
			dirs = append(dirs, path)
		}
		return nil
	})
	for i := len(dirs) - 1; i >= 0; i-- {
		_ = os.Remove(dirs[i])
	}

	return count, nil
}

// Dir returns the cache's root directory.
func (c *FileCache) Dir() string {
	return c.dir
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to its on-disk location.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, stageOf(key), sum[:2], sum[2:]+".json")
}

// stageOf extracts the stage bucket from a key. Keys look like
// "replay:<hash>" from the DefaultKeyer, or "tenant:replay:<hash>" from a
// ScopedKeyer, so the stage is the second-to-last colon segment. Keys that
// carry no recognizable stage fall into one shared bucket.
func stageOf(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) >= 2 {
		switch stage := parts[len(parts)-2]; stage {
		case StageLayout, StageReplay, StageArtifact:
			return stage
		}
	}
	return "misc"
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
