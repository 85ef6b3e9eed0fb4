package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mveltman/gridlock/pkg/cache"
	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/observability"
	"github.com/mveltman/gridlock/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → replay → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, griderrors.Wrap(griderrors.ErrCodeInvalidConfig, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Replay
	replayStart := time.Now()
	layout, replayHit, err := r.ReplayWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Diff = grid.Diff(opts.Config.Layout, layout)
	result.Stats.ReplayTime = time.Since(replayStart)
	result.Stats.Changed = len(result.Diff)
	result.CacheInfo.ReplayHit = replayHit
	if opts.Trace != nil {
		result.Stats.Steps = opts.Trace.Steps()
	}

	if layoutData, err := grid.MarshalLayout(layout); err == nil {
		result.LayoutHash = cache.Hash(layoutData)
	}

	r.Logger.Info("replayed gestures",
		"steps", result.Stats.Steps,
		"changed", result.Stats.Changed,
		"duration", result.Stats.ReplayTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ReplayWithCacheInfo replays the trace with caching and returns cache hit info.
// When the options carry no trace, the starting layout is returned unchanged.
func (r *Runner) ReplayWithCacheInfo(ctx context.Context, opts Options) (grid.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if opts.Trace == nil {
		return opts.Config.Layout, false, nil
	}

	// Compute cache key from config and trace content
	configData, err := grid.MarshalConfig(opts.Config)
	if err != nil {
		return nil, false, err
	}
	traceData, err := MarshalTrace(*opts.Trace)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ReplayKey(cache.Hash(configData), cache.Hash(traceData))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := grid.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "replay")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to replay
		}
	}
	observability.Cache().OnCacheMiss(ctx, "replay")

	steps := opts.Trace.Steps()
	observability.Pipeline().OnReplayStart(ctx, steps)
	replayStart := time.Now()
	layout := Replay(opts.Engine, opts.Config, *opts.Trace)
	observability.Pipeline().OnReplayComplete(ctx, steps, time.Since(replayStart), nil)

	// Cache the result
	if data, err := grid.MarshalLayout(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLReplay)
		observability.Cache().OnCacheSet(ctx, "replay", len(data))
	}

	return layout, false, nil // Cache miss
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout grid.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := grid.MarshalLayout(layout)
	if err != nil {
		return nil, false, err
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	rendered, err := renderFormats(layout, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	return rendered, false, nil // Cache miss
}

// Replay is a convenience wrapper that calls ReplayWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Replay(ctx context.Context, opts Options) (grid.Layout, error) {
	layout, _, err := r.ReplayWithCacheInfo(ctx, opts)
	return layout, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, layout grid.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// renderFormats renders the final layout in every requested format.
func renderFormats(layout grid.Layout, opts Options) (map[string][]byte, error) {
	cfg := opts.Config
	cfg.Layout = layout

	out := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			data, err := grid.MarshalLayout(layout)
			if err != nil {
				return nil, err
			}
			out[format] = data
		case FormatSVG:
			out[format] = render.SVG(cfg, opts.RenderOpts())
		case FormatDOT:
			out[format] = []byte(render.ToDOT(layout, opts.RenderOpts()))
		case FormatPNG:
			png, err := render.ToPNG(render.SVG(cfg, opts.RenderOpts()), opts.Scale)
			if err != nil {
				return nil, griderrors.Wrap(griderrors.ErrCodeInternal, err, "render png")
			}
			out[format] = png
		default:
			return nil, griderrors.New(griderrors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return out, nil
}
