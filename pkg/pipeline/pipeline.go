// Package pipeline provides the load → replay → render pipeline for Gridlock.
//
// The same pipeline backs the CLI, the HTTP API, and tests. By centralizing
// it, replaying a trace from a file and replaying one over HTTP produce
// byte-identical results and share one cache.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode and validate the grid config and gesture trace
//  2. Replay: apply the trace through the gesture resolvers, sample by sample
//  3. Render: generate output in various formats (JSON, SVG, DOT, PNG)
//
// Replay and render results are cached per stage, keyed by content hashes.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Config:  cfg,
//	    Trace:   &trace,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mveltman/gridlock/pkg/cache"
	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
	"github.com/mveltman/gridlock/pkg/render"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return griderrors.New(griderrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Config is the grid geometry and starting layout.
	Config grid.Config `json:"config"`

	// Trace is the gesture trace to replay. Nil means render the starting
	// layout as-is.
	Trace *Trace `json:"trace,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	GridWidth float64  `json:"grid_width,omitempty"`
	RowHeight float64  `json:"row_height,omitempty"`
	ShowIDs   bool     `json:"show_ids,omitempty"`
	Scale     float64  `json:"scale,omitempty"`

	// Refresh bypasses the replay cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger   `json:"-"`
	Engine engine.Engine `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Trace != nil {
		if err := o.Trace.Validate(o.Config.Layout); err != nil {
			return err
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.SetDefaults()
	o.validated = true
	return nil
}

// SetDefaults applies defaults without validating.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Engine == nil {
		o.Engine = engine.New()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// RenderOpts returns the render options for this run.
func (o *Options) RenderOpts() render.Options {
	return render.Options{
		GridWidth: o.GridWidth,
		RowHeight: o.RowHeight,
		ShowIDs:   o.ShowIDs,
		Scale:     o.Scale,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		CellSize:  o.RowHeight,
		GridWidth: o.GridWidth,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the final layout after replay.
	Layout grid.Layout

	// LayoutHash is the content hash of the final layout.
	LayoutHash string

	// Diff maps item ids to the kind of change replay made to them.
	Diff map[string]grid.Change

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Steps      int // pointer-move samples replayed
	Changed    int // items the replay moved or resized
	ReplayTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ReplayHit bool // Whether the replayed layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}
