package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/pipeline"
)

// replayOpts holds the command-line flags for the replay command.
type replayOpts struct {
	config    string   // grid config file (cols, row_height, gap, layout)
	trace     string   // gesture trace file
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: json, svg, dot, png
	gridWidth float64  // pixel width for rendered output
	showIDs   bool     // draw item ids into rendered output
	scale     float64  // raster scale for PNG output
	noCache   bool     // disable the replay/artifact cache
	refresh   bool     // bypass the replay cache, recompute
}

// replayCommand creates the replay command. It loads a grid config and a
// recorded gesture trace, replays the trace through the gesture resolvers, and
// writes the final layout in the requested formats.
func (c *CLI) replayCommand() *cobra.Command {
	var formatsStr string
	opts := replayOpts{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a gesture trace against a grid layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runReplay(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "file", "f", "", "grid config file (JSON)")
	cmd.Flags().StringVarP(&opts.trace, "trace", "t", "", "gesture trace file (JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVar(&formatsStr, "format", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.gridWidth, "width", 0, "pixel width of rendered output")
	cmd.Flags().BoolVar(&opts.showIDs, "show-ids", true, "draw item ids into rendered output")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2.0, "raster scale for PNG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the replay cache")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("trace")

	return cmd
}

func (c *CLI) runReplay(cmd *cobra.Command, opts *replayOpts) error {
	cfg, err := readConfigFile(opts.config)
	if err != nil {
		return err
	}
	tr, err := readTraceFile(opts.trace)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)
	res, err := runner.Execute(cmd.Context(), pipeline.Options{
		Config:    cfg,
		Trace:     &tr,
		Formats:   opts.formats,
		GridWidth: opts.gridWidth,
		ShowIDs:   opts.showIDs,
		Scale:     opts.scale,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Replayed %d samples", res.Stats.Steps))

	printSuccess("Replay complete")
	printStats(res.Stats.Steps, res.Stats.Changed, res.CacheInfo.ReplayHit)
	printDiff(res.Diff)

	return writeArtifacts(res.Artifacts, opts.formats, opts.output, opts.config)
}

// printDiff prints one line per changed item, in stable id order.
func printDiff(diff map[string]grid.Change) {
	ids := make([]string, 0, len(diff))
	for id := range diff {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		printDetail("%s %s %s", id, iconArrow, diff[id])
	}
}

// writeArtifacts writes each rendered format to its output path.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) error {
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			printWarning("no %s artifact produced", format)
			continue
		}

		path := output
		if len(formats) > 1 || path == "" {
			path = outputPath(output, input, format)
		}

		out, err := openOutput(path)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return err
		}
		out.Close()
		printFile(path)
	}
	return nil
}

// readConfigFile loads and validates a grid config from a JSON file.
func readConfigFile(path string) (grid.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grid.Config{}, err
	}
	cfg, err := grid.UnmarshalConfig(data)
	if err != nil {
		return grid.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// readTraceFile loads a gesture trace from a JSON file.
func readTraceFile(path string) (pipeline.Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Trace{}, err
	}
	return pipeline.UnmarshalTrace(data)
}
