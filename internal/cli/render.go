package cli

import (
	"github.com/spf13/cobra"

	"github.com/mveltman/gridlock/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config    string
	output    string
	formats   []string
	gridWidth float64
	showIDs   bool
	scale     float64
	noCache   bool
}

// renderCommand creates the render command for drawing a static layout
// without replaying any gestures.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a grid layout as SVG, DOT, or PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "file", "f", "", "grid config file (JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVar(&formatsStr, "format", "", "output format(s): svg (default), json, dot, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.gridWidth, "width", 0, "pixel width of rendered output")
	cmd.Flags().BoolVar(&opts.showIDs, "show-ids", true, "draw item ids into rendered output")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2.0, "raster scale for PNG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	cfg, err := readConfigFile(opts.config)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Config:    cfg,
		Formats:   opts.formats,
		GridWidth: opts.gridWidth,
		ShowIDs:   opts.showIDs,
		Scale:     opts.scale,
		Logger:    c.Logger,
	}

	res, err := runner.Execute(cmd.Context(), pipeOpts)
	if err != nil {
		return err
	}

	printSuccess("Rendered %d item(s)", len(res.Layout))
	return writeArtifacts(res.Artifacts, opts.formats, opts.output, opts.config)
}
