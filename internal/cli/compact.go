package cli

import (
	"os"

	"github.com/spf13/cobra"

	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/engine"
)

// compactCommand creates the compact command. It runs the layout engine's
// compaction over a layout file and reports which items moved.
func (c *CLI) compactCommand() *cobra.Command {
	var (
		file   string
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Compact a grid layout and print the changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "" && !grid.ValidCompactModes[mode] {
				return griderrors.New(griderrors.ErrCodeInvalidConfig,
					"invalid compact mode: %q (must be vertical, horizontal, or none)", mode)
			}

			cfg, err := readConfigFile(file)
			if err != nil {
				return err
			}
			if mode != "" {
				cfg.CompactMode = mode
			}

			eng := engine.New()
			compacted := eng.Compact(cfg.Layout, cfg.Mode(), cfg.Cols)
			diff := grid.Diff(cfg.Layout, compacted)

			if len(diff) == 0 {
				printInfo("Layout already compact (%s)", cfg.Mode())
			} else {
				printSuccess("Compacted %d item(s) (%s)", len(diff), cfg.Mode())
				printDiff(diff)
			}

			if output == "" {
				return nil
			}
			data, err := grid.MarshalLayout(compacted)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "grid config file (JSON)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "compact mode: vertical (default), horizontal, none")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the compacted layout to a file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
