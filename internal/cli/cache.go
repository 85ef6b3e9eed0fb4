package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mveltman/gridlock/pkg/cache"
	griderrors "github.com/mveltman/gridlock/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the replay and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. Entries are
// bucketed by pipeline stage on disk, so one stage can be cleared while the
// others stay warm: dropping stale artifacts after a renderer change should
// not force every trace to replay again.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached replay results and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch stage {
			case "", cache.StageReplay, cache.StageArtifact, cache.StageLayout:
			default:
				return griderrors.New(griderrors.ErrCodeInvalidConfig,
					"unknown stage %q (must be replay, artifact, or layout)", stage)
			}

			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer fc.Close()

			count, err := fc.Clear(stage)
			if err != nil {
				return err
			}

			if stage == "" {
				printSuccess("Cleared %d cached entries", count)
			} else {
				printSuccess("Cleared %d cached %s entries", count, stage)
			}
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "clear one stage only (replay, artifact, layout)")

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
