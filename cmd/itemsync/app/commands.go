package app

import (
	"context"

	"github.com/spf13/cobra"

	itemsync "github.com/Lawaia-Dev/itemsync"
	"github.com/Lawaia-Dev/itemsync/pkg/constants"
	"github.com/Lawaia-Dev/itemsync/pkg/save"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// CreateSyncCommand creates the sync command, the main pipeline run.
func (a *App) CreateSyncCommand() *cobra.Command {
	var (
		url    string
		input  string
		output string
		format string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch, merge, and write the canonical item dataset",
		Long: `Sync fetches items from the MetaForge API and the RaidTheory data
checkout, merges them by item identity, and writes the canonical dataset.

A failed MetaForge fetch aborts the run without writing output; a missing
RaidTheory checkout is skipped and the run continues with primary data only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flag overrides take precedence over env and config file.
			if url != "" {
				a.config.MetaForgeURL = url
			}
			if input != "" {
				a.config.RaidTheoryPath = input
			}
			if output != "" {
				a.config.OutputPath = output
			}
			if format != "" {
				a.config.OutputFormat = format
			}

			syncer, err := a.Syncer(itemsync.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.SyncTimeout)
			defer cancel()

			result, err := syncer.Sync(ctx)
			if err != nil {
				return err
			}

			if result.DryRun {
				cmd.Printf("dry run: %d items would be written (%d primary + %d secondary)\n",
					result.Merged, result.Primary, result.Secondary)
				return nil
			}

			cmd.Printf("wrote %d items to %s (%d primary + %d secondary)\n",
				result.Merged, result.OutputPath, result.Primary, result.Secondary)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "MetaForge items endpoint URL")
	cmd.Flags().StringVar(&input, "input", "", "path to the RaidTheory items file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the merged items artifact")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "merge and report counts without writing output")

	return cmd
}

// CreateFetchCommand creates the fetch command, a debugging aid that prints
// one source's records without merging.
func (a *App) CreateFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "fetch <source>",
		Short:     "Fetch records from a single source and print them",
		ValidArgs: []string{sources.MetaForgeID.String(), sources.RaidTheoryID.String()},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.sourceByID(sources.ID(args[0]))
			if err != nil {
				return err
			}

			records, err := src.Fetch(cmd.Context())
			if err != nil {
				return err
			}

			return save.Records(records, save.WithWriter(cmd.OutOrStdout()))
		},
	}
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("itemsync %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit: %s\n", a.commit)
				cmd.Printf("  built:  %s\n", a.date)
			}
		},
	}
}
