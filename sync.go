package itemsync

import (
	"context"

	"github.com/Lawaia-Dev/itemsync/pkg/items"
	"github.com/Lawaia-Dev/itemsync/pkg/logging"
	"github.com/Lawaia-Dev/itemsync/pkg/save"
)

// Result summarizes one sync run.
type Result struct {
	// Primary is the number of records loaded from the primary source.
	Primary int

	// Secondary is the number of records loaded from the secondary source.
	Secondary int

	// Merged is the number of unique items after merging.
	Merged int

	// OutputPath is where the artifact was written; empty for dry runs.
	OutputPath string

	// DryRun reports whether the write step was skipped.
	DryRun bool
}

// Sync runs the full pipeline: fetch primary, load secondary, merge,
// canonicalize, write. Any primary fetch or shape failure aborts the run
// before anything is written, so a failed sync never leaves a partial
// artifact behind.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, s.logger)

	primary, err := s.primary.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	secondary, err := s.secondary.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	merged := items.Canonicalize(items.Merge(primary, secondary))

	s.logger.Info().
		Int("primary", len(primary)).
		Int("secondary", len(secondary)).
		Int("merged", len(merged)).
		Msg("Merged items")

	result := &Result{
		Primary:   len(primary),
		Secondary: len(secondary),
		Merged:    len(merged),
		DryRun:    s.dryRun,
	}

	if s.dryRun {
		s.logger.Info().Bool("dry_run", true).Msg("Dry run completed, no output written")
		return result, nil
	}

	if err := save.Records(merged, save.WithPath(s.outputPath), save.WithFormat(s.format)); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(merged)).
		Str("path", s.outputPath).
		Msg("Wrote merged items")

	result.OutputPath = s.outputPath
	return result, nil
}
