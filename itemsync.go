// Package itemsync merges game item data from the MetaForge API and the
// RaidTheory arcraiders-data repository into a single canonical dataset, and
// writes it as stable, deterministically-ordered JSON suitable for
// version-control diffing.
//
// The pipeline is a single linear pass: fetch primary, load secondary,
// overlay-merge by derived item key, canonicalize, write. MetaForge acts as
// the base record set; RaidTheory overlays non-empty fields on matching
// items and contributes items of its own.
//
// Example usage:
//
//	syncer, err := itemsync.New(
//	    itemsync.WithOutputPath("data/items.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := syncer.Sync(ctx)
package itemsync

import (
	"github.com/rs/zerolog"

	"github.com/Lawaia-Dev/itemsync/internal/sources/metaforge"
	"github.com/Lawaia-Dev/itemsync/internal/sources/raidtheory"
	"github.com/Lawaia-Dev/itemsync/pkg/constants"
	"github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/Lawaia-Dev/itemsync/pkg/logging"
	"github.com/Lawaia-Dev/itemsync/pkg/save"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// Syncer runs the item sync pipeline. Construct it with New and functional
// options; the zero value is not usable.
type Syncer struct {
	primary    sources.Source
	secondary  sources.Source
	outputPath string
	format     save.Format
	dryRun     bool
	logger     *zerolog.Logger
}

// New creates a Syncer with the default MetaForge and RaidTheory sources and
// the default output path, then applies any options.
func New(opts ...Option) (*Syncer, error) {
	s := &Syncer{
		primary:    metaforge.New(),
		secondary:  raidtheory.New(),
		outputPath: constants.DefaultOutputPath,
		format:     save.FormatJSON,
		logger:     logging.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.primary == nil {
		return nil, &errors.ConfigError{Component: "syncer", Message: "primary source is required"}
	}
	if s.secondary == nil {
		return nil, &errors.ConfigError{Component: "syncer", Message: "secondary source is required"}
	}
	if s.outputPath == "" && !s.dryRun {
		return nil, &errors.ConfigError{Component: "syncer", Message: "output path is required"}
	}

	return s, nil
}

// Primary returns the configured primary source.
func (s *Syncer) Primary() sources.Source {
	return s.primary
}

// Secondary returns the configured secondary source.
func (s *Syncer) Secondary() sources.Source {
	return s.secondary
}
