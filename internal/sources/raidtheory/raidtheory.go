// Package raidtheory implements the RaidTheory item source, which reads the
// items file from a local arcraiders-data checkout. It is the secondary
// source of the sync pipeline: an absent checkout is not an error, the run
// simply continues with primary data only.
package raidtheory

import (
	"context"
	"os"

	"github.com/Lawaia-Dev/itemsync/pkg/constants"
	"github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/Lawaia-Dev/itemsync/pkg/items"
	"github.com/Lawaia-Dev/itemsync/pkg/logging"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// Source loads items from a RaidTheory data checkout on disk.
type Source struct {
	path string
}

// New creates a new RaidTheory source.
func New(opts ...Option) *Source {
	s := &Source{
		path: constants.RaidTheoryItemsPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a RaidTheory source.
type Option func(*Source)

// WithPath sets the items file path.
func WithPath(path string) Option {
	return func(s *Source) {
		if path != "" {
			s.path = path
		}
	}
}

// ID returns the identifier of this source.
func (s *Source) ID() sources.ID {
	return sources.RaidTheoryID
}

// Path returns the configured items file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads all items from the checkout. A missing file yields an empty
// slice; malformed JSON or an unrecognized shape aborts the run.
func (s *Source) Fetch(ctx context.Context) ([]items.Record, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("source", s.ID().String()).Str("path", s.path).
				Msg("Items file not found, skipping source")
			return []items.Record{}, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	log.Info().Str("source", s.ID().String()).Str("path", s.path).Msg("Loading items")

	records, err := sources.UnwrapRecords(data, s.ID())
	if err != nil {
		return nil, err
	}

	log.Info().Str("source", s.ID().String()).Int("count", len(records)).Msg("Loaded items")
	return records, nil
}
