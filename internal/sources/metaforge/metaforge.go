// Package metaforge implements the MetaForge API item source, the primary
// source of the sync pipeline.
package metaforge

import (
	"context"

	"github.com/Lawaia-Dev/itemsync/internal/transport"
	"github.com/Lawaia-Dev/itemsync/pkg/constants"
	"github.com/Lawaia-Dev/itemsync/pkg/items"
	"github.com/Lawaia-Dev/itemsync/pkg/logging"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// Source fetches items from the MetaForge API.
type Source struct {
	url    string
	client *transport.Client
}

// New creates a new MetaForge source.
func New(opts ...Option) *Source {
	s := &Source{
		url:    constants.MetaForgeItemsURL,
		client: transport.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a MetaForge source.
type Option func(*Source)

// WithURL sets the items endpoint URL.
func WithURL(url string) Option {
	return func(s *Source) {
		if url != "" {
			s.url = url
		}
	}
}

// WithClient sets a custom transport client.
func WithClient(client *transport.Client) Option {
	return func(s *Source) {
		if client != nil {
			s.client = client
		}
	}
}

// ID returns the identifier of this source.
func (s *Source) ID() sources.ID {
	return sources.MetaForgeID
}

// URL returns the configured items endpoint.
func (s *Source) URL() string {
	return s.url
}

// Fetch retrieves all items from the MetaForge API. A failed request or an
// unrecognized payload shape aborts the run; there is no retry.
func (s *Source) Fetch(ctx context.Context) ([]items.Record, error) {
	log := logging.FromContext(ctx)
	log.Info().Str("source", s.ID().String()).Str("url", s.url).Msg("Fetching items")

	body, err := s.client.Get(ctx, s.url, s.ID().String())
	if err != nil {
		return nil, err
	}

	records, err := sources.UnwrapRecords(body, s.ID())
	if err != nil {
		return nil, err
	}

	log.Info().Str("source", s.ID().String()).Int("count", len(records)).Msg("Loaded items")
	return records, nil
}
