package itemsync

import (
	"github.com/rs/zerolog"

	"github.com/Lawaia-Dev/itemsync/pkg/save"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// Option is a functional option for configuring a Syncer.
type Option func(*Syncer)

// WithPrimary sets the primary (base) source.
func WithPrimary(src sources.Source) Option {
	return func(s *Syncer) {
		s.primary = src
	}
}

// WithSecondary sets the secondary (overlay) source.
func WithSecondary(src sources.Source) Option {
	return func(s *Syncer) {
		s.secondary = src
	}
}

// WithOutputPath sets the path of the merged items artifact.
func WithOutputPath(path string) Option {
	return func(s *Syncer) {
		if path != "" {
			s.outputPath = path
		}
	}
}

// WithFormat sets the output serialization format.
func WithFormat(format save.Format) Option {
	return func(s *Syncer) {
		s.format = format
	}
}

// WithDryRun runs the merge and reports counts without writing output.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) {
		s.dryRun = dryRun
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}
