// Package app provides the application context and dependency management
// for the itemsync CLI. It centralizes configuration, logging, and syncer
// construction so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	itemsync "github.com/Lawaia-Dev/itemsync"
	"github.com/Lawaia-Dev/itemsync/pkg/save"
)

// App represents the itemsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Syncer builds a syncer from the app configuration plus any extra options.
func (a *App) Syncer(opts ...itemsync.Option) (*itemsync.Syncer, error) {
	base := []itemsync.Option{
		itemsync.WithPrimary(a.primarySource()),
		itemsync.WithSecondary(a.secondarySource()),
		itemsync.WithOutputPath(a.config.OutputPath),
		itemsync.WithFormat(save.ParseFormat(a.config.OutputFormat)),
		itemsync.WithLogger(a.logger),
	}
	return itemsync.New(append(base, opts...)...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
