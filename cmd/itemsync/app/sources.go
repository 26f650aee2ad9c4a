package app

import (
	"github.com/Lawaia-Dev/itemsync/internal/sources/metaforge"
	"github.com/Lawaia-Dev/itemsync/internal/sources/raidtheory"
	"github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/Lawaia-Dev/itemsync/pkg/sources"
)

// primarySource builds the MetaForge source from the app configuration.
func (a *App) primarySource() sources.Source {
	return metaforge.New(metaforge.WithURL(a.config.MetaForgeURL))
}

// secondarySource builds the RaidTheory source from the app configuration.
func (a *App) secondarySource() sources.Source {
	return raidtheory.New(raidtheory.WithPath(a.config.RaidTheoryPath))
}

// sourceByID builds the configured source with the given ID.
func (a *App) sourceByID(id sources.ID) (sources.Source, error) {
	switch id {
	case sources.MetaForgeID:
		return a.primarySource(), nil
	case sources.RaidTheoryID:
		return a.secondarySource(), nil
	default:
		return nil, &errors.ConfigError{
			Component: "sources",
			Message:   "unknown source " + id.String(),
		}
	}
}
