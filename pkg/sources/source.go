// Package sources defines the interface and shared helpers for item data
// sources. Sources supply raw item records from external locations such as
// the MetaForge API or a local RaidTheory data checkout; the merge engine
// treats them as opaque record suppliers.
package sources

import (
	"context"
	"slices"

	"github.com/Lawaia-Dev/itemsync/pkg/items"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Common source IDs.
const (
	// MetaForgeID identifies the MetaForge items API, the primary source.
	MetaForgeID ID = "metaforge"

	// RaidTheoryID identifies the RaidTheory arcraiders-data checkout,
	// the secondary source.
	RaidTheoryID ID = "raidtheory"
)

// IDs returns all available source IDs.
func IDs() []ID {
	return []ID{
		MetaForgeID,
		RaidTheoryID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source represents a supplier of raw item records.
type Source interface {
	// ID returns the identifier of this source.
	ID() ID

	// Fetch retrieves all records from this source. A source that is
	// configured but absent (e.g. a missing local file) returns an empty
	// slice rather than an error.
	Fetch(ctx context.Context) ([]items.Record, error)
}
