// Package constants provides shared constants used throughout the itemsync codebase.
// This includes timeouts, file permissions, and default paths that should be
// consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to item APIs
	DefaultHTTPTimeout = 30 * time.Second

	// SyncTimeout is the timeout for a full sync run
	SyncTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Source and output defaults
const (
	// MetaForgeItemsURL is the default MetaForge items endpoint
	MetaForgeItemsURL = "https://metaforge.app/api/arc-raiders/items"

	// RaidTheoryItemsPath is the default path to the RaidTheory data checkout,
	// cloned alongside this repository by the sync workflow
	RaidTheoryItemsPath = "external/arcraiders-data/items.json"

	// DefaultOutputPath is the default path for the merged items artifact
	DefaultOutputPath = "data/items.json"
)
