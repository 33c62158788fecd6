// Package types defines the entity types, configuration, and error taxonomy
// for the uplove relationship store.
//
// Entities are plain structs hydrated from SQLite rows by internal/sqlite.
// All ids are opaque UUID strings generated at creation time.
package types
