// Package uplove provides the public entry point for the uplove relationship
// store. It exposes the store factory while keeping the SQLite implementation
// internal.
package uplove

import (
	"github.com/uplove-app/uplove/internal/sqlite"
	"github.com/uplove-app/uplove/pkg/types"
)

// Version is the release version of the uplove module.
const Version = "0.1.0"

// Open creates a store on the given configuration and initializes it.
// The caller owns the returned store and must Close it.
//
// Example:
//
//	store, err := uplove.Open(types.Config{DataDir: ".uplove-db"})
//	if err != nil { ... }
//	defer store.Close()
func Open(cfg types.Config) (*sqlite.Store, error) {
	store := sqlite.New()
	if err := store.Open(cfg); err != nil {
		return nil, err
	}
	return store, nil
}
