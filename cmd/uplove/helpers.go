// Shared helpers for uplove CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/uplove-app/uplove/internal/sqlite"
	"github.com/uplove-app/uplove/pkg/types"
	"github.com/uplove-app/uplove/pkg/uplove"
)

// openStore resolves the data directory and opens the store. The caller must
// defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := uplove.Open(types.Config{
		DataDir:   dataDir,
		ListLimit: configListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// printResult renders v as indented JSON when --json is set, or hands off to
// plain for human-readable output.
func printResult(v any, plain func()) error {
	if flagJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	plain()
	return nil
}

// doneMark renders a completion flag for list output.
func doneMark(isDone bool) string {
	if isDone {
		return "[x]"
	}
	return "[ ]"
}
