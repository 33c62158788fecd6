package types

import "errors"

// DefaultListLimit caps the row count of every list operation. The limit is a
// safety cap against unbounded result sets, not a pagination contract.
const DefaultListLimit = 1000

// Config holds storage parameters for Store.Open.
type Config struct {
	// DataDir is the directory holding the database file. Created if missing.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ListLimit overrides DefaultListLimit when positive.
	ListLimit int `json:"list_limit" yaml:"list_limit"`
}

// Config validation errors.
var (
	ErrDataDirEmpty     = errors.New("data dir must not be empty")
	ErrListLimitInvalid = errors.New("list limit must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.ListLimit < 0 {
		return ErrListLimitInvalid
	}
	return nil
}

// EffectiveListLimit returns ListLimit, or DefaultListLimit when unset.
func (c Config) EffectiveListLimit() int {
	if c.ListLimit > 0 {
		return c.ListLimit
	}
	return DefaultListLimit
}
