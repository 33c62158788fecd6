// Package paths decides where the uplove CLI keeps its configuration and
// its database. Explicit flags win, then environment overrides, then the
// platform convention.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDirName is the CWD-relative data directory used when no
// override is active.
const DefaultDataDirName = ".uplove-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "UPLOVE_CONFIG_DIR"
	EnvDataDir   = "UPLOVE_DATA_DIR"
)

// DefaultConfigDir returns where configuration lives when nothing overrides
// it: $XDG_CONFIG_HOME/uplove (or ~/.config/uplove) on Linux, the user
// config dir elsewhere (~/Library/Application Support on macOS, %APPDATA%
// on Windows).
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "uplove"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "uplove"), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "uplove"), nil
}

// DefaultDataDir returns the platform data directory:
// $XDG_DATA_HOME/uplove (or ~/.local/share/uplove) on Linux, the user
// config dir on macOS and Windows, which keep data next to configuration.
func DefaultDataDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "uplove"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "uplove"), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "uplove"), nil
}

// ResolveConfigDir applies the override chain for the configuration
// directory: flag, then UPLOVE_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies the override chain for the data directory: flag,
// then the config file value, then UPLOVE_DATA_DIR, then DefaultDataDirName
// under the current directory. The CWD default keeps a project-local
// database when uplove runs without any configuration at all.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
