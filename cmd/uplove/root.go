// Root command for the uplove CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/uplove-app/uplove/internal/paths"
	"github.com/uplove-app/uplove/pkg/uplove"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Config values loaded by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir   string
	configListLimit int
)

var rootCmd = &cobra.Command{
	Use:     "uplove",
	Short:   "uplove is a local relationship tracker",
	Long: `uplove tracks the health of a relationship in a local database:
the people in it and their needs, shared pillars with satisfaction scores,
dated check-ins, and commitments.`,
	Version:       uplove.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configListLimit = cfg.GetInt(cfgKeyListLimit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(personCmd)
	rootCmd.AddCommand(needCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(keepCmd)
	rootCmd.AddCommand(pillarCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > UPLOVE_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > UPLOVE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
