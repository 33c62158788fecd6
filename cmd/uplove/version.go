package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uplove-app/uplove/pkg/uplove"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("uplove v" + uplove.Version)
	},
}
