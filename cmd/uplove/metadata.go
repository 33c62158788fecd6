// Relationship metadata commands: init, show, rename.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Initialize the relationship",
	Long: `Init names the tracked relationship and creates the local database.

Running init again renames the relationship but keeps its creation date
and all stored data.

Example:
  uplove init "Anna & Ben"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.InitializeRelationshipMetadata(ctx, args[0]); err != nil {
			return err
		}

		metadata, err := store.GetRelationshipMetadata(ctx)
		if err != nil {
			return err
		}
		return printResult(metadata, func() {
			fmt.Printf("Initialized relationship %q\n", metadata.Name)
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the relationship",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		metadata, err := store.GetRelationshipMetadata(context.Background())
		if err != nil {
			return err
		}
		if metadata == nil {
			fmt.Println("No relationship initialized. Run 'uplove init <name>' first.")
			return nil
		}
		return printResult(metadata, func() {
			fmt.Printf("%s (since %s)\n", metadata.Name, metadata.CreatedAt.Format("2006-01-02"))
		})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the relationship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateRelationshipMetadata(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Renamed relationship to %q\n", args[0])
		return nil
	},
}
