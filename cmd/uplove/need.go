// Necessity commands: add, get, list, update, rm.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var needCmd = &cobra.Command{
	Use:   "need",
	Short: "Manage a person's needs",
}

var needAddCmd = &cobra.Command{
	Use:   "add <person-id> <name> <description>",
	Short: "Add a need for a person",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		need, err := store.CreateNecessity(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printResult(need, func() {
			fmt.Printf("Added need %s (%s)\n", need.Name, need.ID)
		})
	},
}

var needGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a need",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		need, err := store.GetNecessity(context.Background(), args[0])
		if err != nil {
			return err
		}
		if need == nil {
			fmt.Println("No such need.")
			return nil
		}
		return printResult(need, func() {
			fmt.Printf("%s (%s)\n", need.Name, need.ID)
			fmt.Printf("  person: %s\n", need.PersonID)
			fmt.Printf("  %s\n", need.Description)
		})
	},
}

var needListCmd = &cobra.Command{
	Use:   "list <person-id>",
	Short: "List a person's needs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		needs, err := store.GetNecessitiesByPerson(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printResult(needs, func() {
			for _, n := range needs {
				fmt.Printf("%s  %s: %s\n", n.ID, n.Name, n.Description)
			}
		})
	},
}

var needUpdateCmd = &cobra.Command{
	Use:   "update <id> <name> <description>",
	Short: "Update a need",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateNecessity(context.Background(), args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("Updated need.")
		return nil
	},
}

var needRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a need",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteNecessity(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed need.")
		return nil
	},
}

func init() {
	needCmd.AddCommand(needAddCmd)
	needCmd.AddCommand(needGetCmd)
	needCmd.AddCommand(needListCmd)
	needCmd.AddCommand(needUpdateCmd)
	needCmd.AddCommand(needRmCmd)
}
