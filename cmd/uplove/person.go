// Person commands: add, get, list, update, rm.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Manage the people in the relationship",
}

var personAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a person",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		person, err := store.CreatePerson(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printResult(person, func() {
			fmt.Printf("Added person %s (%s)\n", person.Name, person.ID)
		})
	},
}

var personGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a person and their needs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		person, err := store.GetPerson(context.Background(), args[0])
		if err != nil {
			return err
		}
		if person == nil {
			fmt.Println("No such person.")
			return nil
		}
		return printResult(person, func() {
			fmt.Printf("%s (%s)\n", person.Name, person.ID)
			for _, n := range person.Necessities {
				fmt.Printf("  - %s: %s\n", n.Name, n.Description)
			}
		})
	},
}

var personListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all people",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		persons, err := store.GetAllPersons(context.Background())
		if err != nil {
			return err
		}
		return printResult(persons, func() {
			for _, p := range persons {
				fmt.Printf("%s  %s (%d needs)\n", p.ID, p.Name, len(p.Necessities))
			}
		})
	},
}

var personUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Rename a person",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdatePerson(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Updated person.")
		return nil
	},
}

var personRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a person and their needs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeletePerson(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed person.")
		return nil
	},
}

func init() {
	personCmd.AddCommand(personAddCmd)
	personCmd.AddCommand(personGetCmd)
	personCmd.AddCommand(personListCmd)
	personCmd.AddCommand(personUpdateCmd)
	personCmd.AddCommand(personRmCmd)
}
