// Commitment commands. Todos and things-to-keep share the same shape, so
// both command trees come out of one builder.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uplove-app/uplove/internal/sqlite"
	"github.com/uplove-app/uplove/pkg/types"
)

var todoCmd = newCommitmentCmd("todo", "Manage action items", commitmentOps{
	create: (*sqlite.Store).CreateTodo,
	get:    (*sqlite.Store).GetTodo,
	list:   (*sqlite.Store).GetAllTodos,
	update: (*sqlite.Store).UpdateTodo,
	remove: (*sqlite.Store).DeleteTodo,
	noun:   "todo",
})

var keepCmd = newCommitmentCmd("keep", "Manage habits worth keeping", commitmentOps{
	create: (*sqlite.Store).CreateToKeep,
	get:    (*sqlite.Store).GetToKeep,
	list:   (*sqlite.Store).GetAllToKeeps,
	update: (*sqlite.Store).UpdateToKeep,
	remove: (*sqlite.Store).DeleteToKeep,
	noun:   "keep",
})

type commitmentOps struct {
	create func(s *sqlite.Store, ctx context.Context, description string, isDone bool) (*types.Commitment, error)
	get    func(s *sqlite.Store, ctx context.Context, id string) (*types.Commitment, error)
	list   func(s *sqlite.Store, ctx context.Context) ([]types.Commitment, error)
	update func(s *sqlite.Store, ctx context.Context, id, description string, isDone bool) error
	remove func(s *sqlite.Store, ctx context.Context, id string) error
	noun   string
}

func newCommitmentCmd(use, short string, ops commitmentOps) *cobra.Command {
	root := &cobra.Command{Use: use, Short: short}

	root.AddCommand(&cobra.Command{
		Use:   "add <description>",
		Short: "Add a " + ops.noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := ops.create(store, context.Background(), args[0], false)
			if err != nil {
				return err
			}
			return printResult(c, func() {
				fmt.Printf("Added %s (%s)\n", ops.noun, c.ID)
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a " + ops.noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			c, err := ops.get(store, context.Background(), args[0])
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Printf("No such %s.\n", ops.noun)
				return nil
			}
			return printResult(c, func() {
				fmt.Printf("%s %s  %s\n", doneMark(c.IsDone), c.ID, c.Description)
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all " + ops.noun + "s",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cs, err := ops.list(store, context.Background())
			if err != nil {
				return err
			}
			return printResult(cs, func() {
				for _, c := range cs {
					fmt.Printf("%s %s  %s\n", doneMark(c.IsDone), c.ID, c.Description)
				}
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "update <id> <description>",
		Short: "Rewrite a " + ops.noun,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			c, err := ops.get(store, ctx, args[0])
			if err != nil {
				return err
			}
			if c == nil {
				return types.NewNotFoundError(ops.noun)
			}
			if err := ops.update(store, ctx, args[0], args[1], c.IsDone); err != nil {
				return err
			}
			fmt.Printf("Updated %s.\n", ops.noun)
			return nil
		},
	})

	root.AddCommand(newMarkCmd(ops, "done", true))
	root.AddCommand(newMarkCmd(ops, "undone", false))

	root.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a " + ops.noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := ops.remove(store, context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", ops.noun)
			return nil
		},
	})

	return root
}

// newMarkCmd flips the completion flag while preserving the description.
func newMarkCmd(ops commitmentOps, use string, done bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: "Mark a " + ops.noun + " " + use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			c, err := ops.get(store, ctx, args[0])
			if err != nil {
				return err
			}
			if c == nil {
				return types.NewNotFoundError(ops.noun)
			}
			if err := ops.update(store, ctx, args[0], c.Description, done); err != nil {
				return err
			}
			fmt.Printf("Marked %s %s.\n", ops.noun, use)
			return nil
		},
	}
}
