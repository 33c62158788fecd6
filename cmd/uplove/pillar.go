// Pillar commands: add, get, list, update, rm, stats.
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/uplove-app/uplove/pkg/types"
)

var pillarCmd = &cobra.Command{
	Use:   "pillar",
	Short: "Manage relationship pillars",
}

var pillarAddCmd = &cobra.Command{
	Use:   "add <name> <priority> <satisfaction>",
	Short: "Add a pillar",
	Long: `Add a pillar. Priority is one of very-low, low, medium, high or
very-high; satisfaction is a score from 1 to 10.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		satisfaction, err := parseSatisfaction(args[2])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		pillar, err := store.CreatePillar(context.Background(), args[0], args[1], satisfaction)
		if err != nil {
			return err
		}
		return printResult(pillar, func() {
			fmt.Printf("Added pillar %s (%s)\n", pillar.Name, pillar.ID)
		})
	},
}

var pillarGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a pillar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		pillar, err := store.GetPillar(context.Background(), args[0])
		if err != nil {
			return err
		}
		if pillar == nil {
			fmt.Println("No such pillar.")
			return nil
		}
		return printResult(pillar, func() {
			printPillar(pillar)
		})
	},
}

var pillarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pillars",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		pillars, err := store.GetAllPillars(context.Background())
		if err != nil {
			return err
		}
		return printResult(pillars, func() {
			for i := range pillars {
				printPillar(&pillars[i])
			}
		})
	},
}

var pillarUpdateCmd = &cobra.Command{
	Use:   "update <id> <name> <priority> <satisfaction>",
	Short: "Update a pillar",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		satisfaction, err := parseSatisfaction(args[3])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdatePillar(context.Background(), args[0], args[1], args[2], satisfaction); err != nil {
			return err
		}
		fmt.Println("Updated pillar.")
		return nil
	},
}

var pillarRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a pillar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeletePillar(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed pillar.")
		return nil
	},
}

var pillarStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show satisfaction stats per priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.GetPillarStats(context.Background())
		if err != nil {
			return err
		}
		return printResult(stats, func() {
			fmt.Printf("%d pillars\n", stats.Total)
			for _, ps := range stats.ByPriority {
				if ps.Count == 0 {
					continue
				}
				fmt.Printf("  %-10s %d (mean satisfaction %.1f)\n", ps.Priority, ps.Count, ps.MeanSatisfaction)
			}
		})
	},
}

func printPillar(p *types.Pillar) {
	fmt.Printf("%s  %s  priority=%s satisfaction=%d\n", p.ID, p.Name, p.Priority, p.Satisfaction)
}

func parseSatisfaction(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NewValidationError("satisfaction must be an integer")
	}
	return n, nil
}

func init() {
	pillarCmd.AddCommand(pillarAddCmd)
	pillarCmd.AddCommand(pillarGetCmd)
	pillarCmd.AddCommand(pillarListCmd)
	pillarCmd.AddCommand(pillarUpdateCmd)
	pillarCmd.AddCommand(pillarRmCmd)
	pillarCmd.AddCommand(pillarStatsCmd)
}
