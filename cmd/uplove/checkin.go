// Check-in commands: add, get, list, update, rm.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/uplove-app/uplove/pkg/types"
)

// dateLayout is the accepted format for check-in dates on the command line.
const dateLayout = "2006-01-02"

var (
	checkinPillars   []string
	checkinToImprove []string
	checkinToPraise  []string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Manage dated relationship check-ins",
}

var checkinAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Record a check-in",
	Long: `Record a check-in for the given date (YYYY-MM-DD). Use --pillar to
reference pillars by id, and --improve / --praise to note things to work on
and things that went well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDate(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		upLove, err := store.CreateUpLove(context.Background(), date, checkinPillars, checkinToImprove, checkinToPraise)
		if err != nil {
			return err
		}
		return printResult(upLove, func() {
			fmt.Printf("Recorded check-in %s for %s\n", upLove.ID, upLove.Date.Format(dateLayout))
		})
	},
}

var checkinGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		upLove, err := store.GetUpLove(context.Background(), args[0])
		if err != nil {
			return err
		}
		if upLove == nil {
			fmt.Println("No such check-in.")
			return nil
		}
		return printResult(upLove, func() {
			printUpLove(upLove)
		})
	},
}

var checkinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		upLoves, err := store.GetAllUpLoves(context.Background())
		if err != nil {
			return err
		}
		return printResult(upLoves, func() {
			for i := range upLoves {
				u := &upLoves[i]
				fmt.Printf("%s  %s  %d pillars, %d to improve, %d to praise\n",
					u.ID, u.Date.Format(dateLayout), len(u.Pillars), len(u.ToImprove), len(u.ToPraise))
			}
		})
	},
}

var checkinUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a check-in's pillars and notes",
	Long: `Replace a check-in's pillar references and note lists with the
values given by --pillar, --improve and --praise. The date is fixed at
creation and cannot change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateUpLove(context.Background(), args[0], checkinPillars, checkinToImprove, checkinToPraise); err != nil {
			return err
		}
		fmt.Println("Updated check-in.")
		return nil
	},
}

var checkinRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteUpLove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Removed check-in.")
		return nil
	},
}

func printUpLove(u *types.UpLove) {
	fmt.Printf("%s  %s\n", u.ID, u.Date.Format(dateLayout))
	for i := range u.Pillars {
		p := &u.Pillars[i]
		fmt.Printf("  pillar: %s (priority=%s satisfaction=%d)\n", p.Name, p.Priority, p.Satisfaction)
	}
	for _, item := range u.ToImprove {
		fmt.Printf("  improve: %s\n", item)
	}
	for _, item := range u.ToPraise {
		fmt.Printf("  praise: %s\n", item)
	}
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, types.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func addCheckinListFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&checkinPillars, "pillar", nil, "pillar id to reference (repeatable)")
	cmd.Flags().StringArrayVar(&checkinToImprove, "improve", nil, "thing to improve (repeatable)")
	cmd.Flags().StringArrayVar(&checkinToPraise, "praise", nil, "thing to praise (repeatable)")
}

func init() {
	addCheckinListFlags(checkinAddCmd)
	addCheckinListFlags(checkinUpdateCmd)

	checkinCmd.AddCommand(checkinAddCmd)
	checkinCmd.AddCommand(checkinGetCmd)
	checkinCmd.AddCommand(checkinListCmd)
	checkinCmd.AddCommand(checkinUpdateCmd)
	checkinCmd.AddCommand(checkinRmCmd)
}
