package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

func newListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the plan for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := resolveDay(date)
			if err != nil {
				return err
			}
			sum, err := app.Planner.DaySummary(day)
			if err != nil {
				return err
			}

			fmt.Println(ui.Heading("Plan for " + sum.Day))
			if len(sum.Tasks) == 0 {
				fmt.Println(ui.Muted.Render("  no tasks planned"))
			}
			for _, t := range sum.Tasks {
				fmt.Printf("  %s %s %s\n", ui.Checkbox(t.Completed), t.Title,
					ui.Muted.Render(fmt.Sprintf("(%s, %s, %dm, %s)", t.Priority, t.Category, t.Duration, shortID(t.ID))))
			}

			if len(sum.Blocks) > 0 {
				fmt.Println(ui.Heading("Schedule"))
				for _, b := range sum.Blocks {
					fmt.Printf("  %s-%s %s\n", b.StartTime, b.EndTime, b.Title)
				}
			}

			fmt.Printf("%s %dm planned, %s of daily budget\n",
				ui.Key.Render("Capacity:"), sum.PlannedMinutes,
				ui.CapacityText(sum.CapacityPercent, string(sum.CapacityStatus)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")

	return cmd
}

// shortID abbreviates a UUID for display; full IDs still work everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
