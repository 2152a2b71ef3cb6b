package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

func newWeekCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week at a glance",
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
			view, err := app.Planner.WeekView(day)
			if err != nil {
				return err
			}

			fmt.Println(ui.Heading("Week of " + view.WeekStart))
			for _, d := range view.Days {
				if d.TotalTasks == 0 {
					fmt.Printf("  %s %s\n", d.Day, ui.Muted.Render("free"))
					continue
				}
				fmt.Printf("  %s %d/%d tasks, %dm planned (%d%%)\n",
					d.Day, d.CompletedTasks, d.TotalTasks, d.PlannedMinutes, d.CapacityPercent)
			}

			if len(view.Objectives) > 0 {
				fmt.Println(ui.Heading("Objectives"))
				for _, o := range view.Objectives {
					fmt.Printf("  %s %s\n", ui.Checkbox(o.Completed), o.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day in the target week (YYYY-MM-DD), default today")

	return cmd
}
