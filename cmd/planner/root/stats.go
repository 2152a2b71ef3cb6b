package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/dateutil"
	"planner/internal/derive"
	"planner/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Productivity statistics over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			// Default to the trailing 7 days, today included.
			now := time.Now()
			if to == "" {
				to = dateutil.FormatDay(now)
			}
			if from == "" {
				from = dateutil.FormatDay(now.AddDate(0, 0, -6))
			}
			if _, err := dateutil.ParseDay(from); err != nil {
				return err
			}
			if _, err := dateutil.ParseDay(to); err != nil {
				return err
			}

			stats, err := app.Planner.RangeReport(from, to)
			if err != nil {
				return err
			}

			fmt.Println(ui.Heading(fmt.Sprintf("Stats %s .. %s", from, to)))
			fmt.Println(ui.LabelValue("tasks", fmt.Sprintf("%d/%d completed (%d%%)", stats.CompletedTasks, stats.TotalTasks, stats.CompletionRate)))
			fmt.Println(ui.LabelValue("habits", fmt.Sprintf("%d%%", stats.HabitCompletionRate)))
			if stats.AverageMood != nil {
				fmt.Println(ui.LabelValue("avg mood", fmt.Sprintf("%.1f", *stats.AverageMood)))
			} else {
				fmt.Println(ui.LabelValue("avg mood", "no data"))
			}
			fmt.Println(ui.LabelValue("focus hours", fmt.Sprintf("%.1f", stats.FocusHours)))
			fmt.Println(ui.LabelValue("score", derive.ProductivityScore(stats)))

			if err := printCompletionChart(app, from, to); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD), default 6 days ago")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD), default today")

	return cmd
}

// printCompletionChart renders completed tasks per day as horizontal bars.
func printCompletionChart(app *App, from, to string) error {
	start, err := dateutil.ParseDay(from)
	if err != nil {
		return err
	}
	end, err := dateutil.ParseDay(to)
	if err != nil {
		return err
	}
	n := dateutil.DaysBetween(start, end)
	if n == 0 || n > 31 {
		return nil
	}

	tasks, err := app.Tasks.ListRange(from, to)
	if err != nil {
		return err
	}
	counts := make([]int, n)
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = dateutil.FormatDay(start.AddDate(0, 0, i))
	}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		for i, day := range days {
			if t.Date == day {
				counts[i]++
				break
			}
		}
	}

	heights := derive.BarHeights(counts, 20)
	fmt.Println()
	for i, day := range days {
		fmt.Printf("%s %s %d\n", ui.Muted.Render(day), ui.Bar(heights[i]), counts[i])
	}
	return nil
}
