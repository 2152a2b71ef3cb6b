package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/dateutil"
	"planner/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, m := now.Year(), now.Month()
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("parse month %q: %w", month, err)
				}
				year, m = parsed.Year(), parsed.Month()
			}

			cells := dateutil.CalendarGrid(year, m, now)

			fmt.Println(ui.Heading(fmt.Sprintf("%s %d", m, year)))
			fmt.Println(ui.Muted.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))
			var row strings.Builder
			for i, cell := range cells {
				text := fmt.Sprintf("%3d ", cell.DayOfMonth)
				switch {
				case cell.Today:
					text = ui.Good.Render(text)
				case cell.OtherMonth:
					text = ui.Muted.Render(text)
				}
				row.WriteString(text)
				if (i+1)%7 == 0 {
					fmt.Println(row.String())
					row.Reset()
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM), default current")

	return cmd
}
