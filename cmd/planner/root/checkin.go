package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/repository"
	"planner/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	var date, highlight, reflection, wins string
	var mood, energy, sleep int

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record a daily check-in",
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

			patch := repository.DayPatch{}
			if cmd.Flags().Changed("highlight") {
				patch.Highlight = &highlight
			}
			if cmd.Flags().Changed("reflection") {
				patch.Reflection = &reflection
			}
			if cmd.Flags().Changed("wins") {
				patch.Wins = &wins
			}
			if cmd.Flags().Changed("mood") {
				patch.Mood = &mood
			}
			if cmd.Flags().Changed("energy") {
				patch.Energy = &energy
			}
			if cmd.Flags().Changed("sleep") {
				patch.Sleep = &sleep
			}

			entry, err := app.DayLog.Put(day, patch)
			if err != nil {
				return err
			}

			fmt.Println(ui.Good.Render("checked in ") + day)
			if entry.Mood != nil {
				fmt.Println(ui.LabelValue("mood", *entry.Mood))
			}
			if entry.Energy != nil {
				fmt.Println(ui.LabelValue("energy", *entry.Energy))
			}
			if entry.Sleep != nil {
				fmt.Println(ui.LabelValue("sleep", *entry.Sleep))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&highlight, "highlight", "", "Highlight of the day")
	cmd.Flags().StringVar(&reflection, "reflection", "", "Evening reflection")
	cmd.Flags().StringVar(&wins, "wins", "", "Wins of the day")
	cmd.Flags().IntVar(&mood, "mood", 0, "Mood rating 1-5")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy rating 1-5")
	cmd.Flags().IntVar(&sleep, "sleep", 0, "Sleep rating 1-5")

	return cmd
}
