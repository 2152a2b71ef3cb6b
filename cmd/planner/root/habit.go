package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/model"
	"planner/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track recurring habits",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitCheckCmd(), newHabitListCmd(), newHabitRmCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var frequency string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			f, err := model.ParseFrequency(frequency)
			if err != nil {
				return err
			}
			habit, err := app.Habits.Add(args[0], f, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s)\n", ui.Good.Render("added"), habit.Name, shortID(habit.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&frequency, "frequency", "f", "daily", "Frequency (daily|weekdays|weekly)")

	return cmd
}

func newHabitCheckCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Toggle a habit for a day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
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
			id, err := resolveHabitID(app, args[0])
			if err != nil {
				return err
			}
			habit, err := app.Habits.ToggleDate(id, day, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s %s\n", ui.Checkbox(habit.CompletedOn(day)), habit.Name,
				ui.Muted.Render(fmt.Sprintf("(streak %d, best %d)", habit.CurrentStreak, habit.LongestStreak)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")

	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := app.Habits.List()
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Println(ui.Muted.Render("no habits yet"))
				return nil
			}
			today := resolveToday()
			for _, h := range habits {
				fmt.Printf("%s %s %s\n", ui.Checkbox(h.CompletedOn(today)), h.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, streak %d, best %d, %s)", h.Frequency, h.CurrentStreak, h.LongestStreak, shortID(h.ID))))
			}
			return nil
		},
	}

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabitID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Delete(id); err != nil {
				return err
			}
			fmt.Println(ui.Good.Render("deleted ") + shortID(id))
			return nil
		},
	}

	return cmd
}

func resolveHabitID(app *App, input string) (string, error) {
	habits, err := app.Habits.List()
	if err != nil {
		return "", err
	}
	match := ""
	for _, h := range habits {
		if h.ID == input {
			return h.ID, nil
		}
		if len(input) >= 4 && len(h.ID) >= len(input) && h.ID[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("ambiguous id prefix %q", input)
			}
			match = h.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no habit with id %q", input)
	}
	return match, nil
}
