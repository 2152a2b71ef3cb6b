package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/dateutil"
	"planner/internal/ui"
)

func newObjectiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Manage weekly objectives",
	}
	cmd.AddCommand(newObjectiveAddCmd(), newObjectiveDoneCmd(), newObjectiveListCmd())
	return cmd
}

// resolveWeekStart turns an optional day flag into that week's Monday.
func resolveWeekStart(flag string) (string, error) {
	day := time.Now()
	if flag != "" {
		parsed, err := dateutil.ParseDay(flag)
		if err != nil {
			return "", err
		}
		day = parsed
	}
	return dateutil.FormatDay(dateutil.WeekStart(day)), nil
}

func newObjectiveAddCmd() *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an objective for a week",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			weekStart, err := resolveWeekStart(week)
			if err != nil {
				return err
			}
			objective, err := app.Objectives.Add(args[0], weekStart)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (week of %s)\n", ui.Good.Render("added"), objective.Title, objective.WeekStart)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day in the target week (YYYY-MM-DD), default this week")

	return cmd
}

func newObjectiveDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle an objective's completion",
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

			objective, err := app.Objectives.Toggle(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.Checkbox(objective.Completed), objective.Title)
			return nil
		},
	}

	return cmd
}

func newObjectiveListCmd() *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a week's objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			weekStart, err := resolveWeekStart(week)
			if err != nil {
				return err
			}
			objectives, err := app.Objectives.ListForWeek(weekStart)
			if err != nil {
				return err
			}
			fmt.Println(ui.Heading("Week of " + weekStart))
			if len(objectives) == 0 {
				fmt.Println(ui.Muted.Render("  no objectives"))
				return nil
			}
			for _, o := range objectives {
				fmt.Printf("  %s %s %s\n", ui.Checkbox(o.Completed), o.Title, ui.Muted.Render("("+shortID(o.ID)+")"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Any day in the target week (YYYY-MM-DD), default this week")

	return cmd
}
