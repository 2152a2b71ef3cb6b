package root

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track yearly, monthly and life-area goals",
	}
	cmd.AddCommand(newGoalAddCmd(), newGoalProgressCmd(), newGoalListCmd(), newGoalRmCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var partition, area, description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
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

			in := repository.GoalInput{Title: args[0], Description: description}
			now := time.Now()

			var goal *model.Goal
			switch {
			case area != "":
				la, err := model.ParseLifeArea(area)
				if err != nil {
					return err
				}
				goal, err = app.Goals.AddLifeArea(la, in, now)
				if err != nil {
					return err
				}
			case partition == "yearly":
				goal, err = app.Goals.AddYearly(in, now)
				if err != nil {
					return err
				}
			case partition == "monthly":
				goal, err = app.Goals.AddMonthly(in, now)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid partition %q, expected yearly or monthly", partition)
			}

			fmt.Printf("%s %s (%s)\n", ui.Good.Render("added"), goal.Title, shortID(goal.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&partition, "partition", "yearly", "Partition (yearly|monthly)")
	cmd.Flags().StringVar(&area, "area", "", "Life area (career|health|relationships|finance|learning|creativity)")
	cmd.Flags().StringVar(&description, "description", "", "Optional description")

	return cmd
}

func newGoalProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set a goal's progress",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and percent are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("percent must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			percent, _ := strconv.Atoi(args[1])
			goal, err := app.Goals.SetProgress(args[0], percent)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s: %d%%\n", ui.Good.Render("updated"), goal.Title, goal.Progress)
			return nil
		},
	}

	return cmd
}

func newGoalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			set, err := app.Goals.Get()
			if err != nil {
				return err
			}

			printGoals := func(heading string, goals []model.Goal) {
				if len(goals) == 0 {
					return
				}
				fmt.Println(ui.Heading(heading))
				for _, g := range goals {
					fmt.Printf("  %3d%% %s %s\n", g.Progress, g.Title, ui.Muted.Render("("+shortID(g.ID)+")"))
				}
			}

			printGoals("Yearly", set.Yearly)
			printGoals("Monthly", set.Monthly)
			for _, area := range model.LifeAreas {
				printGoals(string(area), set.LifeAreas[area])
			}
			return nil
		},
	}

	return cmd
}

func newGoalRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
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

			if err := app.Goals.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println(ui.Good.Render("deleted ") + shortID(args[0]))
			return nil
		},
	}

	return cmd
}
