package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/dateutil"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string
	var category string
	var duration int
	var date string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
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

			p, err := model.ParsePriority(priority)
			if err != nil {
				return err
			}
			c, err := model.ParseCategory(category)
			if err != nil {
				return err
			}
			day, err := resolveDay(date)
			if err != nil {
				return err
			}

			task, err := app.Tasks.Add(repository.TaskInput{
				Title:    args[0],
				Priority: p,
				Category: c,
				Duration: duration,
				Date:     day,
			}, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("%s %s (%s)\n", ui.Good.Render("added"), task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high|medium|low)")
	cmd.Flags().StringVarP(&category, "category", "c", "personal", "Category (work|personal|health|learning)")
	cmd.Flags().IntVarP(&duration, "duration", "d", model.DefaultDuration, "Estimated minutes")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")

	return cmd
}

func resolveToday() string {
	return dateutil.FormatDay(time.Now())
}

// resolveDay validates a --date flag, defaulting to today.
func resolveDay(flag string) (string, error) {
	if flag == "" {
		return dateutil.FormatDay(time.Now()), nil
	}
	if _, err := dateutil.ParseDay(flag); err != nil {
		return "", err
	}
	return flag, nil
}
