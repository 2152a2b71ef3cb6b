package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
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

			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Toggle(id, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.Checkbox(task.Completed), task.Title)
			return nil
		},
	}

	return cmd
}

// resolveTaskID accepts a full ID or an unambiguous prefix.
func resolveTaskID(app *App, input string) (string, error) {
	tasks, err := app.Tasks.List()
	if err != nil {
		return "", err
	}
	match := ""
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if len(input) >= 4 && len(t.ID) >= len(input) && t.ID[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("ambiguous id prefix %q", input)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task with id %q", input)
	}
	return match, nil
}
