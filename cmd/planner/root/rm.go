package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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
			if err := app.Tasks.Delete(id); err != nil {
				return err
			}
			fmt.Println(ui.Good.Render("deleted ") + shortID(id))
			return nil
		},
	}

	return cmd
}
