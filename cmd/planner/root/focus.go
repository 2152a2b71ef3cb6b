package root

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus <task-id>",
		Short: "Run a focus session against a task",
		Long:  "Counts down the given number of minutes and marks the task complete when the timer reaches zero. Ctrl-C cancels the session and leaves the task open.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if minutes <= 0 {
				settings, err := app.Settings.Get()
				if err != nil {
					return err
				}
				minutes = settings.PomodoroLength
			}

			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)
			go func() {
				<-sig
				app.Focus.Stop()
			}()

			fmt.Printf("%s %dm on %s\n", ui.Heading("Focus:"), minutes, shortID(id))
			completed, err := app.Focus.Run(id, minutes, func(remaining int) {
				if remaining%60 == 0 {
					fmt.Printf("  %d minutes left\n", remaining/60)
				}
			})
			if err != nil {
				return err
			}
			if completed {
				fmt.Println(ui.Good.Render("session complete, task done"))
			} else {
				fmt.Println(ui.Warn.Render("session cancelled"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length, default the pomodoro setting")

	return cmd
}
