package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planner/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Local-first personal planner",
	Long:          "Planner is a local-first daily planner: tasks, time blocks, habits, goals and daily check-ins, stored in a single SQLite file.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newWeekCmd(),
		newDoneCmd(),
		newRmCmd(),
		newHabitCmd(),
		newBlockCmd(),
		newGoalCmd(),
		newObjectiveCmd(),
		newCheckinCmd(),
		newStatsCmd(),
		newCalendarCmd(),
		newFocusCmd(),
		newExportCmd(),
		newImportCmd(),
		newRemindCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
