package root

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/service"
)

func newRemindCmd() *cobra.Command {
	var serve bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print today's plan, or run the daily reminder loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			printSummary := func() {
				sum, err := app.Planner.DaySummary(service.Today(time.Now()))
				if err != nil {
					log.Printf("summary: %v", err)
					return
				}
				fmt.Println(service.FormatDaySummary(sum))
			}

			if !serve {
				printSummary()
				return nil
			}

			scheduler := service.NewSchedulerService(time.Local)
			if _, err := scheduler.ScheduleDaily(app.Config.ReminderTime, printSummary); err != nil {
				return fmt.Errorf("schedule reminder: %w", err)
			}
			if app.Config.ReportInterval > 0 {
				if _, err := scheduler.ScheduleInterval(app.Config.ReportInterval, printSummary); err != nil {
					return fmt.Errorf("schedule report: %w", err)
				}
			}
			scheduler.Start()
			defer scheduler.Stop()

			log.Printf("reminder loop started, daily at %s", app.Config.ReminderTime)
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			log.Println("shutdown complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&serve, "serve", false, "Keep running and print the summary on schedule")

	return cmd
}
