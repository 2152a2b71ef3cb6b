package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/ui"
)

func newBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage time blocks",
	}
	cmd.AddCommand(newBlockAddCmd(), newBlockListCmd(), newBlockRmCmd())
	return cmd
}

func newBlockAddCmd() *cobra.Command {
	var start, end, category, date string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a time block",
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

			c, err := model.ParseCategory(category)
			if err != nil {
				return err
			}
			day, err := resolveDay(date)
			if err != nil {
				return err
			}
			block, err := app.Blocks.Add(repository.TimeBlockInput{
				Title:     args[0],
				StartTime: start,
				EndTime:   end,
				Category:  c,
				Date:      day,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s-%s %s\n", ui.Good.Render("added"), block.StartTime, block.EndTime, block.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "personal", "Category (work|personal|health|learning)")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBlockListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's time blocks",
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
			blocks, err := app.Blocks.ListForDate(day)
			if err != nil {
				return err
			}
			if len(blocks) == 0 {
				fmt.Println(ui.Muted.Render("no blocks for " + day))
				return nil
			}
			for _, b := range blocks {
				fmt.Printf("%s-%s %s %s\n", b.StartTime, b.EndTime, b.Title,
					ui.Muted.Render(fmt.Sprintf("(%s, %s)", b.Category, shortID(b.ID))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD), default today")

	return cmd
}

func newBlockRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a time block",
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

			if err := app.Blocks.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println(ui.Good.Render("deleted ") + shortID(args[0]))
			return nil
		},
	}

	return cmd
}
