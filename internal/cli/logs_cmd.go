package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/timelog/pkg/client"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var req client.CreateLogRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log time spent on an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			created, err := app.client().CreateLog(ctx, req)
			if err != nil {
				return fmt.Errorf("adding entry: %w", err)
			}
			return app.render(cmd.OutOrStdout(), created, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "Log entry created")
				printLog(cmd.OutOrStdout(), created)
			})
		},
	}

	cmd.Flags().StringVar(&req.Activity, "activity", "", "Activity name")
	cmd.Flags().IntVar(&req.Minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().StringVar(&req.Date, "date", "", "Day of the entry, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category (default General)")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Comma separated tags")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Free text notes")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var params client.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			page, err := app.client().ListLogs(ctx, params)
			if err != nil {
				return fmt.Errorf("listing entries: %w", err)
			}
			return app.render(cmd.OutOrStdout(), page, func() {
				printLogs(cmd.OutOrStdout(), page.Logs)
				fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d entries\n", page.CurrentPage, page.TotalPages, page.TotalLogs)
			})
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "Entries per page")
	cmd.Flags().StringVar(&params.Activity, "activity", "", "Filter by activity substring")
	cmd.Flags().StringVar(&params.Category, "category", "", "Filter by category substring")
	cmd.Flags().StringVar(&params.Date, "date", "", "Filter by day, YYYY-MM-DD")

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the entries and totals of one day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().Format(entity.DayLayout)
			if len(args) == 1 {
				day = args[0]
			}
			ctx, cancel := app.context(cmd)
			defer cancel()
			dl, err := app.client().DayLog(ctx, day)
			if err != nil {
				return fmt.Errorf("fetching day %s: %w", day, err)
			}
			return app.render(cmd.OutOrStdout(), dl, func() {
				w := cmd.OutOrStdout()
				printLogs(w, dl.Logs)
				printTotal(w, day+":", dl.DailyTotal, dl.TotalEntries)
			})
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	var (
		activity, date, category, notes string
		minutes                         int
		tags                            []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an entry",
		Long:  `Only the flags given on the command line are sent; other fields keep their values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry ID: %w", err)
			}
			var req client.UpdateLogRequest
			flags := cmd.Flags()
			if flags.Changed("activity") {
				req.Activity = &activity
			}
			if flags.Changed("minutes") {
				req.Minutes = &minutes
			}
			if flags.Changed("date") {
				req.Date = &date
			}
			if flags.Changed("category") {
				req.Category = &category
			}
			if flags.Changed("notes") {
				req.Notes = &notes
			}
			if flags.Changed("tags") {
				req.Tags = &tags
			}
			ctx, cancel := app.context(cmd)
			defer cancel()
			updated, err := app.client().UpdateLog(ctx, id, req)
			if client.IsNotFound(err) {
				return fmt.Errorf("entry not found: %s", id)
			}
			if err != nil {
				return fmt.Errorf("updating entry: %w", err)
			}
			return app.render(cmd.OutOrStdout(), updated, func() {
				fmt.Fprintln(cmd.OutOrStdout(), "Log entry updated")
				printLog(cmd.OutOrStdout(), updated)
			})
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "Activity name")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Day of the entry, YYYY-MM-DD")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma separated tags, replaces the current ones")
	cmd.Flags().StringVar(&notes, "notes", "", "Free text notes")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry ID: %w", err)
			}
			ctx, cancel := app.context(cmd)
			defer cancel()
			deleted, err := app.client().DeleteLog(ctx, id)
			if client.IsNotFound(err) {
				return fmt.Errorf("entry not found: %s", id)
			}
			if err != nil {
				return fmt.Errorf("deleting entry: %w", err)
			}
			return app.render(cmd.OutOrStdout(), deleted, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s, %s)\n", deleted.ID, deleted.Activity, formatMinutes(deleted.Minutes))
			})
		},
	}
}
