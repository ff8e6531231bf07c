package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Today, yesterday and this week at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			d, err := app.client().Dashboard(ctx)
			if err != nil {
				return fmt.Errorf("fetching dashboard: %w", err)
			}
			return app.render(cmd.OutOrStdout(), d, func() {
				w := cmd.OutOrStdout()
				printTotal(w, "Today:", d.Today.TotalMinutes, d.Today.TotalEntries)
				fmt.Fprintf(w, "Yesterday: %s\n", formatMinutes(d.Yesterday.TotalMinutes))
				if len(d.Today.ActivitySummary) > 0 {
					fmt.Fprintln(w)
					printActivities(w, d.Today.ActivitySummary)
				}
				fmt.Fprintln(w, "\nThis week")
				printSeries(w, d.WeekStats)
				fmt.Fprintln(w, "\nTop categories")
				printCategories(w, d.TopCategories)
			})
		},
	}
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Weekly average, best day, longest session and most regular activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			ins, err := app.client().Insights(ctx)
			if err != nil {
				return fmt.Errorf("fetching insights: %w", err)
			}
			return app.render(cmd.OutOrStdout(), ins, func() {
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Weekly average: %s min/day\n", strconv.FormatFloat(ins.WeekAverage, 'f', 1, 64))
				if ins.MostProductiveDay != nil {
					fmt.Fprintf(w, "Most productive day: %s (%s)\n", ins.MostProductiveDay.Day, formatMinutes(ins.MostProductiveDay.TotalMinutes))
				}
				if ins.LongestSession != nil {
					fmt.Fprintf(w, "Longest session: %s, %s\n", ins.LongestSession.Activity, formatMinutes(ins.LongestSession.Minutes))
				}
				if len(ins.ActivityConsistency) > 0 {
					fmt.Fprintln(w, "\nMost regular")
					printActivities(w, ins.ActivityConsistency)
				}
			})
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregated statistics",
	}

	cmd.AddCommand(
		newStatsOverviewCmd(app),
		newStatsWeeklyCmd(app),
		newStatsActivitiesCmd(app),
		newStatsCategoriesCmd(app),
		newStatsTrendsCmd(app),
	)

	return cmd
}

func newStatsOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Totals over the whole history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			ov, err := app.client().Overview(ctx)
			if err != nil {
				return fmt.Errorf("fetching overview: %w", err)
			}
			return app.render(cmd.OutOrStdout(), ov, func() {
				w := cmd.OutOrStdout()
				printTotal(w, "Logged", ov.TotalMinutes, ov.TotalLogs)
				fmt.Fprintf(w, "%d activities in %d categories, %d min per entry on average\n",
					ov.UniqueActivities, ov.UniqueCategories, ov.AverageMinutesPerLog)
				if len(ov.ActivitySummary) > 0 {
					fmt.Fprintln(w)
					printActivities(w, ov.ActivitySummary)
				}
			})
		},
	}
}

func newStatsWeeklyCmd(app *App) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Per-day totals, the last seven days by default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			series, err := app.client().WeeklyStats(ctx, start, end)
			if err != nil {
				return fmt.Errorf("fetching weekly stats: %w", err)
			}
			return app.render(cmd.OutOrStdout(), series, func() {
				printSeries(cmd.OutOrStdout(), series)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last day, YYYY-MM-DD")

	return cmd
}

func newStatsActivitiesCmd(app *App) *cobra.Command {
	var (
		period string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Activities ranked by total time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			activities, err := app.client().ActivityStats(ctx, period, limit)
			if err != nil {
				return fmt.Errorf("fetching activity stats: %w", err)
			}
			return app.render(cmd.OutOrStdout(), activities, func() {
				printActivities(cmd.OutOrStdout(), activities)
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "week, month or empty for all time")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of activities")

	return cmd
}

func newStatsCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Categories ranked by total time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			categories, err := app.client().CategoryStats(ctx)
			if err != nil {
				return fmt.Errorf("fetching category stats: %w", err)
			}
			return app.render(cmd.OutOrStdout(), categories, func() {
				printCategories(cmd.OutOrStdout(), categories)
			})
		},
	}
}

func newStatsTrendsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Per-day totals for the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			trends, err := app.client().Trends(ctx, days)
			if err != nil {
				return fmt.Errorf("fetching trends: %w", err)
			}
			return app.render(cmd.OutOrStdout(), trends, func() {
				printSeries(cmd.OutOrStdout(), trends)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Number of days ending today")

	return cmd
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.context(cmd)
			defer cancel()
			if err := app.client().Health(ctx); err != nil {
				return fmt.Errorf("api at %s is not healthy: %w", app.Server, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "api at %s is up\n", app.Server)
			return nil
		},
	}
}
