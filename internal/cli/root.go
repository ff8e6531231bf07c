package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/timelog/pkg/client"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// App holds the connection settings shared by every command.
type App struct {
	Server     string
	JSON       bool
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (a *App) client() *client.Client {
	if a.HTTPClient != nil {
		return client.New(a.Server, client.WithHTTPClient(a.HTTPClient))
	}
	return client.New(a.Server)
}

func (a *App) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.Timeout)
}

// render prints v as indented JSON when --json is set, otherwise calls human.
func (a *App) render(w io.Writer, v any, human func()) error {
	if !a.JSON {
		human()
		return nil
	}
	data, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// NewRootCmd creates the top-level "timelogctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Server == "" {
		app.Server = defaultServer
	}
	if app.Timeout <= 0 {
		app.Timeout = 15 * time.Second
	}
	root := &cobra.Command{
		Use:           "timelogctl",
		Short:         "Log time spent on activities and read the statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.Server, "server", app.Server, "Base URL of the timelog API")
	root.PersistentFlags().BoolVar(&app.JSON, "json", false, "Print raw JSON instead of tables")
	root.PersistentFlags().DurationVar(&app.Timeout, "timeout", app.Timeout, "Timeout of one command")

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDayCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newDashboardCmd(app),
		newInsightsCmd(app),
		newStatsCmd(app),
		newHealthCmd(app),
	)
	return root
}
