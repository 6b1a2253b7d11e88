// Command adsctl administers campaigns and ad groups through the campaign
// manager API, either one command at a time or through an interactive
// terminal UI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"campaign-manager/internal/adapter/apiclient"
	"campaign-manager/internal/config"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/lifecycle"
	"campaign-manager/internal/logging"
)

var (
	// Global flags
	apiURL  string
	timeout time.Duration
	verbose bool
	jsonOut bool

	app *App
)

// App is the client core shared by all commands.
type App struct {
	gw     *apiclient.Client
	ctrl   *lifecycle.Controller
	logger *slog.Logger
	closer io.Closer
}

var rootCmd = &cobra.Command{
	Use:   "adsctl",
	Short: "Manage advertising campaigns and ad groups",
	Long: `adsctl talks to the campaign manager API.

Campaigns move DRAFT -> PUBLISHED -> PAUSED. Ad groups move between
ENABLED and PAUSED and are removed for good by delete.

Run "adsctl tui" for the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("api") {
			cfg.API.BaseURL = apiURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.API.Timeout = timeout
		}
		if verbose {
			cfg.Log.Level = "debug"
		}

		// stdout belongs to command output
		logger, closer, err := logging.New(cfg.Log, os.Stderr)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		if !verbose && cfg.Log.File == "" {
			logger = logging.Discard()
		}
		gw := apiclient.New(cfg.API, logger)
		app = &App{
			gw:     gw,
			ctrl:   lifecycle.NewController(gw, logger),
			logger: logger,
			closer: closer,
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			_ = app.closer.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL including /api (default from API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per request timeout (default from API_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of tables")

	rootCmd.AddCommand(campaignsCmd, adGroupsCmd, tuiCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, "Error:", domain.UserMessage(err, err.Error()))
		os.Exit(1)
	}
}
