// Package cli wires the cosmos commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cosmos-daily/internal/adapters/nasa"
	"cosmos-daily/internal/config"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/pkg/log"
	"cosmos-daily/pkg/log/transporters"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root       *cobra.Command
	configPath string
	cfg        config.Config
}

// NewApp creates the cosmos command tree.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "cosmos",
		Short: "NASA's Astronomy Picture of the Day, in the browser or the terminal",
		Long: `Cosmos Daily fetches NASA's Astronomy Picture of the Day once per view
and shows it while loading, on failure, or when ready.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to the YAML config file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.viewCmd())
	a.root.AddCommand(a.fetchCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cosmos %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx available to commands.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// startLogging installs the global logger writing to w in the configured
// format. The returned func flushes it.
func (a *App) startLogging(w io.Writer) (func(), error) {
	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var t log.Transporter
	switch a.cfg.LogFormat {
	case "console":
		t = transporters.NewConsoleWithWriter(w)
	default:
		t = transporters.NewStdoutWithWriter(w)
	}

	logger := log.New(level, t)
	log.SetDefault(logger)
	return func() {
		log.SetDefault(nil)
		logger.Close()
	}, nil
}

// newFetchUseCase builds the APOD client and wraps it in the fetch use case.
func (a *App) newFetchUseCase() (*usecases.FetchAPODUseCase, error) {
	client, err := nasa.NewClient(a.cfg.APODEndpoint, a.cfg.APODAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating APOD client: %w", err)
	}
	return usecases.NewFetchAPODUseCase(client, a.cfg.FetchTimeout), nil
}

// stderr is where commands that own stdout send their logs.
var stderr io.Writer = os.Stderr
