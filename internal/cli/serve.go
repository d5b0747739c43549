package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cosmos-daily/internal/adapters/mounts"
	"cosmos-daily/internal/adapters/web"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/pkg/log"
	"cosmos-daily/templates/theme"
)

func (a *App) serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web viewer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				a.cfg.Port = port
			}
			stop, err := a.startLogging(os.Stdout)
			if err != nil {
				return err
			}
			defer stop()
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
	return cmd
}

// serve runs the HTTP server until ctx ends, then shuts down gracefully.
// In-flight fetches are derived from ctx and are cancelled with it.
func (a *App) serve(ctx context.Context) error {
	cfg := a.cfg

	fetch, err := a.newFetchUseCase()
	if err != nil {
		return err
	}

	store := mounts.NewMemoryStore(cfg.MountTTL, sweepInterval(cfg.MountTTL))
	defer store.Close()

	views := usecases.NewMountViewUseCase(ctx, store, fetch)
	handlers := web.NewHandlers(views, web.NewRateLimiter(cfg.RateLimit, cfg.RateWindow), web.Options{
		DefaultTheme: theme.Resolve(cfg.Theme, theme.Cosmos),
		ViewWait:     cfg.ViewWait,
		PollDelay:    cfg.PollDelay,
	})
	app := web.NewApp(handlers, cfg.StaticDir)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	log.GlobalInfo("starting Cosmos Daily",
		"port", cfg.Port,
		"endpoint", cfg.APODEndpoint,
		"theme", cfg.Theme,
		"mount_ttl", cfg.MountTTL.String(),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.GlobalInfo("shutting down", "grace", cfg.ShutdownGrace.String())
	return app.ShutdownWithTimeout(cfg.ShutdownGrace)
}

// sweepInterval sweeps a few times per TTL, but not more than once a second.
func sweepInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Second)
}
