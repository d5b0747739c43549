package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cosmos-daily/internal/adapters/tui"
	"cosmos-daily/internal/usecases"
)

func (a *App) viewCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show today's picture in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The terminal belongs to the viewer; logs go to a file or nowhere.
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				stop, err := a.startLogging(f)
				if err != nil {
					return err
				}
				defer stop()
			}

			fetch, err := a.newFetchUseCase()
			if err != nil {
				return err
			}

			vc := usecases.StartViewController(cmd.Context(), fetch.Execute)
			defer vc.Cancel()
			return tui.Run(cmd.Context(), vc)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	return cmd
}
