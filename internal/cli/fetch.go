package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"cosmos-daily/internal/domain"
	"cosmos-daily/internal/usecases"
)

// ErrFetchFailed is returned by the fetch command when the view resolved
// to Failed.
var ErrFetchFailed = errors.New("fetch failed")

func (a *App) fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch today's picture once and print the resolved state as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop, err := a.startLogging(stderr)
			if err != nil {
				return err
			}
			defer stop()

			fetch, err := a.newFetchUseCase()
			if err != nil {
				return err
			}

			vc := usecases.StartViewController(cmd.Context(), fetch.Execute)
			<-vc.Done()
			state := vc.State()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(domain.NewSnapshot(state)); err != nil {
				return err
			}

			if f, ok := state.(domain.Failed); ok {
				return errors.Join(ErrFetchFailed, errors.New(f.Message))
			}
			return nil
		},
	}
}
