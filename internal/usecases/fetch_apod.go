package usecases

import (
	"context"
	"time"

	"cosmos-daily/internal/domain"
	"cosmos-daily/pkg/log"
)

// RecordFetcher defines the interface for retrieving today's APOD record.
type RecordFetcher interface {
	FetchAPOD(ctx context.Context) (*domain.Record, error)
}

// FetchAPODUseCase performs one bounded fetch of the APOD record.
type FetchAPODUseCase struct {
	fetcher RecordFetcher
	timeout time.Duration
}

// NewFetchAPODUseCase creates a new FetchAPODUseCase. A zero timeout leaves
// the fetch bounded only by the caller's context.
func NewFetchAPODUseCase(fetcher RecordFetcher, timeout time.Duration) *FetchAPODUseCase {
	return &FetchAPODUseCase{fetcher: fetcher, timeout: timeout}
}

// Execute fetches the record once. It never retries.
func (uc *FetchAPODUseCase) Execute(ctx context.Context) (*domain.Record, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	rec, err := uc.fetcher.FetchAPOD(ctx)
	if err != nil {
		log.GlobalWarnCtx(ctx, "apod fetch failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	log.GlobalInfoCtx(ctx, "apod fetched",
		"date", rec.Date,
		"media_type", string(rec.MediaType),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
