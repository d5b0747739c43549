package usecases

import (
	"context"
	"sync"

	"cosmos-daily/internal/domain"
	"cosmos-daily/pkg/log"
)

// FetchFunc performs the single fetch a ViewController resolves from.
type FetchFunc func(ctx context.Context) (*domain.Record, error)

// ViewController owns the state of one mounted view. It starts in Loading,
// issues exactly one fetch at construction and moves to Failed or Ready
// exactly once. It never refetches.
type ViewController struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex
	state   domain.ViewState
	loading bool
}

// StartViewController creates a controller and starts its fetch.
// The fetch runs until it resolves, ctx ends, or Cancel is called.
func StartViewController(ctx context.Context, fetch FetchFunc) *ViewController {
	ctx, cancel := context.WithCancel(ctx)
	vc := &ViewController{
		cancel:  cancel,
		done:    make(chan struct{}),
		state:   domain.Loading{},
		loading: true,
	}
	go vc.initiate(ctx, fetch)
	return vc
}

func (vc *ViewController) initiate(ctx context.Context, fetch FetchFunc) {
	next := domain.ViewState(domain.Failed{Message: domain.MessageUnknown})

	defer func() {
		if r := recover(); r != nil {
			log.GlobalErrorCtx(ctx, "apod fetch panicked", "panic", r)
		}
		vc.resolve(next)
		vc.cancel()
	}()

	rec, err := fetch(ctx)
	switch {
	case err != nil:
		next = domain.Failed{Message: domain.FailureMessage(err)}
	case rec == nil:
		next = domain.Failed{Message: domain.MessageUnknown}
	default:
		next = domain.Ready{Record: *rec}
	}
}

// resolve writes the final state and clears the loading flag.
// Only the fetch goroutine calls it, exactly once.
func (vc *ViewController) resolve(state domain.ViewState) {
	vc.mu.Lock()
	vc.state = state
	vc.loading = false
	vc.mu.Unlock()
	close(vc.done)
}

// State returns the current view state.
func (vc *ViewController) State() domain.ViewState {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.state
}

// Loading reports whether the fetch is still in flight.
func (vc *ViewController) Loading() bool {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return vc.loading
}

// Done is closed once the state has left Loading.
func (vc *ViewController) Done() <-chan struct{} {
	return vc.done
}

// Wait blocks until the controller resolves or ctx ends, then returns the
// state at that moment. The error is ctx.Err() when ctx ended first.
func (vc *ViewController) Wait(ctx context.Context) (domain.ViewState, error) {
	select {
	case <-vc.done:
		return vc.State(), nil
	case <-ctx.Done():
		return vc.State(), ctx.Err()
	}
}

// Cancel aborts an in-flight fetch. The controller still resolves, to
// Failed with the cancellation message. Cancel after resolution is a no-op.
func (vc *ViewController) Cancel() {
	vc.cancel()
}
