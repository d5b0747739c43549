package usecases

import (
	"context"

	"github.com/google/uuid"

	"cosmos-daily/internal/domain"
	"cosmos-daily/pkg/log"
)

// MountStore defines the interface for keeping mounted views by id.
type MountStore interface {
	Put(id string, vc *ViewController)
	Get(id string) (*ViewController, bool)
}

// MountViewUseCase creates views and finds them again by id.
type MountViewUseCase struct {
	store MountStore
	fetch *FetchAPODUseCase
	base  context.Context
}

// NewMountViewUseCase creates a new MountViewUseCase. Fetches are derived
// from base, so cancelling base tears down every in-flight view.
func NewMountViewUseCase(base context.Context, store MountStore, fetch *FetchAPODUseCase) *MountViewUseCase {
	return &MountViewUseCase{
		store: store,
		fetch: fetch,
		base:  base,
	}
}

// Mount starts a new view and returns its id. The fetch is detached from
// ctx (the page request ends long before the fetch does) but keeps its
// request id for logging.
func (uc *MountViewUseCase) Mount(ctx context.Context) (string, *ViewController) {
	id := uuid.NewString()

	fetchCtx := log.WithFields(uc.base, "mount_id", id)
	if reqID := log.RequestIDFromContext(ctx); reqID != "" {
		fetchCtx = log.WithRequestID(fetchCtx, reqID)
	}

	vc := StartViewController(fetchCtx, uc.fetch.Execute)
	uc.store.Put(id, vc)

	log.GlobalDebugCtx(ctx, "view mounted", "mount_id", id)
	return id, vc
}

// Lookup returns the view mounted under id.
func (uc *MountViewUseCase) Lookup(id string) (*ViewController, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidMountID
	}
	vc, ok := uc.store.Get(id)
	if !ok {
		return nil, domain.ErrMountNotFound
	}
	return vc, nil
}
