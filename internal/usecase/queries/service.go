package queries

import (
	"context"
	"time"

	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/infra"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListActive(ctx context.Context, ks Keyset) ([]*ServiceView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*ServiceView, *Cursor, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *serviceQueriesImpl) ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*ServiceView, *Cursor, error) {
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListActive(ctx, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, func(v *ServiceView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return items, next, nil
}

func (q *serviceQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error) {
	return q.store.ListByProvider(ctx, providerID)
}
