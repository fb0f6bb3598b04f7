package queries

import (
	"context"
	"time"

	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccess = errs.Forbidden("booking access denied")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, ks Keyset) ([]*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, ks Keyset) ([]*BookingView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/booking.go -package=queriesmock . BookingQueries

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	switch actorRole {
	case user.RoleAdmin:
	case user.RoleCustomer:
		if v.CustomerID != actorID {
			return nil, ErrBookingAccess
		}
	case user.RoleServiceProvider:
		if v.ProviderID != actorID {
			return nil, ErrBookingAccess
		}
	default:
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByCustomer(ctx, customerID, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, bookingKey)
	return items, next, nil
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByProvider(ctx, providerID, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, bookingKey)
	return items, next, nil
}

func bookingKey(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
