package readstore

import (
	"context"

	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/readstore/booking.go -package=readstoremock . BookingReadQueries

type BookingReadQueries interface {
	FindBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingViewByIDRow, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerParams) ([]sqlc.ListBookingsByCustomerRow, error)
	ListBookingsByProvider(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByProviderParams) ([]sqlc.ListBookingsByProviderRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return toView[queries.BookingView](row)
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID, ks queries.Keyset) ([]*queries.BookingView, error) {
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, sqlc.ListBookingsByCustomerParams{
		CustomerID:     customerID,
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	return toViews[queries.BookingView](rows)
}

func (r *BookingReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, ks queries.Keyset) ([]*queries.BookingView, error) {
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListBookingsByProvider(ctx, r.db, sqlc.ListBookingsByProviderParams{
		ProviderID:     providerID,
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list provider bookings", err)
	}
	return toViews[queries.BookingView](rows)
}
