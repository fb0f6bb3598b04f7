package repository

import (
	"context"

	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with DUPLICATE_KEY when the slot already has a live booking.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, converter.BookingToStatusParams(b, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
