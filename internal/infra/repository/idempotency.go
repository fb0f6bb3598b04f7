package repository

import (
	"context"
	"time"

	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert blocks on a concurrent insert of the same key until that transaction ends.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, rec shared.IdempotencyRecord) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return n > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		RequestHash:     row.RequestHash,
		Status:          row.Status,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, bookingID uuid.UUID) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:             key,
		UserID:          userID,
		ResultBookingID: pgconv.UUIDToPgtype(bookingID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	params := sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
		Now:         pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}

	return n > 0, nil
}
