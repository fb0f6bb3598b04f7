package readstore

import (
	"context"

	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundReadQueries interface {
	ListPendingRefunds(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]sqlc.ListPendingRefundsRow, error)
	ListRefundsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListRefundsByCustomerRow, error)
}

type RefundReadStore struct {
	queries RefundReadQueries
	db      sqlc.DBTX
}

func NewRefundReadStore(queries RefundReadQueries, db sqlc.DBTX) *RefundReadStore {
	return &RefundReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RefundReadStore) ListPending(ctx context.Context, limit int32) ([]*queries.RefundView, error) {
	rows, err := r.queries.ListPendingRefunds(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending refunds", err)
	}
	return toViews[queries.RefundView](rows)
}

func (r *RefundReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.RefundView, error) {
	rows, err := r.queries.ListRefundsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer refunds", err)
	}
	return toViews[queries.RefundView](rows)
}
