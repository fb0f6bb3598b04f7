package repository

import (
	"context"

	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RefundQueries interface {
	CreateRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefundParams) error
	FindRefundByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Refunds, error)
	UpdateRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRefundParams) (int64, error)
}

type RefundRepository struct {
	queries RefundQueries
	db      sqlc.DBTX
}

func NewRefundRepository(queries RefundQueries, db sqlc.DBTX) *RefundRepository {
	return &RefundRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RefundRepository) Create(ctx context.Context, rf *refund.Refund) error {
	if err := r.queries.CreateRefund(ctx, r.db, converter.RefundToCreateParams(rf)); err != nil {
		return infra.WrapRepoErr("failed to create refund", err)
	}
	return nil
}

func (r *RefundRepository) FindByID(ctx context.Context, id uuid.UUID) (*refund.Refund, error) {
	row, err := r.queries.FindRefundByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find refund by ID", err)
	}
	return converter.RefundToDomain(row), nil
}

func (r *RefundRepository) Update(ctx context.Context, rf *refund.Refund, from refund.Status) error {
	n, err := r.queries.UpdateRefund(ctx, r.db, converter.RefundToUpdateParams(rf, from))
	if err != nil {
		return infra.WrapRepoErr("failed to update refund", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("refund changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
