package repository

import (
	"context"

	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LedgerQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) error
	FindBookingPayment(ctx context.Context, db sqlc.DBTX, bookingID pgtype.UUID) (sqlc.Transactions, error)
}

// LedgerRepository only appends; rows are never rewritten from the write side.
type LedgerRepository struct {
	queries LedgerQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LedgerRepository) Append(ctx context.Context, t *ledger.Transaction) error {
	if err := r.queries.CreateTransaction(ctx, r.db, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to append transaction", err)
	}
	return nil
}

func (r *LedgerRepository) FindBookingPayment(ctx context.Context, bookingID uuid.UUID) (*ledger.Transaction, error) {
	row, err := r.queries.FindBookingPayment(ctx, r.db, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking payment", err)
	}
	return converter.TransactionToDomain(row), nil
}
