package readstore

import (
	"context"

	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionReadQueries interface {
	ListTransactionsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsByUserParams) ([]sqlc.Transactions, error)
	ListTransactions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsParams) ([]sqlc.Transactions, error)
	SummarizeTransactions(ctx context.Context, db sqlc.DBTX) ([]sqlc.SummarizeTransactionsRow, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) ListByUser(ctx context.Context, userID uuid.UUID, ks queries.Keyset) ([]*queries.TransactionView, error) {
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListTransactionsByUser(ctx, r.db, sqlc.ListTransactionsByUserParams{
		UserID:         userID,
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user transactions", err)
	}
	return toViews[queries.TransactionView](rows)
}

func (r *TransactionReadStore) List(ctx context.Context, txType *ledger.Type, ks queries.Keyset) ([]*queries.TransactionView, error) {
	filter := pgtype.Text{}
	if txType != nil {
		filter = pgconv.StringToPgtype(txType.String())
	}
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListTransactions(ctx, r.db, sqlc.ListTransactionsParams{
		TxType:         filter,
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	return toViews[queries.TransactionView](rows)
}

func (r *TransactionReadStore) Summary(ctx context.Context) ([]*queries.TransactionSummaryItem, error) {
	rows, err := r.queries.SummarizeTransactions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize transactions", err)
	}
	return toViews[queries.TransactionSummaryItem](rows)
}
