package queries

import (
	"context"
	"time"

	"service-marketplace/internal/domain/ledger"

	"github.com/google/uuid"
)

type TransactionReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, ks Keyset) ([]*TransactionView, error)
	List(ctx context.Context, txType *ledger.Type, ks Keyset) ([]*TransactionView, error)
	Summary(ctx context.Context) ([]*TransactionSummaryItem, error)
}

type TransactionQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	// ListAll filters by type when txType is not empty.
	ListAll(ctx context.Context, txType string, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	Summary(ctx context.Context) ([]*TransactionSummaryItem, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByUser(ctx, userID, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, transactionKey)
	return items, next, nil
}

func (q *transactionQueriesImpl) ListAll(ctx context.Context, txType string, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	var filter *ledger.Type
	if txType != "" {
		t, err := ledger.ParseType(txType)
		if err != nil {
			return nil, nil, err
		}
		filter = &t
	}
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, transactionKey)
	return items, next, nil
}

func (q *transactionQueriesImpl) Summary(ctx context.Context) ([]*TransactionSummaryItem, error) {
	return q.store.Summary(ctx)
}

func transactionKey(v *TransactionView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
