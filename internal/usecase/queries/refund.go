package queries

import (
	"context"

	"github.com/google/uuid"
)

type RefundReadStore interface {
	ListPending(ctx context.Context, limit int32) ([]*RefundView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RefundView, error)
}

type RefundQueries interface {
	// ListPending is oldest first so admins work the queue in request order.
	ListPending(ctx context.Context, limit int) ([]*RefundView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RefundView, error)
}

type refundQueriesImpl struct {
	store RefundReadStore
}

func NewRefundQueries(store RefundReadStore) RefundQueries {
	return &refundQueriesImpl{store: store}
}

func (q *refundQueriesImpl) ListPending(ctx context.Context, limit int) ([]*RefundView, error) {
	// #nosec G115 -- capped by MaxListLimit
	return q.store.ListPending(ctx, int32(ValidateLimit(limit)))
}

func (q *refundQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*RefundView, error) {
	return q.store.ListByCustomer(ctx, customerID)
}
