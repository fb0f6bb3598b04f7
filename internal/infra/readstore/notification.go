package readstore

import (
	"context"

	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, ks queries.Keyset) ([]*queries.NotificationView, error) {
	after, afterID := keysetArgs(ks)
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, sqlc.ListNotificationsByUserParams{
		UserID:         userID,
		UnreadOnly:     unreadOnly,
		AfterCreatedAt: after,
		AfterID:        afterID,
		RowLimit:       ks.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return toViews[queries.NotificationView](rows)
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}
