package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, ks Keyset) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	ks, limit, err := NewKeyset(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListByUser(ctx, userID, unreadOnly, ks)
	if err != nil {
		return nil, nil, err
	}
	items, next := Page(rows, limit, func(v *NotificationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return items, next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, userID)
}
