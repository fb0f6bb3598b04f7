package repository

import (
	"context"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteNotificationParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, userID uuid.UUID, msg notification.Message) error {
	params := sqlc.CreateNotificationParams{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    msg.Type.String(),
		Title:   msg.Title,
		Message: msg.Body,
	}

	if err := r.queries.CreateNotification(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}

	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkNotificationRead(ctx, r.db, sqlc.MarkNotificationReadParams{ID: id, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return n > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteNotification(ctx, r.db, sqlc.DeleteNotificationParams{ID: id, UserID: userID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete notification", err)
	}
	return n > 0, nil
}
