package commands

import (
	"context"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/usecase/shared"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

// MarkRead and Delete only touch rows owned by userID; anything else reads as not found.
func (c *notificationCommandsImpl) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Notifications().MarkRead(ctx, notificationID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return notification.ErrNotificationNotFound
		}
		return nil
	})
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Notifications().MarkAllRead(ctx, userID)
		return err
	})
	return n, err
}

func (c *notificationCommandsImpl) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Notifications().Delete(ctx, notificationID, userID)
		if err != nil {
			return err
		}
		if !ok {
			return notification.ErrNotificationNotFound
		}
		return nil
	})
}
