package notify

import (
	"context"
	"log/slog"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// StoreNotifier persists in-app notifications in their own transaction,
// after the business transaction has committed.
type StoreNotifier struct {
	uow shared.UnitOfWork
}

func NewStoreNotifier(uow shared.UnitOfWork) *StoreNotifier {
	return &StoreNotifier{uow: uow}
}

func (n *StoreNotifier) Notify(ctx context.Context, userID uuid.UUID, msg notification.Message) {
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Create(ctx, userID, msg)
	})
	if err != nil {
		slog.Error("failed to store notification",
			slog.String("user_id", userID.String()),
			slog.String("type", msg.Type.String()),
			slog.Any("error", err))
	}
}
