package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/shared"
)

var ErrNotAProvider = errs.Validation("user is not a service provider")

type AdminCommands interface {
	ApproveProvider(ctx context.Context, providerID uuid.UUID) error
	RejectProvider(ctx context.Context, providerID uuid.UUID, reason string) error
}

type adminCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
}

func NewAdminCommands(uow shared.UnitOfWork, notifier shared.Notifier) AdminCommands {
	return &adminCommandsImpl{uow: uow, notifier: notifier}
}

func (c *adminCommandsImpl) ApproveProvider(ctx context.Context, providerID uuid.UUID) error {
	err := c.decide(ctx, providerID, (*user.User).Approve)
	if err != nil {
		return err
	}
	slog.Info("provider approved", "provider_id", providerID)
	c.notifier.Notify(ctx, providerID, notification.Message{
		Type:  notification.TypeAccountApproved,
		Title: "Account approved",
		Body:  "Your provider account has been approved. You can now subscribe and publish services.",
	})
	return nil
}

func (c *adminCommandsImpl) RejectProvider(ctx context.Context, providerID uuid.UUID, reason string) error {
	err := c.decide(ctx, providerID, (*user.User).Reject)
	if err != nil {
		return err
	}
	slog.Info("provider rejected", "provider_id", providerID)

	body := "Your provider account application has been rejected."
	if reason != "" {
		body += " Reason: " + reason
	}
	c.notifier.Notify(ctx, providerID, notification.Message{
		Type:  notification.TypeAccountRejected,
		Title: "Account rejected",
		Body:  body,
	})
	return nil
}

func (c *adminCommandsImpl) decide(ctx context.Context, providerID uuid.UUID, apply func(*user.User) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, providerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if !u.IsProvider() {
			return ErrNotAProvider
		}
		from := u.AccountStatus()
		if err := apply(u); err != nil {
			return err
		}
		return conflictAs(tx.Users().UpdateStatus(ctx, u, from), user.ErrNotPendingApproval)
	})
}
