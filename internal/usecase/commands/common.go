package commands

import (
	"context"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// outbox collects notifications inside a transaction. They are sent only after commit.
type outbox struct {
	items []outboxItem
}

type outboxItem struct {
	userID uuid.UUID
	msg    notification.Message
}

func (o *outbox) add(userID uuid.UUID, t notification.Type, title, body string) {
	o.items = append(o.items, outboxItem{userID: userID, msg: notification.Message{Type: t, Title: title, Body: body}})
}

// reset is called at the top of each transaction attempt.
func (o *outbox) reset() { o.items = o.items[:0] }

func (o *outbox) flush(ctx context.Context, n shared.Notifier) {
	if n == nil {
		return
	}
	for _, it := range o.items {
		n.Notify(context.WithoutCancel(ctx), it.userID, it.msg)
	}
}

// notFoundAs replaces a repository NOT_FOUND with a domain error.
func notFoundAs(err, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}

// conflictAs replaces a lost compare-and-set with a domain error.
func conflictAs(err, domainErr error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return domainErr
	}
	return err
}

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)
