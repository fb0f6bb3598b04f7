package notify

import (
	"context"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type Composite []shared.Notifier

func NewComposite(notifiers ...shared.Notifier) Composite {
	out := make(Composite, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (c Composite) Notify(ctx context.Context, userID uuid.UUID, msg notification.Message) {
	for _, n := range c {
		n.Notify(ctx, userID, msg)
	}
}
