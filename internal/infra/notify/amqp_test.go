//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/infra/notify"
	"service-marketplace/internal/pkg/clock"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type recordingNotifier struct {
	calls []notification.Type
}

func (r *recordingNotifier) Notify(_ context.Context, _ uuid.UUID, msg notification.Message) {
	r.calls = append(r.calls, msg.Type)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "notification.booking_confirmed", notify.RoutingKey(notification.TypeBookingConfirmed))
	assert.Equal(t, "notification.refund_rejected", notify.RoutingKey(notification.TypeRefundRejected))
}

func TestAMQPNotifier_Notify(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	msg := notification.Message{Type: notification.TypeBookingConfirmed, Title: "Booking confirmed", Body: "See you soon"}

	t.Run("publishes JSON event", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithContext", mock.Anything, "marketplace.notifications", "notification.booking_confirmed", false, false,
			mock.MatchedBy(func(p amqp.Publishing) bool {
				var ev notify.Event
				if err := json.Unmarshal(p.Body, &ev); err != nil {
					return false
				}
				return p.ContentType == "application/json" &&
					ev.UserID == userID &&
					ev.Type == "BOOKING_CONFIRMED" &&
					ev.Message == "See you soon" &&
					ev.OccurredAt.Equal(now)
			})).Return(nil).Once()

		notify.NewAMQPNotifier(ch, "marketplace.notifications", clock.NewMockClock(now)).Notify(context.Background(), userID, msg)
		ch.AssertExpectations(t)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
			Return(errors.New("channel closed")).Once()

		require.NotPanics(t, func() {
			notify.NewAMQPNotifier(ch, "ex", clock.NewMockClock(now)).Notify(context.Background(), userID, msg)
		})
		ch.AssertExpectations(t)
	})
}

func TestComposite(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	c := notify.NewComposite(a, nil, b)
	require.Len(t, c, 2)

	c.Notify(context.Background(), uuid.New(), notification.Message{Type: notification.TypeAccountApproved})
	assert.Equal(t, []notification.Type{notification.TypeAccountApproved}, a.calls)
	assert.Equal(t, []notification.Type{notification.TypeAccountApproved}, b.calls)
}
