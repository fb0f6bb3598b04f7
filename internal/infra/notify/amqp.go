package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Event struct {
	UserID     uuid.UUID `json:"user_id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AMQPNotifier publishes notification events to a topic exchange,
// routed by "notification.<type>".
type AMQPNotifier struct {
	ch       Channel
	exchange string
	clock    clock.Clock
}

func NewAMQPNotifier(ch Channel, exchange string, clk clock.Clock) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, exchange: exchange, clock: clk}
}

func RoutingKey(t notification.Type) string {
	return "notification." + strings.ToLower(t.String())
}

func (n *AMQPNotifier) Notify(ctx context.Context, userID uuid.UUID, msg notification.Message) {
	if err := n.publish(ctx, userID, msg); err != nil {
		slog.Error("failed to publish notification",
			slog.String("user_id", userID.String()),
			slog.String("type", msg.Type.String()),
			slog.Any("error", err))
	}
}

func (n *AMQPNotifier) publish(ctx context.Context, userID uuid.UUID, msg notification.Message) error {
	body, err := json.Marshal(Event{
		UserID:     userID,
		Type:       msg.Type.String(),
		Title:      msg.Title,
		Message:    msg.Body,
		OccurredAt: n.clock.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	return n.ch.PublishWithContext(ctx, n.exchange, RoutingKey(msg.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Body:         body,
	})
}

// Connection owns the broker connection and the publishing channel.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Dial(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %q", exchange)
	}
	return &Connection{conn: conn, ch: ch}, nil
}

func (c *Connection) Channel() *amqp.Channel { return c.ch }

func (c *Connection) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
