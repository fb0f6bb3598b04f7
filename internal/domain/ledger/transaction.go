package ledger

import (
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadySettled = errs.InvalidState("transaction is already settled")
	ErrInvalidType    = errs.Validation("invalid transaction type")
)

type Type string

const (
	TypeBookingPayment      Type = "BOOKING_PAYMENT"
	TypeSubscriptionPayment Type = "SUBSCRIPTION_PAYMENT"
	TypeRefund              Type = "REFUND"
	TypePayout              Type = "PAYOUT"
)

func (t Type) String() string { return string(t) }

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeBookingPayment, TypeSubscriptionPayment, TypeRefund, TypePayout:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

func (s Status) String() string { return string(s) }

// Transaction is an append-only ledger row. Only status may change, and only out of PENDING.
type Transaction struct {
	id               uuid.UUID
	userID           uuid.UUID
	bookingID        *uuid.UUID
	subscriptionID   *uuid.UUID
	txType           Type
	amount           money.Money
	status           Status
	paymentMethod    string
	gatewayReference string
	description      string
	createdAt        time.Time
}

type Entry struct {
	UserID           uuid.UUID
	BookingID        *uuid.UUID
	SubscriptionID   *uuid.UUID
	Type             Type
	Amount           money.Money
	Status           Status
	PaymentMethod    string
	GatewayReference string
	Description      string
}

func Append(e Entry, now time.Time) *Transaction {
	status := e.Status
	if status == "" {
		status = StatusSuccess
	}
	return &Transaction{
		id:               uuid.New(),
		userID:           e.UserID,
		bookingID:        e.BookingID,
		subscriptionID:   e.SubscriptionID,
		txType:           e.Type,
		amount:           e.Amount,
		status:           status,
		paymentMethod:    e.PaymentMethod,
		gatewayReference: e.GatewayReference,
		description:      e.Description,
		createdAt:        now,
	}
}

func Reconstruct(id uuid.UUID, e Entry, createdAt time.Time) *Transaction {
	t := Append(e, createdAt)
	t.id = id
	t.status = e.Status
	return t
}

func (t *Transaction) Settle(success bool) error {
	if t.status != StatusPending {
		return ErrAlreadySettled
	}
	if success {
		t.status = StatusSuccess
	} else {
		t.status = StatusFailed
	}
	return nil
}

func (t *Transaction) ID() uuid.UUID              { return t.id }
func (t *Transaction) UserID() uuid.UUID          { return t.userID }
func (t *Transaction) BookingID() *uuid.UUID      { return t.bookingID }
func (t *Transaction) SubscriptionID() *uuid.UUID { return t.subscriptionID }
func (t *Transaction) Type() Type                 { return t.txType }
func (t *Transaction) Amount() money.Money        { return t.amount }
func (t *Transaction) Status() Status             { return t.status }
func (t *Transaction) PaymentMethod() string      { return t.paymentMethod }
func (t *Transaction) GatewayReference() string   { return t.gatewayReference }
func (t *Transaction) Description() string        { return t.description }
func (t *Transaction) CreatedAt() time.Time       { return t.createdAt }
