package notification

import "service-marketplace/internal/pkg/errs"

var ErrNotificationNotFound = errs.NotFound("notification not found")

type Type string

const (
	TypeBookingConfirmed   Type = "BOOKING_CONFIRMED"
	TypeBookingCancelled   Type = "BOOKING_CANCELLED"
	TypeNewBookingReceived Type = "NEW_BOOKING_RECEIVED"
	TypeRefundApproved     Type = "REFUND_APPROVED"
	TypeRefundRejected     Type = "REFUND_REJECTED"
	TypePaymentSuccess     Type = "PAYMENT_SUCCESS"
	TypePaymentFailed      Type = "PAYMENT_FAILED"
	TypeAccountApproved    Type = "ACCOUNT_APPROVED"
	TypeAccountRejected    Type = "ACCOUNT_REJECTED"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeBookingConfirmed, TypeBookingCancelled, TypeNewBookingReceived,
		TypeRefundApproved, TypeRefundRejected, TypePaymentSuccess,
		TypePaymentFailed, TypeAccountApproved, TypeAccountRejected:
		return true
	default:
		return false
	}
}

// Message is one in-app notification addressed to a user.
type Message struct {
	Type  Type
	Title string
	Body  string
}
