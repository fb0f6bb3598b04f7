package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView is the caller's own profile. Subscription and CanPublish
// are only set for providers.
type AuthorizedUserView struct {
	ID            uuid.UUID         `json:"id"`
	Email         string            `json:"email"`
	FullName      string            `json:"full_name"`
	Role          string            `json:"role"`
	AccountStatus string            `json:"account_status"`
	LastLogin     *time.Time        `json:"last_login,omitempty"`
	Subscription  *SubscriptionView `json:"subscription,omitempty"`
	CanPublish    *bool             `json:"can_publish,omitempty"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	ProviderID      uuid.UUID `json:"provider_id"`
	ProviderName    string    `json:"provider_name"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PriceCents      int64     `json:"price_cents"`
	DurationMinutes int32     `json:"duration_minutes"`
	ServiceType     string    `json:"service_type"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Dates are YYYY-MM-DD and times HH:MM in the scheduling timezone.
type SlotView struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"service_id"`
	SlotDate  string    `json:"slot_date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
}

type AvailabilityView struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	DayOfWeek  string    `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	CustomerName       string     `json:"customer_name"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceTitle       string     `json:"service_title"`
	ProviderID         uuid.UUID  `json:"provider_id"`
	SlotID             uuid.UUID  `json:"slot_id"`
	SlotDate           string     `json:"slot_date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	TotalPriceCents    int64      `json:"total_price_cents"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	BookingDate        time.Time  `json:"booking_date"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type RefundView struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	ServiceTitle  string     `json:"service_title"`
	AmountCents   int64      `json:"amount_cents"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	AdminNotes    *string    `json:"admin_notes,omitempty"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

type TransactionView struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	BookingID        *uuid.UUID `json:"booking_id,omitempty"`
	SubscriptionID   *uuid.UUID `json:"subscription_id,omitempty"`
	Type             string     `json:"type"`
	AmountCents      int64      `json:"amount_cents"`
	Status           string     `json:"status"`
	PaymentMethod    string     `json:"payment_method"`
	GatewayReference string     `json:"gateway_reference"`
	Description      string     `json:"description"`
	CreatedAt        time.Time  `json:"created_at"`
}

type TransactionSummaryItem struct {
	Type       string `json:"type"`
	Status     string `json:"status"`
	TxCount    int64  `json:"tx_count"`
	TotalCents int64  `json:"total_cents"`
}

type PlanView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	DurationDays int32     `json:"duration_days"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubscriptionView struct {
	ID             uuid.UUID `json:"id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	PlanID         uuid.UUID `json:"plan_id"`
	PlanName       string    `json:"plan_name"`
	PlanPriceCents int64     `json:"plan_price_cents"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Status         string    `json:"status"`
	AutoRenew      bool      `json:"auto_renew"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
