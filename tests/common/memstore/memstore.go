//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for use case tests.
// Transactions are serialized and a failed transaction restores the state it started from,
// so rollback and exclusivity behave like the Postgres implementation.
package memstore

import (
	"context"
	"maps"
	"sync"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/subscription"
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	users         map[uuid.UUID]user.User
	services      map[uuid.UUID]catalog.Service
	availability  map[uuid.UUID]availability.Availability
	slots         map[uuid.UUID]slot.Slot
	bookings      map[uuid.UUID]booking.Booking
	refunds       map[uuid.UUID]refund.Refund
	ledger        []ledger.Transaction
	plans         map[uuid.UUID]subscription.Plan
	subscriptions map[uuid.UUID]subscription.Subscription
	idempotency   map[idemKey]shared.IdempotencyRecord
	notifications map[uuid.UUID]Notification
}

func newState() state {
	return state{
		users:         map[uuid.UUID]user.User{},
		services:      map[uuid.UUID]catalog.Service{},
		availability:  map[uuid.UUID]availability.Availability{},
		slots:         map[uuid.UUID]slot.Slot{},
		bookings:      map[uuid.UUID]booking.Booking{},
		refunds:       map[uuid.UUID]refund.Refund{},
		plans:         map[uuid.UUID]subscription.Plan{},
		subscriptions: map[uuid.UUID]subscription.Subscription{},
		idempotency:   map[idemKey]shared.IdempotencyRecord{},
		notifications: map[uuid.UUID]Notification{},
	}
}

func (s state) clone() state {
	return state{
		users:         maps.Clone(s.users),
		services:      maps.Clone(s.services),
		availability:  maps.Clone(s.availability),
		slots:         maps.Clone(s.slots),
		bookings:      maps.Clone(s.bookings),
		refunds:       maps.Clone(s.refunds),
		ledger:        append([]ledger.Transaction(nil), s.ledger...),
		plans:         maps.Clone(s.plans),
		subscriptions: maps.Clone(s.subscriptions),
		idempotency:   maps.Clone(s.idempotency),
		notifications: maps.Clone(s.notifications),
	}
}

type Store struct {
	mu    sync.Mutex
	st    state
	fail  map[string]error
	calls int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: newState(), fail: map[string]error{}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{store: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// FailOn makes the named repository operation (e.g. "Ledger.Append") return err
// until cleared with FailOn(op, nil).
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

func (s *Store) injected(op string) error {
	return s.fail[op]
}

// Transactions reports how many times Within was entered.
func (s *Store) Transactions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func conflict(what string) error {
	return infra.WrapRepoErr(what+" changed concurrently", nil, infra.KindConflict)
}

func duplicate(what string) error {
	return infra.WrapRepoErr(what+" already exists", nil, infra.KindDuplicateKey)
}

type memTx struct {
	store *Store
}

func (t *memTx) Users() shared.UserRepository                 { return userRepo{t.store} }
func (t *memTx) Services() shared.ServiceRepository           { return serviceRepo{t.store} }
func (t *memTx) Availability() shared.AvailabilityRepository  { return availabilityRepo{t.store} }
func (t *memTx) Slots() shared.SlotRepository                 { return slotRepo{t.store} }
func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t.store} }
func (t *memTx) Refunds() shared.RefundRepository             { return refundRepo{t.store} }
func (t *memTx) Ledger() shared.LedgerRepository              { return ledgerRepo{t.store} }
func (t *memTx) Plans() shared.PlanRepository                 { return planRepo{t.store} }
func (t *memTx) Subscriptions() shared.SubscriptionRepository { return subscriptionRepo{t.store} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t.store} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.store} }
