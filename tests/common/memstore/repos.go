//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/subscription"
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type Notification struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Msg    notification.Message
	Read   bool
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if err := r.s.injected("Users.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.st.users {
		if existing.Email().Value() == u.Email().Value() {
			return duplicate("user")
		}
	}
	r.s.st.users[u.ID()] = *u
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.st.users {
		if u.Email().Value() == email.Value() {
			return &u, nil
		}
	}
	return nil, notFound("user")
}

func (r userRepo) LockByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if err := r.s.injected("Users.LockByID"); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.st.users[id]; !ok {
		return notFound("user")
	}
	return nil
}

func (r userRepo) UpdateStatus(_ context.Context, u *user.User, from user.AccountStatus) error {
	current, ok := r.s.st.users[u.ID()]
	if !ok {
		return notFound("user")
	}
	if current.AccountStatus() != from {
		return conflict("user")
	}
	r.s.st.users[u.ID()] = *u
	return nil
}

type serviceRepo struct{ s *Store }

func (r serviceRepo) Create(_ context.Context, svc *catalog.Service) error {
	r.s.st.services[svc.ID()] = *svc
	return nil
}

func (r serviceRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, ok := r.s.st.services[id]
	if !ok {
		return nil, notFound("service")
	}
	return &svc, nil
}

func (r serviceRepo) Update(_ context.Context, svc *catalog.Service) error {
	if _, ok := r.s.st.services[svc.ID()]; !ok {
		return notFound("service")
	}
	r.s.st.services[svc.ID()] = *svc
	return nil
}

func (r serviceRepo) ListIDsByProvider(_ context.Context, providerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, svc := range r.s.st.services {
		if svc.ProviderID() == providerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type availabilityRepo struct{ s *Store }

func (r availabilityRepo) Create(_ context.Context, a *availability.Availability) error {
	r.s.st.availability[a.ID()] = *a
	return nil
}

func (r availabilityRepo) FindByID(_ context.Context, id uuid.UUID) (*availability.Availability, error) {
	a, ok := r.s.st.availability[id]
	if !ok {
		return nil, notFound("availability")
	}
	return &a, nil
}

func (r availabilityRepo) ListByProvider(_ context.Context, providerID uuid.UUID) ([]*availability.Availability, error) {
	var out []*availability.Availability
	for _, a := range r.s.st.availability {
		if a.ProviderID() == providerID {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

func (r availabilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.st.availability[id]; !ok {
		return notFound("availability")
	}
	delete(r.s.st.availability, id)
	return nil
}

type slotRepo struct{ s *Store }

func (r slotRepo) Insert(_ context.Context, sl *slot.Slot) (bool, error) {
	for _, existing := range r.s.st.slots {
		if existing.ServiceID() == sl.ServiceID() && existing.Key() == sl.Key() {
			return false, nil
		}
	}
	r.s.st.slots[sl.ID()] = *sl
	return true, nil
}

func (r slotRepo) Occupied(_ context.Context, serviceID uuid.UUID, from, to calendar.Date) (slot.Occupied, error) {
	occupied := slot.Occupied{}
	for _, sl := range r.s.st.slots {
		if sl.ServiceID() != serviceID || sl.Date().Before(from) || !sl.Date().Before(to) {
			continue
		}
		occupied.Add(sl.Date(), sl.Span())
	}
	return occupied, nil
}

func (r slotRepo) FindByID(_ context.Context, id uuid.UUID) (*slot.Slot, error) {
	sl, ok := r.s.st.slots[id]
	if !ok {
		return nil, notFound("slot")
	}
	return &sl, nil
}

func (r slotRepo) UpdateStatus(_ context.Context, sl *slot.Slot, from slot.Status) error {
	current, ok := r.s.st.slots[sl.ID()]
	if !ok || current.Status() != from {
		return conflict("slot")
	}
	r.s.st.slots[sl.ID()] = *sl
	return nil
}

func (r slotRepo) DeleteUnbookedByProviderWeekday(_ context.Context, providerID uuid.UUID, day calendar.Weekday) (int64, error) {
	referenced := map[uuid.UUID]bool{}
	for _, b := range r.s.st.bookings {
		referenced[b.SlotID()] = true
	}

	var n int64
	for id, sl := range r.s.st.slots {
		svc, ok := r.s.st.services[sl.ServiceID()]
		if !ok || svc.ProviderID() != providerID {
			continue
		}
		if sl.Date().Weekday() != day || sl.Status() == slot.StatusBooked || referenced[id] {
			continue
		}
		delete(r.s.st.slots, id)
		n++
	}
	return n, nil
}

func (r slotRepo) DeleteAvailableFrom(_ context.Context, serviceID uuid.UUID, from calendar.Date) (int64, error) {
	referenced := map[uuid.UUID]bool{}
	for _, b := range r.s.st.bookings {
		referenced[b.SlotID()] = true
	}

	var n int64
	for id, sl := range r.s.st.slots {
		if sl.ServiceID() != serviceID || sl.Date().Before(from) || sl.Status() != slot.StatusAvailable || referenced[id] {
			continue
		}
		delete(r.s.st.slots, id)
		n++
	}
	return n, nil
}

type bookingRepo struct{ s *Store }

// Create enforces one live booking per slot.
func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	for _, existing := range r.s.st.bookings {
		if existing.SlotID() == b.SlotID() && existing.Status() != booking.StatusCancelled {
			return duplicate("booking for slot")
		}
	}
	r.s.st.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking, from booking.Status) error {
	current, ok := r.s.st.bookings[b.ID()]
	if !ok || current.Status() != from {
		return conflict("booking")
	}
	r.s.st.bookings[b.ID()] = *b
	return nil
}

type refundRepo struct{ s *Store }

func (r refundRepo) Create(_ context.Context, rf *refund.Refund) error {
	for _, existing := range r.s.st.refunds {
		if existing.BookingID() == rf.BookingID() {
			return duplicate("refund for booking")
		}
	}
	r.s.st.refunds[rf.ID()] = *rf
	return nil
}

func (r refundRepo) FindByID(_ context.Context, id uuid.UUID) (*refund.Refund, error) {
	rf, ok := r.s.st.refunds[id]
	if !ok {
		return nil, notFound("refund")
	}
	return &rf, nil
}

func (r refundRepo) Update(_ context.Context, rf *refund.Refund, from refund.Status) error {
	current, ok := r.s.st.refunds[rf.ID()]
	if !ok || current.Status() != from {
		return conflict("refund")
	}
	r.s.st.refunds[rf.ID()] = *rf
	return nil
}

type ledgerRepo struct{ s *Store }

func (r ledgerRepo) Append(_ context.Context, t *ledger.Transaction) error {
	if err := r.s.injected("Ledger.Append"); err != nil {
		return err
	}
	r.s.st.ledger = append(r.s.st.ledger, *t)
	return nil
}

func (r ledgerRepo) FindBookingPayment(_ context.Context, bookingID uuid.UUID) (*ledger.Transaction, error) {
	for i := len(r.s.st.ledger) - 1; i >= 0; i-- {
		t := r.s.st.ledger[i]
		if t.BookingID() != nil && *t.BookingID() == bookingID &&
			t.Type() == ledger.TypeBookingPayment && t.Status() == ledger.StatusSuccess {
			return &t, nil
		}
	}
	return nil, notFound("booking payment")
}

type planRepo struct{ s *Store }

func (r planRepo) Create(_ context.Context, p *subscription.Plan) error {
	for _, existing := range r.s.st.plans {
		if existing.Name() == p.Name() {
			return duplicate("plan")
		}
	}
	r.s.st.plans[p.ID()] = *p
	return nil
}

func (r planRepo) FindByID(_ context.Context, id uuid.UUID) (*subscription.Plan, error) {
	p, ok := r.s.st.plans[id]
	if !ok {
		return nil, notFound("plan")
	}
	return &p, nil
}

func (r planRepo) UpdateActive(_ context.Context, p *subscription.Plan) error {
	if _, ok := r.s.st.plans[p.ID()]; !ok {
		return notFound("plan")
	}
	r.s.st.plans[p.ID()] = *p
	return nil
}

type subscriptionRepo struct{ s *Store }

func (r subscriptionRepo) Create(_ context.Context, sub *subscription.Subscription) error {
	r.s.st.subscriptions[sub.ID()] = *sub
	return nil
}

func (r subscriptionRepo) ListActiveByProvider(_ context.Context, providerID uuid.UUID) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, sub := range r.s.st.subscriptions {
		if sub.ProviderID() == providerID && sub.Status() == subscription.StatusActive {
			sub := sub
			out = append(out, &sub)
		}
	}
	return out, nil
}

func (r subscriptionRepo) Update(_ context.Context, sub *subscription.Subscription) error {
	if _, ok := r.s.st.subscriptions[sub.ID()]; !ok {
		return notFound("subscription")
	}
	r.s.st.subscriptions[sub.ID()] = *sub
	return nil
}

type idempotencyRepo struct{ s *Store }

func (r idempotencyRepo) TryInsert(_ context.Context, rec shared.IdempotencyRecord) (bool, error) {
	k := idemKey{key: rec.Key, userID: rec.UserID}
	if _, ok := r.s.st.idempotency[k]; ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	r.s.st.idempotency[k] = rec
	return true, nil
}

func (r idempotencyRepo) Get(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.st.idempotency[idemKey{key: key, userID: userID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

func (r idempotencyRepo) Complete(_ context.Context, key, userID, bookingID uuid.UUID) error {
	k := idemKey{key: key, userID: userID}
	rec, ok := r.s.st.idempotency[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.s.st.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) ClaimExpired(_ context.Context, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	k := idemKey{key: rec.Key, userID: rec.UserID}
	current, ok := r.s.st.idempotency[k]
	if !ok || !current.ExpiresAt.Before(now) {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	rec.ResultBookingID = nil
	r.s.st.idempotency[k] = rec
	return true, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Create(_ context.Context, userID uuid.UUID, msg notification.Message) error {
	id := uuid.New()
	r.s.st.notifications[id] = Notification{ID: id, UserID: userID, Msg: msg}
	return nil
}

func (r notificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) (bool, error) {
	n, ok := r.s.st.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.Read = true
	r.s.st.notifications[id] = n
	return true, nil
}

func (r notificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for id, n := range r.s.st.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			r.s.st.notifications[id] = n
			count++
		}
	}
	return count, nil
}

func (r notificationRepo) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	n, ok := r.s.st.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	delete(r.s.st.notifications, id)
	return true, nil
}
