//go:build unit || e2e

package memstore

import (
	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/subscription"
	"service-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

// Put* seed state outside of any transaction.

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = *u
}

func (s *Store) PutService(svc *catalog.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.services[svc.ID()] = *svc
}

func (s *Store) PutAvailability(a *availability.Availability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.availability[a.ID()] = *a
}

func (s *Store) PutSlot(sl *slot.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.slots[sl.ID()] = *sl
}

func (s *Store) PutPlan(p *subscription.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.plans[p.ID()] = *p
}

func (s *Store) PutSubscription(sub *subscription.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.subscriptions[sub.ID()] = *sub
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = *b
}

func (s *Store) User(id uuid.UUID) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	if !ok {
		return nil
	}
	return &u
}

func (s *Store) Service(id uuid.UUID) *catalog.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.st.services[id]
	if !ok {
		return nil
	}
	return &svc
}

func (s *Store) Slot(id uuid.UUID) *slot.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.st.slots[id]
	if !ok {
		return nil
	}
	return &sl
}

func (s *Store) SlotsOf(serviceID uuid.UUID) []*slot.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*slot.Slot
	for _, sl := range s.st.slots {
		if sl.ServiceID() == serviceID {
			sl := sl
			out = append(out, &sl)
		}
	}
	return out
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	if !ok {
		return nil
	}
	return &b
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.st.bookings))
	for _, b := range s.st.bookings {
		b := b
		out = append(out, &b)
	}
	return out
}

func (s *Store) Refund(id uuid.UUID) *refund.Refund {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.refunds[id]
	if !ok {
		return nil
	}
	return &r
}

func (s *Store) Refunds() []*refund.Refund {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*refund.Refund, 0, len(s.st.refunds))
	for _, r := range s.st.refunds {
		r := r
		out = append(out, &r)
	}
	return out
}

// Ledger returns the transactions in append order.
func (s *Store) Ledger() []*ledger.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ledger.Transaction, len(s.st.ledger))
	for i := range s.st.ledger {
		t := s.st.ledger[i]
		out[i] = &t
	}
	return out
}

func (s *Store) LedgerOfType(t ledger.Type) []*ledger.Transaction {
	var out []*ledger.Transaction
	for _, tx := range s.Ledger() {
		if tx.Type() == t {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Store) Subscriptions(providerID uuid.UUID) []*subscription.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*subscription.Subscription
	for _, sub := range s.st.subscriptions {
		if sub.ProviderID() == providerID {
			sub := sub
			out = append(out, &sub)
		}
	}
	return out
}

func (s *Store) Plan(id uuid.UUID) *subscription.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.plans[id]
	if !ok {
		return nil
	}
	return &p
}

func (s *Store) Availability(id uuid.UUID) *availability.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.availability[id]
	if !ok {
		return nil
	}
	return &a
}

func (s *Store) AvailabilityOf(providerID uuid.UUID) []*availability.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*availability.Availability
	for _, a := range s.st.availability {
		if a.ProviderID() == providerID {
			a := a
			out = append(out, &a)
		}
	}
	return out
}

func (s *Store) Notifications(userID uuid.UUID) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Notification
	for _, n := range s.st.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}
