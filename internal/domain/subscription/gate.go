package subscription

import "service-marketplace/internal/domain/calendar"

// HasActive is the publishing gate: true iff some subscription is ACTIVE and not past its end date.
func HasActive(subs []*Subscription, today calendar.Date) bool {
	for _, s := range subs {
		if s.ActiveOn(today) {
			return true
		}
	}
	return false
}

func RequireActive(subs []*Subscription, today calendar.Date) error {
	if !HasActive(subs, today) {
		return ErrNoActiveSubscription
	}
	return nil
}
