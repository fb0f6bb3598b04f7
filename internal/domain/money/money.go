package money

import (
	"fmt"

	"service-marketplace/internal/pkg/errs"
)

var ErrNegativeAmount = errs.Validation("amount cannot be negative")

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents is for values already validated by storage constraints.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

// Percent rounds toward zero, so half of an odd cent amount loses the remainder.
func (m Money) Percent(p int64) Money {
	return Money{cents: m.cents * p / 100}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
