//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	today := calendar.NewDate(2026, time.October, 14)
	plan, err := subscription.NewPlan("Basic", "", money.FromCents(2999), 30)
	require.NoError(t, err)
	provider := uuid.New()

	t.Run("有効期間内はアクティブ", func(t *testing.T) {
		s := subscription.Start(provider, plan, today)
		assert.Equal(t, today.AddDays(30), s.EndDate())
		assert.True(t, s.AutoRenew())
		assert.True(t, subscription.HasActive([]*subscription.Subscription{s}, today))
		assert.True(t, subscription.HasActive([]*subscription.Subscription{s}, today.AddDays(30)))
	})

	t.Run("終了日を過ぎたら無効", func(t *testing.T) {
		s := subscription.Start(provider, plan, today)
		later := today.AddDays(31)
		assert.True(t, s.IsStale(later))
		assert.ErrorIs(t, subscription.RequireActive([]*subscription.Subscription{s}, later), subscription.ErrNoActiveSubscription)
	})

	t.Run("キャンセル済みは無効", func(t *testing.T) {
		s := subscription.Reconstruct(uuid.New(), provider, plan.ID(), today, today.AddDays(30), subscription.StatusCancelled, false)
		assert.False(t, subscription.HasActive([]*subscription.Subscription{s}, today))
	})

	t.Run("サブスクなしは無効", func(t *testing.T) {
		assert.ErrorIs(t, subscription.RequireActive(nil, today), subscription.ErrNoActiveSubscription)
	})
}

func TestNewPlan(t *testing.T) {
	_, err := subscription.NewPlan(" ", "", money.FromCents(100), 30)
	assert.ErrorIs(t, err, subscription.ErrEmptyPlanName)

	_, err = subscription.NewPlan("Pro", "", money.FromCents(100), 0)
	assert.ErrorIs(t, err, subscription.ErrInvalidPlanLength)
}
