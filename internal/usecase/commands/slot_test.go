//go:build unit

package commands_test

import (
	"context"
	"testing"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putWindow(t *testing.T, f *fixture, day calendar.Weekday, start, end string) {
	t.Helper()
	from, err := calendar.ParseTimeOfDay(start)
	require.NoError(t, err)
	to, err := calendar.ParseTimeOfDay(end)
	require.NoError(t, err)
	a, err := availability.New(f.provider.ID(), day, from, to)
	require.NoError(t, err)
	f.store.PutAvailability(a)
}

// slotAt returns the service's slot starting at start on date.
func slotAt(t *testing.T, f *fixture, date calendar.Date, start string) *slot.Slot {
	t.Helper()
	for _, s := range f.store.SlotsOf(f.service.ID()) {
		if s.Date() == date && s.StartTime().String() == start {
			return s
		}
	}
	t.Fatalf("no slot at %s %s", date, start)
	return nil
}

func requireNoOverlap(t *testing.T, slots []*slot.Slot) {
	t.Helper()
	seen := slot.Occupied{}
	for _, s := range slots {
		require.False(t, seen.Overlaps(s.Date(), s.Span()), "slot %s %s-%s overlaps another", s.Date(), s.StartTime(), s.EndTime())
		seen.Add(s.Date(), s.Span())
	}
}

func TestSlotCommands_EnsureSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("期間内のスロットを生成し再実行は冪等", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")

		n, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		// 5 Wednesdays in the 30 day horizon, 3 one-hour slots each
		assert.Equal(t, 15, n)

		again, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		assert.Zero(t, again)
		assert.Len(t, f.store.SlotsOf(f.service.ID()), 15)

		for _, s := range f.store.SlotsOf(f.service.ID()) {
			assert.Equal(t, calendar.Wednesday, s.Date().Weekday())
			assert.Equal(t, slot.StatusAvailable, s.Status())
		}
	})

	t.Run("予約済みスロットは再生成で変わらない", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")
		booked := f.putSlot(t, baseNow.AddDate(0, 0, 7))
		require.NoError(t, booked.Book())
		f.store.PutSlot(booked)

		n, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		assert.Equal(t, 14, n)
		assert.Equal(t, slot.StatusBooked, f.store.Slot(booked.ID()).Status())
	})

	t.Run("空き時間がなければ生成しない", func(t *testing.T) {
		f := newFixture(t)
		n, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("存在しないサービスはNotFound", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.slots().EnsureSlots(ctx, uuid.New())
		assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
	})
}

func TestSlotCommands_BlockUnblock(t *testing.T) {
	ctx := context.Background()

	t.Run("ブロックと解除", func(t *testing.T) {
		f := newFixture(t)
		s := f.putSlot(t, baseNow.AddDate(0, 0, 2))

		require.NoError(t, f.slots().Block(ctx, f.provider.ID(), s.ID()))
		assert.Equal(t, slot.StatusBlocked, f.store.Slot(s.ID()).Status())

		_, err := f.bookings().Create(ctx, f.bookingRequest(s.ID(), validCard), f.customer.ID(), nil)
		assert.ErrorIs(t, err, slot.ErrSlotNotAvailable)

		require.NoError(t, f.slots().Unblock(ctx, f.provider.ID(), s.ID()))
		assert.Equal(t, slot.StatusAvailable, f.store.Slot(s.ID()).Status())
	})

	t.Run("ブロックされていないスロットの解除はInvalidState", func(t *testing.T) {
		f := newFixture(t)
		s := f.putSlot(t, baseNow.AddDate(0, 0, 2))

		err := f.slots().Unblock(ctx, f.provider.ID(), s.ID())
		assert.ErrorIs(t, err, slot.ErrSlotNotBlocked)
	})

	t.Run("予約済みスロットはブロック不可", func(t *testing.T) {
		f := newFixture(t)
		_, s := f.book(t, baseNow.AddDate(0, 0, 2))

		err := f.slots().Block(ctx, f.provider.ID(), s.ID())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
		assert.Equal(t, slot.StatusBooked, f.store.Slot(s.ID()).Status())
	})

	t.Run("他のプロバイダーのスロットはForbidden", func(t *testing.T) {
		f := newFixture(t)
		s := f.putSlot(t, baseNow.AddDate(0, 0, 2))

		err := f.slots().Block(ctx, uuid.New(), s.ID())
		assert.ErrorIs(t, err, catalog.ErrNotOwner)
	})
}
