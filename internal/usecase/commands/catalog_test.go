//go:build unit

package commands_test

import (
	"context"
	"testing"

	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/slot"
	reqdto "service-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceRequest(minutes int) reqdto.ServiceRequest {
	return reqdto.ServiceRequest{
		Title:           "Haircut",
		Description:     "Wash and cut",
		PriceCents:      10000,
		DurationMinutes: minutes,
		ServiceType:     "IN_PERSON",
	}
}

func slotIDs(slots []*slot.Slot) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(slots))
	for _, s := range slots {
		out[s.ID()] = true
	}
	return out
}

func TestCatalogCommands_Update(t *testing.T) {
	ctx := context.Background()
	today := calendar.DateOf(baseNow, baseNow.Location())
	nextWeek := today.AddDays(7)

	t.Run("正常系: 所要時間の変更で空き枠を作り直し重なりを残さない", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")
		_, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)

		booked := slotAt(t, f, nextWeek, "09:00")
		_, err = f.bookings().Create(ctx, f.bookingRequest(booked.ID(), validCard), f.customer.ID(), nil)
		require.NoError(t, err)

		require.NoError(t, f.catalog().Update(ctx, f.provider.ID(), f.service.ID(), serviceRequest(45)))
		_, err = f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)

		assert.Equal(t, 45, f.store.Service(f.service.ID()).DurationMinutes())
		slots := f.store.SlotsOf(f.service.ID())
		requireNoOverlap(t, slots)

		byDate := map[calendar.Date][]string{}
		for _, s := range slots {
			byDate[s.Date()] = append(byDate[s.Date()], s.StartTime().String()+"-"+s.EndTime().String())
		}
		assert.ElementsMatch(t, []string{"09:00-09:45", "09:45-10:30", "10:30-11:15", "11:15-12:00"}, byDate[today])
		// the booked hour stays; 09:45 would cross it
		assert.ElementsMatch(t, []string{"09:00-10:00", "10:30-11:15", "11:15-12:00"}, byDate[nextWeek])

		kept := f.store.Slot(booked.ID())
		require.NotNil(t, kept)
		assert.Equal(t, slot.StatusBooked, kept.Status())
	})

	t.Run("正常系: ブロック中の枠は残り重なる枠は作らない", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")
		_, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)

		blocked := slotAt(t, f, today, "10:00")
		require.NoError(t, f.slots().Block(ctx, f.provider.ID(), blocked.ID()))

		require.NoError(t, f.catalog().Update(ctx, f.provider.ID(), f.service.ID(), serviceRequest(30)))

		assert.Equal(t, slot.StatusBlocked, f.store.Slot(blocked.ID()).Status())
		requireNoOverlap(t, f.store.SlotsOf(f.service.ID()))
		// 09:00-10:00 and 11:00-12:00 in 30 minute steps around the blocked hour
		var onToday int
		for _, s := range f.store.SlotsOf(f.service.ID()) {
			if s.Date() == today {
				onToday++
			}
		}
		assert.Equal(t, 5, onToday)
	})

	t.Run("正常系: 所要時間が同じなら既存の枠はそのまま", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")
		_, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		before := slotIDs(f.store.SlotsOf(f.service.ID()))

		req := serviceRequest(60)
		req.Title = "Premium haircut"
		require.NoError(t, f.catalog().Update(ctx, f.provider.ID(), f.service.ID(), req))

		assert.Equal(t, "Premium haircut", f.store.Service(f.service.ID()).Title())
		assert.Equal(t, before, slotIDs(f.store.SlotsOf(f.service.ID())))
	})

	t.Run("異常系: 他のプロバイダーはForbiddenで枠も変わらない", func(t *testing.T) {
		f := newFixture(t)
		putWindow(t, f, calendar.Wednesday, "09:00", "12:00")
		_, err := f.slots().EnsureSlots(ctx, f.service.ID())
		require.NoError(t, err)
		before := slotIDs(f.store.SlotsOf(f.service.ID()))

		err = f.catalog().Update(ctx, uuid.New(), f.service.ID(), serviceRequest(45))

		assert.ErrorIs(t, err, catalog.ErrNotOwner)
		assert.Equal(t, 60, f.store.Service(f.service.ID()).DurationMinutes())
		assert.Equal(t, before, slotIDs(f.store.SlotsOf(f.service.ID())))
	})
}
