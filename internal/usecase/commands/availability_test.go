//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"service-marketplace/internal/domain/availability"
	"service-marketplace/internal/domain/calendar"
	"service-marketplace/internal/domain/slot"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowRequest(day, start, end string) reqdto.SetAvailabilityRequest {
	return reqdto.SetAvailabilityRequest{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestAvailabilityCommands_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 登録すると枠が生成される", func(t *testing.T) {
		f := newFixture(t)

		id, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))
		require.NoError(t, err)

		a := f.store.Availability(id)
		require.NotNil(t, a)
		assert.Equal(t, calendar.Wednesday, a.DayOfWeek())
		assert.Len(t, f.store.SlotsOf(f.service.ID()), 15)
	})

	t.Run("正常系: 同じ曜日でも重ならなければ登録できる", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))
		require.NoError(t, err)
		_, err = f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "12:00", "14:00"))
		require.NoError(t, err)

		assert.Len(t, f.store.AvailabilityOf(f.provider.ID()), 2)
		assert.Len(t, f.store.SlotsOf(f.service.ID()), 25)
	})

	t.Run("異常系: 重なる時間帯はConflict", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))
		require.NoError(t, err)
		_, err = f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "11:00", "13:00"))

		assert.ErrorIs(t, err, availability.ErrOverlappingWindow)
		assert.Len(t, f.store.AvailabilityOf(f.provider.ID()), 1)
	})

	t.Run("異常系: プロバイダーの行ロックに失敗したら登録しない", func(t *testing.T) {
		f := newFixture(t)
		lockErr := errors.New("lock timeout")
		f.store.FailOn("Users.LockByID", lockErr)

		_, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))

		assert.ErrorIs(t, err, lockErr)
		assert.Empty(t, f.store.AvailabilityOf(f.provider.ID()))
		assert.Empty(t, f.store.SlotsOf(f.service.ID()))
	})

	t.Run("異常系: 存在しないプロバイダーはNotFound", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.availability().Set(ctx, uuid.New(), windowRequest("WEDNESDAY", "09:00", "12:00"))

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("異常系: 終了が開始以前はValidation", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "12:00", "09:00"))

		assert.ErrorIs(t, err, availability.ErrInvalidWindow)
	})
}

func TestAvailabilityCommands_Delete(t *testing.T) {
	ctx := context.Background()
	today := calendar.DateOf(baseNow, baseNow.Location())
	nextWeek := today.AddDays(7)

	t.Run("正常系: 同じ曜日の未予約枠を消して残りの時間帯から作り直す", func(t *testing.T) {
		f := newFixture(t)
		morning, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))
		require.NoError(t, err)
		afternoon, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "14:00", "16:00"))
		require.NoError(t, err)
		_, err = f.availability().Set(ctx, f.provider.ID(), windowRequest("FRIDAY", "10:00", "11:00"))
		require.NoError(t, err)
		// 5 Wednesdays x (3 + 2) and 4 Fridays x 1
		require.Len(t, f.store.SlotsOf(f.service.ID()), 29)

		booked := slotAt(t, f, nextWeek, "14:00")
		_, err = f.bookings().Create(ctx, f.bookingRequest(booked.ID(), validCard), f.customer.ID(), nil)
		require.NoError(t, err)
		friday := slotAt(t, f, today.AddDays(2), "10:00")

		require.NoError(t, f.availability().Delete(ctx, f.provider.ID(), afternoon))

		assert.Nil(t, f.store.Availability(afternoon))
		assert.NotNil(t, f.store.Availability(morning))

		var wednesday, fridays, afternoonLeft int
		for _, s := range f.store.SlotsOf(f.service.ID()) {
			switch {
			case s.Date().Weekday() == calendar.Friday:
				fridays++
			case s.StartTime().String() >= "14:00":
				afternoonLeft++
			default:
				wednesday++
			}
		}
		assert.Equal(t, 15, wednesday)
		assert.Equal(t, 4, fridays)
		assert.Equal(t, 1, afternoonLeft, "only the booked afternoon slot survives")

		kept := f.store.Slot(booked.ID())
		require.NotNil(t, kept)
		assert.Equal(t, slot.StatusBooked, kept.Status())
		assert.NotNil(t, f.store.Slot(friday.ID()), "other weekdays are untouched")
		requireNoOverlap(t, f.store.SlotsOf(f.service.ID()))
	})

	t.Run("異常系: 他のプロバイダーの時間帯はForbidden", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.availability().Set(ctx, f.provider.ID(), windowRequest("WEDNESDAY", "09:00", "12:00"))
		require.NoError(t, err)

		err = f.availability().Delete(ctx, uuid.New(), id)

		assert.ErrorIs(t, err, availability.ErrNotOwner)
		assert.NotNil(t, f.store.Availability(id))
		assert.Len(t, f.store.SlotsOf(f.service.ID()), 15)
	})

	t.Run("異常系: 存在しない時間帯はNotFound", func(t *testing.T) {
		f := newFixture(t)

		err := f.availability().Delete(ctx, f.provider.ID(), uuid.New())

		assert.ErrorIs(t, err, availability.ErrNotFound)
	})
}
