package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/availability"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/usecase/shared"
)

type AvailabilityCommands interface {
	Set(ctx context.Context, providerID uuid.UUID, req reqdto.SetAvailabilityRequest) (uuid.UUID, error)
	// Delete removes the window and the provider's unbooked slots on that weekday.
	Delete(ctx context.Context, providerID, availabilityID uuid.UUID) error
}

type availabilityCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SlotCache
	slots SlotCommands
}

func NewAvailabilityCommands(uow shared.UnitOfWork, cache shared.SlotCache, slots SlotCommands) AvailabilityCommands {
	return &availabilityCommandsImpl{
		uow:   uow,
		cache: cache,
		slots: slots,
	}
}

func (c *availabilityCommandsImpl) Set(ctx context.Context, providerID uuid.UUID, req reqdto.SetAvailabilityRequest) (uuid.UUID, error) {
	w, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}
	a, err := availability.New(providerID, w.Day, w.Start, w.End)
	if err != nil {
		return uuid.Nil, err
	}

	var serviceIDs []uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serializes concurrent Set calls for the provider until commit
		if _, err := tx.Users().LockByID(ctx, providerID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		existing, err := tx.Availability().ListByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		if err := availability.CheckNoOverlap(a, existing); err != nil {
			return err
		}
		if err := tx.Availability().Create(ctx, a); err != nil {
			return err
		}
		serviceIDs, err = tx.Services().ListIDsByProvider(ctx, providerID)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("availability set", "availability_id", a.ID(), "provider_id", providerID, "day", a.DayOfWeek())
	c.regenerate(ctx, serviceIDs)
	return a.ID(), nil
}

func (c *availabilityCommandsImpl) Delete(ctx context.Context, providerID, availabilityID uuid.UUID) error {
	var (
		serviceIDs []uuid.UUID
		removed    int64
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Availability().FindByID(ctx, availabilityID)
		if err != nil {
			return notFoundAs(err, availability.ErrNotFound)
		}
		if err := a.EnsureOwnedBy(providerID); err != nil {
			return err
		}
		if err := tx.Availability().Delete(ctx, a.ID()); err != nil {
			return notFoundAs(err, availability.ErrNotFound)
		}
		removed, err = tx.Slots().DeleteUnbookedByProviderWeekday(ctx, providerID, a.DayOfWeek())
		if err != nil {
			return err
		}
		serviceIDs, err = tx.Services().ListIDsByProvider(ctx, providerID)
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("availability deleted", "availability_id", availabilityID, "provider_id", providerID, "slots_removed", removed)
	// Other windows on the same weekday lost their slots too and get them back here
	c.regenerate(ctx, serviceIDs)
	return nil
}

func (c *availabilityCommandsImpl) regenerate(ctx context.Context, serviceIDs []uuid.UUID) {
	c.cache.Invalidate(ctx, serviceIDs...)
	for _, id := range serviceIDs {
		if _, err := c.slots.EnsureSlots(ctx, id); err != nil {
			slog.Warn("slot regeneration failed", "service_id", id, "error", err)
		}
	}
}
