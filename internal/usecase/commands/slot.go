package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/usecase/shared"
)

type SlotCommands interface {
	// EnsureSlots materializes the missing slots of the service for the scheduling horizon.
	// It is idempotent and returns how many slots were inserted.
	EnsureSlots(ctx context.Context, serviceID uuid.UUID) (int, error)
	Block(ctx context.Context, providerID, slotID uuid.UUID) error
	Unblock(ctx context.Context, providerID, slotID uuid.UUID) error
}

type slotCommandsImpl struct {
	uow      shared.UnitOfWork
	cache    shared.SlotCache
	recorder shared.Recorder
	sched    shared.Scheduling
	clock    clock.Clock
}

func NewSlotCommands(uow shared.UnitOfWork, cache shared.SlotCache, recorder shared.Recorder, sched shared.Scheduling, clock clock.Clock) SlotCommands {
	return &slotCommandsImpl{
		uow:      uow,
		cache:    cache,
		recorder: recorder,
		sched:    sched,
		clock:    clock,
	}
}

func (c *slotCommandsImpl) EnsureSlots(ctx context.Context, serviceID uuid.UUID) (int, error) {
	today := c.sched.Today(c.clock.Now())
	if c.cache.Generated(ctx, serviceID, today) {
		return 0, nil
	}

	var inserted int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted = 0

		svc, err := tx.Services().FindByID(ctx, serviceID)
		if err != nil {
			return notFoundAs(err, catalog.ErrServiceNotFound)
		}
		if !svc.IsActive() {
			return nil
		}

		windows, err := tx.Availability().ListByProvider(ctx, svc.ProviderID())
		if err != nil {
			return err
		}
		if len(windows) == 0 {
			slog.Warn("no availability, skipping slot generation", "service_id", serviceID, "provider_id", svc.ProviderID())
			return nil
		}

		from, to := c.sched.Generator.Window(today)
		occupied, err := tx.Slots().Occupied(ctx, serviceID, from, to)
		if err != nil {
			return err
		}

		for _, s := range c.sched.Generator.Generate(serviceID, svc.Duration(), windows, today, occupied) {
			ok, err := tx.Slots().Insert(ctx, s)
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.cache.MarkGenerated(ctx, serviceID, today)
	if inserted > 0 {
		c.recorder.SlotsGenerated(inserted)
		slog.Info("slots generated", "service_id", serviceID, "count", inserted)
	}
	return inserted, nil
}

func (c *slotCommandsImpl) Block(ctx context.Context, providerID, slotID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := c.loadOwned(ctx, tx, providerID, slotID)
		if err != nil {
			return err
		}
		if err := s.Block(); err != nil {
			return err
		}
		return conflictAs(tx.Slots().UpdateStatus(ctx, s, slot.StatusAvailable), slot.ErrSlotNotAvailable)
	})
}

func (c *slotCommandsImpl) Unblock(ctx context.Context, providerID, slotID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := c.loadOwned(ctx, tx, providerID, slotID)
		if err != nil {
			return err
		}
		if err := s.Unblock(); err != nil {
			return err
		}
		return conflictAs(tx.Slots().UpdateStatus(ctx, s, slot.StatusBlocked), slot.ErrSlotNotBlocked)
	})
}

func (c *slotCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, providerID, slotID uuid.UUID) (*slot.Slot, error) {
	s, err := tx.Slots().FindByID(ctx, slotID)
	if err != nil {
		return nil, notFoundAs(err, slot.ErrSlotNotFound)
	}
	svc, err := tx.Services().FindByID(ctx, s.ServiceID())
	if err != nil {
		return nil, notFoundAs(err, catalog.ErrServiceNotFound)
	}
	if err := svc.EnsureOwnedBy(providerID); err != nil {
		return nil, err
	}
	return s, nil
}
