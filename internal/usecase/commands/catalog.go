package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/catalog"
	"service-marketplace/internal/domain/subscription"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/usecase/shared"
)

type CatalogCommands interface {
	// Create publishes a service. Only approved providers with an active subscription may publish.
	Create(ctx context.Context, providerID uuid.UUID, req reqdto.ServiceRequest) (uuid.UUID, error)
	Update(ctx context.Context, providerID, serviceID uuid.UUID, req reqdto.ServiceRequest) error
	Deactivate(ctx context.Context, providerID, serviceID uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SlotCache
	slots SlotCommands
	sched shared.Scheduling
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, cache shared.SlotCache, slots SlotCommands, sched shared.Scheduling, clock clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{
		uow:   uow,
		cache: cache,
		slots: slots,
		sched: sched,
		clock: clock,
	}
}

func (c *catalogCommandsImpl) Create(ctx context.Context, providerID uuid.UUID, req reqdto.ServiceRequest) (uuid.UUID, error) {
	attrs, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}
	svc, err := catalog.NewService(providerID, attrs)
	if err != nil {
		return uuid.Nil, err
	}
	today := c.sched.Today(c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, providerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if !u.IsProvider() || !u.IsActive() {
			return subscription.ErrProviderNotApproved
		}

		subs, err := tx.Subscriptions().ListActiveByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		if err := subscription.RequireActive(subs, today); err != nil {
			return err
		}

		return tx.Services().Create(ctx, svc)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("service created", "service_id", svc.ID(), "provider_id", providerID)
	return svc.ID(), nil
}

// Update changes a service's attributes. A new duration drops the open
// future slots cut to the old length and regenerates them; booked and
// blocked slots stay as they are.
func (c *catalogCommandsImpl) Update(ctx context.Context, providerID, serviceID uuid.UUID, req reqdto.ServiceRequest) error {
	attrs, err := req.ToDomain()
	if err != nil {
		return err
	}
	today := c.sched.Today(c.clock.Now())

	var (
		durationChanged bool
		removed         int64
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed = 0
		svc, err := c.loadOwned(ctx, tx, providerID, serviceID)
		if err != nil {
			return err
		}
		durationChanged = svc.DurationMinutes() != attrs.DurationMinutes
		if err := svc.Update(attrs); err != nil {
			return err
		}
		if err := notFoundAs(tx.Services().Update(ctx, svc), catalog.ErrServiceNotFound); err != nil {
			return err
		}
		if !durationChanged {
			return nil
		}
		removed, err = tx.Slots().DeleteAvailableFrom(ctx, serviceID, today)
		return err
	})
	if err != nil {
		return err
	}

	slog.Info("service updated", "service_id", serviceID, "provider_id", providerID, "slots_removed", removed)
	if durationChanged {
		c.cache.Invalidate(ctx, serviceID)
		if _, err := c.slots.EnsureSlots(ctx, serviceID); err != nil {
			slog.Warn("slot regeneration failed", "service_id", serviceID, "error", err)
		}
	}
	return nil
}

func (c *catalogCommandsImpl) Deactivate(ctx context.Context, providerID, serviceID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := c.loadOwned(ctx, tx, providerID, serviceID)
		if err != nil {
			return err
		}
		svc.Deactivate()
		return notFoundAs(tx.Services().Update(ctx, svc), catalog.ErrServiceNotFound)
	})
	if err != nil {
		return err
	}

	slog.Info("service deactivated", "service_id", serviceID, "provider_id", providerID)
	return nil
}

func (c *catalogCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, providerID, serviceID uuid.UUID) (*catalog.Service, error) {
	svc, err := tx.Services().FindByID(ctx, serviceID)
	if err != nil {
		return nil, notFoundAs(err, catalog.ErrServiceNotFound)
	}
	if err := svc.EnsureOwnedBy(providerID); err != nil {
		return nil, err
	}
	return svc, nil
}
