package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/notification"
	"service-marketplace/internal/domain/payment"
	"service-marketplace/internal/domain/subscription"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/pkg/clock"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/pkg/ptr"
	"service-marketplace/internal/usecase/shared"
)

var ErrSubscriptionNotFound = errs.NotFound("no current subscription")

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, providerID uuid.UUID, req reqdto.SubscribeRequest) (uuid.UUID, error)
	CancelAutoRenew(ctx context.Context, providerID uuid.UUID) error
}

type subscriptionCommandsImpl struct {
	uow      shared.UnitOfWork
	payments payments
	notifier shared.Notifier
	sched    shared.Scheduling
	clock    clock.Clock
}

func NewSubscriptionCommands(
	uow shared.UnitOfWork,
	gateways shared.PaymentGateways,
	notifier shared.Notifier,
	recorder shared.Recorder,
	sched shared.Scheduling,
	clock clock.Clock,
) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		uow:      uow,
		payments: newPayments(gateways, recorder, sched),
		notifier: notifier,
		sched:    sched,
		clock:    clock,
	}
}

func (c *subscriptionCommandsImpl) Subscribe(ctx context.Context, providerID uuid.UUID, req reqdto.SubscribeRequest) (uuid.UUID, error) {
	now := c.clock.Now()
	today := c.sched.Today(now)

	charge, err := req.ToCharge(now)
	if err != nil {
		return uuid.Nil, err
	}
	gw, err := c.payments.gateway(charge.Method)
	if err != nil {
		return uuid.Nil, err
	}

	var (
		subID uuid.UUID
		ref   string
		price money.Money
		out   outbox
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out.reset()

		// Serializes concurrent subscribes of the same provider
		u, err := tx.Users().LockByID(ctx, providerID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if !u.IsProvider() || !u.IsActive() {
			return subscription.ErrProviderNotApproved
		}

		plan, err := tx.Plans().FindByID(ctx, req.PlanID)
		if err != nil {
			return notFoundAs(err, subscription.ErrPlanNotFound)
		}
		if !plan.IsActive() {
			return subscription.ErrPlanNotFound
		}

		subs, err := tx.Subscriptions().ListActiveByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		for _, s := range subs {
			if !s.IsStale(today) {
				continue
			}
			s.Expire()
			if err := tx.Subscriptions().Update(ctx, s); err != nil {
				return err
			}
		}
		if subscription.HasActive(subs, today) {
			return subscription.ErrAlreadySubscribed
		}

		sub := subscription.Start(providerID, plan, today)
		if err := tx.Subscriptions().Create(ctx, sub); err != nil {
			return err
		}

		if ref == "" {
			r, err := c.payments.charge(ctx, gw, plan.Price(), charge.Card, fmt.Sprintf("Subscription %s", plan.Name()))
			if err != nil {
				return err
			}
			ref, price = r, plan.Price()
		}

		t := ledger.Append(ledger.Entry{
			UserID:           providerID,
			SubscriptionID:   ptr.Of(sub.ID()),
			Type:             ledger.TypeSubscriptionPayment,
			Amount:           plan.Price(),
			Status:           ledger.StatusSuccess,
			PaymentMethod:    payment.Label(charge.Method, charge.Card),
			GatewayReference: ref,
			Description:      fmt.Sprintf("Subscription to %s", plan.Name()),
		}, now)
		if err := tx.Ledger().Append(ctx, t); err != nil {
			return err
		}

		out.add(providerID, notification.TypePaymentSuccess, "Subscription activated",
			fmt.Sprintf("Your %s subscription is active until %s.", plan.Name(), sub.EndDate()))
		subID = sub.ID()
		return nil
	})
	if err != nil {
		if ref != "" {
			if _, rerr := c.payments.refund(context.WithoutCancel(ctx), gw, ref, price); rerr != nil {
				slog.Error("failed to reverse subscription charge after rollback", "reference", ref, "error", rerr)
			}
		}
		return uuid.Nil, err
	}

	slog.Info("provider subscribed", "provider_id", providerID, "subscription_id", subID, "plan_id", req.PlanID)
	out.flush(ctx, c.notifier)
	return subID, nil
}

func (c *subscriptionCommandsImpl) CancelAutoRenew(ctx context.Context, providerID uuid.UUID) error {
	today := c.sched.Today(c.clock.Now())

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		subs, err := tx.Subscriptions().ListActiveByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		for _, s := range subs {
			if !s.ActiveOn(today) {
				continue
			}
			s.CancelAutoRenew()
			if err := tx.Subscriptions().Update(ctx, s); err != nil {
				return err
			}
			slog.Info("subscription auto-renew cancelled", "provider_id", providerID, "subscription_id", s.ID())
			return nil
		}
		return ErrSubscriptionNotFound
	})
}

type PlanCommands interface {
	Create(ctx context.Context, req reqdto.CreatePlanRequest) (uuid.UUID, error)
	Deactivate(ctx context.Context, planID uuid.UUID) error
}

type planCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPlanCommands(uow shared.UnitOfWork) PlanCommands {
	return &planCommandsImpl{uow: uow}
}

func (c *planCommandsImpl) Create(ctx context.Context, req reqdto.CreatePlanRequest) (uuid.UUID, error) {
	plan, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Plans().Create(ctx, plan)
	})
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("subscription plan created", "plan_id", plan.ID(), "name", plan.Name())
	return plan.ID(), nil
}

// Deactivate hides the plan from new subscribers; existing subscriptions keep running.
func (c *planCommandsImpl) Deactivate(ctx context.Context, planID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		plan, err := tx.Plans().FindByID(ctx, planID)
		if err != nil {
			return notFoundAs(err, subscription.ErrPlanNotFound)
		}
		plan.Deactivate()
		return notFoundAs(tx.Plans().UpdateActive(ctx, plan), subscription.ErrPlanNotFound)
	})
}
