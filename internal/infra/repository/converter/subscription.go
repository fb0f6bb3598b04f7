package converter

import (
	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/domain/subscription"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func PlanToCreateParams(p *subscription.Plan) sqlc.CreatePlanParams {
	return sqlc.CreatePlanParams{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		PriceCents:   p.Price().Cents(),
		DurationDays: int32(p.DurationDays()), // #nosec G115 -- bounded by domain validation
		IsActive:     p.IsActive(),
	}
}

func PlanToDomain(row sqlc.SubscriptionPlans) *subscription.Plan {
	return subscription.ReconstructPlan(
		row.ID,
		row.Name,
		row.Description,
		money.FromCents(row.PriceCents),
		int(row.DurationDays),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func SubscriptionToCreateParams(s *subscription.Subscription) sqlc.CreateSubscriptionParams {
	return sqlc.CreateSubscriptionParams{
		ID:         s.ID(),
		ProviderID: s.ProviderID(),
		PlanID:     s.PlanID(),
		StartDate:  pgconv.DateToPgtype(s.StartDate()),
		EndDate:    pgconv.DateToPgtype(s.EndDate()),
		Status:     s.Status().String(),
		AutoRenew:  s.AutoRenew(),
	}
}

func SubscriptionToDomain(row sqlc.Subscriptions) *subscription.Subscription {
	return subscription.Reconstruct(
		row.ID,
		row.ProviderID,
		row.PlanID,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		subscription.Status(row.Status),
		row.AutoRenew,
	)
}
