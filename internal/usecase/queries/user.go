package queries

import (
	"context"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.NotFound("user not found")
	ErrUserInactive = errs.Forbidden("user inactive")
)

//go:generate mockgen -destination=../../../tests/mock/queries/user.go -package=queriesmock . UserQueries

type UserQueries interface {
	// GetCurrentUser returns the caller's profile. Providers also get their
	// current subscription and whether they may publish services.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users         UserReadStore
	subscriptions SubscriptionQueries
}

func NewUserQueries(users UserReadStore, subscriptions SubscriptionQueries) UserQueries {
	return &userQueriesImpl{users: users, subscriptions: subscriptions}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	status := user.AccountStatus(u.AccountStatus)
	if status != user.StatusActive && status != user.StatusPendingApproval {
		return nil, ErrUserInactive
	}
	if user.Role(u.Role) != user.RoleServiceProvider {
		return u, nil
	}

	sub, err := q.subscriptions.Current(ctx, userID)
	switch {
	case err == nil:
		u.Subscription = sub
	case errs.Is(err, ErrNoCurrentSubscription):
	default:
		return nil, err
	}
	canPublish := status == user.StatusActive && u.Subscription != nil
	u.CanPublish = &canPublish
	return u, nil
}
