//go:build unit

package queries_test

import (
	"context"
	"testing"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/ptr"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.AuthorizedUserView)
	return v, args.Error(1)
}

type mockSubscriptionQueries struct {
	mock.Mock
}

func (m *mockSubscriptionQueries) Current(ctx context.Context, providerID uuid.UUID) (*queries.SubscriptionView, error) {
	args := m.Called(ctx, providerID)
	v, _ := args.Get(0).(*queries.SubscriptionView)
	return v, args.Error(1)
}

func (m *mockSubscriptionQueries) ListPlans(ctx context.Context) ([]*queries.PlanView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*queries.PlanView)
	return v, args.Error(1)
}

func TestGetCurrentUser(t *testing.T) {
	id := uuid.New()
	sub := &queries.SubscriptionView{ID: uuid.New(), ProviderID: id, Status: "ACTIVE"}

	tests := []struct {
		name          string
		role          user.Role
		status        user.AccountStatus
		findErr       error
		sub           *queries.SubscriptionView
		subErr        error
		wantErr       error
		wantPublish   *bool
		expectSubCall bool
	}{
		{
			name:   "正常系: 顧客は購読情報なし",
			role:   user.RoleCustomer,
			status: user.StatusActive,
		},
		{
			name:          "正常系: 購読中の承認済み事業者は出品可",
			role:          user.RoleServiceProvider,
			status:        user.StatusActive,
			sub:           sub,
			wantPublish:   ptr.Of(true),
			expectSubCall: true,
		},
		{
			name:          "正常系: 承認待ち事業者は購読があっても出品不可",
			role:          user.RoleServiceProvider,
			status:        user.StatusPendingApproval,
			sub:           sub,
			wantPublish:   ptr.Of(false),
			expectSubCall: true,
		},
		{
			name:          "正常系: 購読なしの事業者は出品不可",
			role:          user.RoleServiceProvider,
			status:        user.StatusActive,
			subErr:        queries.ErrNoCurrentSubscription,
			wantPublish:   ptr.Of(false),
			expectSubCall: true,
		},
		{
			name:    "異常系: 停止中ユーザー",
			role:    user.RoleCustomer,
			status:  user.StatusSuspended,
			wantErr: queries.ErrUserInactive,
		},
		{
			name:    "異常系: 存在しないユーザー",
			findErr: infra.WrapRepoErr("find", pgx.ErrNoRows),
			wantErr: queries.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := new(mockUserReadStore)
			subs := new(mockSubscriptionQueries)

			if tc.findErr != nil {
				store.On("FindByID", ctx, id).Return(nil, tc.findErr)
			} else {
				store.On("FindByID", ctx, id).Return(&queries.AuthorizedUserView{
					ID:            id,
					Role:          tc.role.String(),
					AccountStatus: tc.status.String(),
				}, nil)
			}
			if tc.expectSubCall {
				subs.On("Current", ctx, id).Return(tc.sub, tc.subErr)
			}

			got, err := queries.NewUserQueries(store, subs).GetCurrentUser(ctx, id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPublish, got.CanPublish)
			if tc.sub != nil {
				assert.Equal(t, tc.sub.ID, got.Subscription.ID)
			}
			subs.AssertExpectations(t)
		})
	}
}
