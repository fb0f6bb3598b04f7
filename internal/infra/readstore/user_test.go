//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	pendingUser := builder.NewUserBuilder().AsProvider().WithStatus(user.StatusPendingApproval).BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantStatus string
		wantError  bool
	}{
		{
			name:       "success - active user",
			userID:     testUser.ID,
			mockReturn: testUser,
			wantStatus: string(user.StatusActive),
		},
		{
			name:       "success - pending provider",
			userID:     pendingUser.ID,
			mockReturn: pendingUser,
			wantStatus: string(user.StatusPendingApproval),
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.Email, view.Email)
				assert.Equal(t, tt.mockReturn.FullName, view.FullName)
				assert.Equal(t, tt.wantStatus, view.AccountStatus)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
