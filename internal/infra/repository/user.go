package repository

import (
	"context"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/infra/repository/converter"
	sqlc "service-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	LockUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserAccountStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserAccountStatusParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row)
}

func (r *UserRepository) LockByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.LockUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return toUser(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, u *user.User, from user.AccountStatus) error {
	n, err := r.queries.UpdateUserAccountStatus(ctx, r.db, sqlc.UpdateUserAccountStatusParams{
		ToStatus:   u.AccountStatus().String(),
		ID:         u.ID(),
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update account status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("account status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func toUser(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err, infra.KindDBFailure)
	}
	return u, nil
}
