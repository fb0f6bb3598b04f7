//go:build unit || e2e

package builder

import (
	"time"

	"service-marketplace/internal/domain/user"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	FullName      string
	Role          string
	AccountStatus string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		Role:         string(user.RoleCustomer),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	fullName, err := user.NewFullName(u.FullName)
	if err != nil {
		return nil, err
	}

	if u.AccountStatus == "" {
		return user.NewUser(email, u.PasswordHash, fullName, role), nil
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.PasswordHash, fullName, role, user.AccountStatus(u.AccountStatus), nil, now, now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	status := u.AccountStatus
	if status == "" {
		status = string(user.StatusActive)
	}

	return sqlc.Users{
		ID:            u.ID,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FullName:      u.FullName,
		Role:          u.Role,
		AccountStatus: status,
		LastLogin:     pgtype.Timestamptz{},
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	status := u.AccountStatus
	if status == "" {
		status = string(user.StatusActive)
	}
	return &queries.AuthorizedUserView{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          u.Role,
		AccountStatus: status,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) AsProvider() *UserBuilder {
	u.Role = string(user.RoleServiceProvider)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	return u
}

func (u *UserBuilder) WithStatus(status user.AccountStatus) *UserBuilder {
	u.AccountStatus = string(status)
	return u
}
