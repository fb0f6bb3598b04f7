package converter

import (
	"service-marketplace/internal/domain/user"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:            u.ID(),
		Email:         u.Email().Value(),
		PasswordHash:  u.PasswordHash(),
		FullName:      u.FullName(),
		Role:          u.Role().String(),
		AccountStatus: u.AccountStatus().String(),
	}
}

func UserToDomain(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		row.FullName,
		role,
		user.AccountStatus(row.AccountStatus),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
