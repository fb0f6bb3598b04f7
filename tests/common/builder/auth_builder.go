//go:build unit || e2e

package builder

import (
	"service-marketplace/internal/domain/user"
	reqdto "service-marketplace/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Role     user.Role
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
		Role:     user.RoleCustomer,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) AsProvider() *AuthBuilder {
	a.Role = user.RoleServiceProvider
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Role:     a.Role.String(),
	}
}
