package request

import (
	"service-marketplace/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=CUSTOMER SERVICE_PROVIDER"`
}

type Registration struct {
	Credentials user.Credentials
	FullName    string
	Role        user.Role
}

func (r *RegisterRequest) ToDomain() (Registration, error) {
	creds, err := user.NewCredentials(r.Email, r.Password)
	if err != nil {
		return Registration{}, err
	}
	fullName, err := user.NewFullName(r.FullName)
	if err != nil {
		return Registration{}, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return Registration{}, err
	}
	if !role.CanSelfRegister() {
		return Registration{}, user.ErrInvalidRole
	}
	return Registration{Credentials: creds, FullName: fullName, Role: role}, nil
}
