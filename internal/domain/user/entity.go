package user

import (
	"time"

	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotPendingApproval = errs.InvalidState("account is not pending approval")
	ErrAccountNotActive   = errs.Forbidden("account is not active")
)

type User struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	fullName      string
	role          Role
	accountStatus AccountStatus
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// Providers wait for admin approval, everyone else is active immediately.
func NewUser(email Email, passwordHash, fullName string, role Role) *User {
	status := StatusActive
	if role == RoleServiceProvider {
		status = StatusPendingApproval
	}
	return &User{
		id:            uuid.New(),
		email:         email,
		passwordHash:  passwordHash,
		fullName:      fullName,
		role:          role,
		accountStatus: status,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, fullName string,
	role Role,
	status AccountStatus,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		fullName:      fullName,
		role:          role,
		accountStatus: status,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) Approve() error {
	if u.accountStatus != StatusPendingApproval {
		return ErrNotPendingApproval
	}
	u.accountStatus = StatusActive
	return nil
}

func (u *User) Reject() error {
	if u.accountStatus != StatusPendingApproval {
		return ErrNotPendingApproval
	}
	u.accountStatus = StatusRejected
	return nil
}

func (u *User) ID() uuid.UUID                { return u.id }
func (u *User) Email() Email                 { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) FullName() string             { return u.fullName }
func (u *User) Role() Role                   { return u.role }
func (u *User) AccountStatus() AccountStatus { return u.accountStatus }
func (u *User) LastLogin() *time.Time        { return u.lastLogin }
func (u *User) IsActive() bool               { return u.accountStatus == StatusActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }
func (u *User) IsProvider() bool             { return u.role == RoleServiceProvider }

// CanLogin lets providers awaiting approval sign in to follow their status.
func (u *User) CanLogin() bool {
	return u.accountStatus == StatusActive || u.accountStatus == StatusPendingApproval
}
