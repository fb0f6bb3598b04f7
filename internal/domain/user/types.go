package user

type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleAdmin           Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleServiceProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Self-service registration cannot create admins.
func (r Role) CanSelfRegister() bool {
	return r == RoleCustomer || r == RoleServiceProvider
}

type AccountStatus string

const (
	StatusActive          AccountStatus = "ACTIVE"
	StatusSuspended       AccountStatus = "SUSPENDED"
	StatusPendingApproval AccountStatus = "PENDING_APPROVAL"
	StatusRejected        AccountStatus = "REJECTED"
)

func (s AccountStatus) String() string {
	return string(s)
}

func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusPendingApproval, StatusRejected:
		return true
	default:
		return false
	}
}
