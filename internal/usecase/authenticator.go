package usecase

import (
	"slices"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the caller identity carried by a valid access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) HasRole(roles ...user.Role) bool {
	return slices.Contains(roles, p.Role)
}

// Authenticator resolves a bearer access token into a Principal.
type Authenticator interface {
	Authenticate(accessToken string) (Principal, error)
}

type jwtAuthenticator struct {
	tokens *jwt.Service
}

func NewAuthenticator(tokens *jwt.Service) Authenticator {
	return &jwtAuthenticator{tokens: tokens}
}

func (a *jwtAuthenticator) Authenticate(accessToken string) (Principal, error) {
	claims, err := a.tokens.ValidateToken(accessToken)
	if err != nil {
		return Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return Principal{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, jwt.ErrInvalidToken
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
