//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the same secret the app under test uses.
type JWTHelper struct {
	secret  string
	access  time.Duration
	refresh time.Duration
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	if err != nil {
		panic(err)
	}
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	if err != nil {
		panic(err)
	}
	return &JWTHelper{secret: cfg.Secret, access: access, refresh: refresh}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, h.access, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues an access token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, -time.Minute, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, h.access, h.refresh).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}
