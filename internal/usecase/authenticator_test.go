//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/pkg/jwt"
	"service-marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := jwt.NewService("authenticator-secret", 15*time.Minute, time.Hour)
	auth := usecase.NewAuthenticator(svc)
	id := uuid.New()

	t.Run("正常系: アクセストークン", func(t *testing.T) {
		tok, err := svc.GenerateAccessToken(id, user.RoleServiceProvider)
		require.NoError(t, err)

		p, err := auth.Authenticate(tok)
		require.NoError(t, err)
		assert.Equal(t, id, p.UserID)
		assert.Equal(t, user.RoleServiceProvider, p.Role)
		assert.True(t, p.HasRole(user.RoleAdmin, user.RoleServiceProvider))
		assert.False(t, p.HasRole(user.RoleCustomer))
	})

	t.Run("異常系: リフレッシュトークンは不可", func(t *testing.T) {
		tok, err := svc.GenerateRefreshToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = auth.Authenticate(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("異常系: 別の鍵で署名", func(t *testing.T) {
		other := jwt.NewService("other-secret", 15*time.Minute, time.Hour)
		tok, err := other.GenerateAccessToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = auth.Authenticate(tok)
		assert.Error(t, err)
	})

	t.Run("異常系: 期限切れ", func(t *testing.T) {
		expired := jwt.NewService("authenticator-secret", -time.Minute, time.Hour)
		tok, err := expired.GenerateAccessToken(id, user.RoleCustomer)
		require.NoError(t, err)

		_, err = auth.Authenticate(tok)
		assert.Error(t, err)
	})
}
