//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/tests/common/dbtest"
	"service-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in and returns the access token set as a cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin inserts an active user and returns its id with a fresh access token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String(), user.StatusActive.String())
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}

// LogoutUser logs out with an access token and asserts both token cookies are expired.
func LogoutUser(t *testing.T, router *gin.Engine, accessToken string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, accessToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
		c := httptest.ExtractCookie(w, name)
		require.NotNil(t, c, "%s not cleared", name)
		require.Empty(t, c.Value)
		require.Negative(t, c.MaxAge)
	}
}
