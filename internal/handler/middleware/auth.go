package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal"

type AuthMiddleware struct {
	auth usecase.Authenticator
}

func NewAuthMiddleware(auth usecase.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth accepts the access token from its cookie or, failing that, a
// Bearer Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}
		if token == "" {
			abort(c, http.StatusUnauthorized, "Access token required")
			return
		}

		p, err := m.auth.Authenticate(token)
		if err != nil {
			slog.Warn("access token rejected", "path", c.FullPath(), "error", err.Error())
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		SetPrincipal(c, p)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !p.HasRole(roles...) {
			abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, httperr.NewResponse(status, msg, nil))
}

// SetPrincipal attaches an authenticated caller to the request.
func SetPrincipal(c *gin.Context, p usecase.Principal) {
	c.Set(principalKey, p)
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	return p.UserID, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	p, ok := GetPrincipal(c)
	return p.Role, ok
}
