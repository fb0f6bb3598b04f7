//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/internal/pkg/jwt"
	"service-marketplace/internal/usecase"
	"service-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func newRouter(t *testing.T, roles ...user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService(secret, 15*time.Minute, time.Hour)
	m := middleware.NewAuthMiddleware(usecase.NewAuthenticator(svc))

	r := gin.New()
	chain := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	r.GET("/protected", chain...)
	return r
}

func token(t *testing.T, ttl time.Duration, refresh bool, id uuid.UUID, role user.Role) string {
	t.Helper()
	svc := jwt.NewService(secret, ttl, time.Hour)
	var (
		tok string
		err error
	)
	if refresh {
		tok, err = svc.GenerateRefreshToken(id, role)
	} else {
		tok, err = svc.GenerateAccessToken(id, role)
	}
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		req        httptest.Request
		expectCode int
		expectMsg  string
	}{
		{
			name:       "正常系: Bearerヘッダー",
			req:        httptest.Request{AuthToken: token(t, time.Minute, false, id, user.RoleCustomer)},
			expectCode: http.StatusOK,
		},
		{
			name: "正常系: Cookie",
			req: httptest.Request{Cookies: []*http.Cookie{{
				Name:  cookie.AccessTokenCookieName,
				Value: token(t, time.Minute, false, id, user.RoleCustomer),
			}}},
			expectCode: http.StatusOK,
		},
		{
			name:       "異常系: トークンなし",
			req:        httptest.Request{},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Access token required",
		},
		{
			name:       "異常系: 期限切れ",
			req:        httptest.Request{AuthToken: token(t, -time.Minute, false, id, user.RoleCustomer)},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{
			name:       "異常系: リフレッシュトークン",
			req:        httptest.Request{AuthToken: token(t, time.Minute, true, id, user.RoleCustomer)},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{
			name:       "異常系: 署名不一致",
			req:        httptest.Request{AuthToken: "header.payload.signature"},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
	}

	router := newRouter(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Method = http.MethodGet
			tc.req.Path = "/protected"
			w := httptest.Do(t, router, tc.req)

			assert.Equal(t, tc.expectCode, w.Code)
			if tc.expectMsg != "" {
				httptest.AssertErrorResponse(t, w, tc.expectCode, tc.expectMsg)
			} else {
				assert.Contains(t, w.Body.String(), id.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "正常系: 許可ロール", role: user.RoleServiceProvider, expectCode: http.StatusOK},
		{name: "正常系: 複数許可の片方", role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "異常系: 顧客は拒否", role: user.RoleCustomer, expectCode: http.StatusForbidden},
	}

	router := newRouter(t, user.RoleServiceProvider, user.RoleAdmin)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.Do(t, router, httptest.Request{
				Method:    http.MethodGet,
				Path:      "/protected",
				AuthToken: token(t, time.Minute, false, uuid.New(), tc.role),
			})
			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		origins     []string
		origin      string
		expectAllow string
		expectCreds string
	}{
		{
			name:        "正常系: 許可オリジンは資格情報付き",
			origins:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			expectAllow: "http://localhost:3000",
			expectCreds: "true",
		},
		{
			name:        "正常系: ワイルドカードは資格情報なし",
			origins:     []string{"*"},
			origin:      "http://anywhere.example",
			expectAllow: "*",
			expectCreds: "",
		},
		{
			name:        "異常系: 未許可オリジン",
			origins:     []string{"http://localhost:3000"},
			origin:      "http://evil.example",
			expectAllow: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
				AllowOrigins:     tc.origins,
				AllowMethods:     []string{http.MethodGet},
				AllowHeaders:     []string{"Content-Type"},
				AllowCredentials: true,
				MaxAge:           time.Hour,
			}))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.Do(t, r, httptest.Request{
				Method:  http.MethodGet,
				Path:    "/ping",
				Headers: map[string]string{"Origin": tc.origin},
			})
			assert.Equal(t, tc.expectAllow, w.Header().Get("Access-Control-Allow-Origin"))
			if tc.expectAllow != "" {
				assert.Equal(t, tc.expectCreds, w.Header().Get("Access-Control-Allow-Credentials"))
			}
		})
	}
}
