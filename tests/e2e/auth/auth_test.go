//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/authtest"
	"service-marketplace/tests/common/builder"
	"service-marketplace/tests/common/dbtest"
	"service-marketplace/tests/common/httptest"
	"service-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "customer@example.com", user.RoleCustomer.String(), user.StatusActive.String())
	dbtest.CreateTestUser(t, s.DB, "pending@example.com", user.RoleServiceProvider.String(), user.StatusPendingApproval.String())
	dbtest.CreateTestUser(t, s.DB, "suspended@example.com", user.RoleCustomer.String(), user.StatusSuspended.String())
}

func (s *authSuite) TestRegister() {
	s.Run("正常系: 顧客は即時ACTIVE", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			builder.NewAuthBuilder().WithEmail("new@example.com").BuildRegisterDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT account_status FROM users WHERE email = $1", "new@example.com").Scan(&status))
		require.Equal(t, user.StatusActive.String(), status)
	})

	s.Run("正常系: プロバイダーは承認待ち", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			builder.NewAuthBuilder().AsProvider().WithEmail("newpro@example.com").BuildRegisterDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var status string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT account_status FROM users WHERE email = $1", "newpro@example.com").Scan(&status))
		require.Equal(t, user.StatusPendingApproval.String(), status)
	})

	s.Run("異常系: メール重複は409", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			builder.NewAuthBuilder().WithEmail("customer@example.com").BuildRegisterDTO(), "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常系: 有効な認証情報", email: "customer@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "正常系: 承認待ちプロバイダー", email: "pending@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "異常系: 存在しないユーザー", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "異常系: パスワード違い", email: "customer@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "異常系: 停止中ユーザー", email: "suspended@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "異常系: 空のメール", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res response.LoginResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			require.NotEmpty(t, res.AccessToken)
			require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

			var lastLoginSet bool
			require.NoError(t, s.DB.QueryRow(t.Context(),
				"SELECT last_login IS NOT NULL FROM users WHERE email = $1", tt.email).Scan(&lastLoginSet))
			require.True(t, lastLoginSet, "last_loginが更新されていない")
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("正常系: Cookieのリフレッシュトークンで再発行", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "customer@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, login.Code)
		refresh := httptest.ExtractCookie(login, cookie.RefreshTokenCookieName)
		require.NotNil(t, refresh)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.RefreshResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("異常系: 不正なトークン", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("異常系: トークンなし", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogoutAndMe() {
	s.Run("正常系: 自分の情報を取得しログアウト", func() {
		t := s.T()

		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		require.Equal(t, "me@example.com", me.Email)
		require.Equal(t, user.RoleCustomer.String(), me.Role)
		require.NotContains(t, w.Body.String(), "password")

		authtest.LogoutUser(t, s.Router, token)
	})

	s.Run("異常系: 署名は正しいが存在しないユーザーは404", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "user not found")
	})

	s.Run("異常系: 期限切れトークンは401", func() {
		t := s.T()

		id := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", user.RoleCustomer.String(), user.StatusActive.String())
		expired := s.jwt.CreateExpiredToken(t, id, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("異常系: リフレッシュトークンではAPIを呼べない", func() {
		t := s.T()

		id := dbtest.CreateTestUser(t, s.DB, "refresh-only@example.com", user.RoleCustomer.String(), user.StatusActive.String())
		refresh := s.jwt.GenerateRefreshToken(t, id, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refresh)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("異常系: 認証なしは401", func() {
		t := s.T()

		for _, ep := range []struct{ method, path string }{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
		} {
			w := httptest.PerformRequest(t, s.Router, ep.method, ep.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, ep.path)
		}
	})
}
