//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/api"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/builder"
	"service-marketplace/tests/common/httptest"
	"service-marketplace/tests/common/testutil"
	commandsmock "service-marketplace/tests/mock/commands"
	queriesmock "service-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fixedLifetimes struct{}

func (fixedLifetimes) AccessTokenDuration() time.Duration  { return 15 * time.Minute }
func (fixedLifetimes) RefreshTokenDuration() time.Duration { return 7 * 24 * time.Hour }

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, fixedLifetimes{}, config.NewTestConfig())

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", withActor(s.handler.Me))
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("正常系: 201で新しいIDを返す", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("異常系: 入力検証", func() {
		cases := []testCaseAuth{
			{name: "管理者ロールは登録不可", mutate: testutil.Field("role", user.RoleAdmin.String()), expectCode: http.StatusBadRequest},
			{name: "氏名なし", mutate: testutil.Field("full_name", nil), expectCode: http.StatusBadRequest},
			{name: "パスワード7文字", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "不正なメール", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("異常系: 登録済みメールは409", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(uuid.Nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email is already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	userID := uuid.New()
	loginResult := &commands.LoginResult{
		UserID:    userID,
		Role:      user.RoleCustomer,
		TokenPair: &commands.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"},
	}

	s.Run("正常系: 200でトークンとクッキーを返す", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(loginResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(userID, response.UserID)
		s.Equal("CUSTOMER", response.Role)

		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal("test-refresh-token", refresh.Value)
		s.True(refresh.HttpOnly)
		s.Equal(cookie.RefreshTokenPath, refresh.Path)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("/", access.Path)
	})

	s.Run("異常系: 入力検証", func() {
		bound := []testCaseAuth{
			{name: "メール境界OK", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "メール形式不正", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "パスワード8文字OK", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "パスワード7文字", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}
		missing := []testCaseAuth{
			{name: "メールなし", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "パスワードなし", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}
		empty := []testCaseAuth{
			{name: "空のメール", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "空のパスワード", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						expectedReq := (&builder.AuthBuilder{Email: email, Password: password}).BuildDTO()
						s.mockCommands.EXPECT().Login(gomock.Any(), expectedReq).Return(loginResult, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("異常系: ユースケースのエラーをステータスに変換", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "認証情報不一致", commandsError: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "認証失敗", commandsError: commands.ErrAuthenticationFailed, expectedStatus: http.StatusUnauthorized, expectedMsg: "Invalid email or password"},
			{name: "無効なアカウント", commandsError: commands.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "user inactive"},
			{name: "内部エラー", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("正常系: クッキーのトークンを優先", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-token").Return(pair, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "body-token"}, cookies, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("正常系: クッキーがなければ本文のトークン", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "body-token").Return(pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "body-token"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("異常系: トークンなしは401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("異常系: 検証失敗は401", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "stale"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("正常系: 204でクッキーを消去", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Empty(access.Value)
		s.Negative(access.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("正常系: 現在のユーザーを返す", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("異常系: 認証情報がなければ401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("異常系: ユースケースのエラーをステータスに変換", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "ユーザーなし", queriesError: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "user not found"},
			{name: "無効なアカウント", queriesError: queries.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "user inactive"},
			{name: "内部エラー", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
