package api

import (
	"net/http"
	"time"

	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/cookie"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// TokenLifetimes exposes the cookie max-age for each token kind.
type TokenLifetimes interface {
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type AuthHandler struct {
	cmds      commands.AuthCommands
	users     queries.UserQueries
	lifetimes TokenLifetimes
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, lifetimes TokenLifetimes, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		users:     users,
		lifetimes: lifetimes,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Register
// @Description Register a customer or service provider account. Providers start pending approval.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) || errs.Is(err, commands.ErrAuthenticationFailed) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		respondError(c, err)
		return
	}

	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		UserID:      result.UserID,
		Role:        string(result.Role),
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token (cookie or body) for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Refresh token required", nil)
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		if errs.Is(err, commands.ErrTokenValidation) || errs.Is(err, commands.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
			return
		}
		respondError(c, err)
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the auth cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clients holding a bearer copy keep it until expiry
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	u, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.lifetimes.AccessTokenDuration(), h.lifetimes.RefreshTokenDuration())
}
