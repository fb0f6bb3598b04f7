package cookie

import (
	"net/http"
	"strings"
	"time"

	"service-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	// The refresh token is only ever read by the auth endpoints.
	RefreshTokenPath = "/api/auth"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, accessToken, "/", accessExpiry)
	setHTTPOnly(c, cfg, RefreshTokenCookieName, refreshToken, RefreshTokenPath, refreshExpiry)
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, "", "/", -1)
	setHTTPOnly(c, cfg, RefreshTokenCookieName, "", RefreshTokenPath, -1)
}

// A negative ttl deletes the cookie.
func setHTTPOnly(c *gin.Context, cfg config.CookieConfig, name, value, path string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	c.SetCookie(name, value, maxAge, path, cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
