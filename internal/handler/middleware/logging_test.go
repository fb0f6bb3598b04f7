//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "正常系: 受信したIDを引き継ぐ", incoming: "req-0123456789", keep: true},
		{name: "正常系: ヘッダーなしは採番", incoming: ""},
		{name: "異常系: 不正な文字は採番し直す", incoming: "bad id with spaces"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.incoming != "" {
				headers[middleware.RequestIDHeader] = tc.incoming
			}
			w := httptest.Do(t, r, httptest.Request{Method: http.MethodGet, Path: "/ping", Headers: headers})

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, w.Body.String())
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
