//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		expectCode int
		expectMsg  string
	}{
		{
			name: "正常系: 用意済みレスポンスはそのまま返す",
			handler: func(c *gin.Context) {
				_ = c.Error(&gin.Error{
					Err:  errors.New("bad input"),
					Type: gin.ErrorTypePublic,
					Meta: httperr.NewResponse(http.StatusBadRequest, "Invalid request", nil),
				})
			},
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request",
		},
		{
			name:       "正常系: 業務エラーは種別で変換",
			handler:    func(c *gin.Context) { _ = c.Error(errs.Conflict("slot is no longer available")) },
			expectCode: http.StatusConflict,
			expectMsg:  "slot is no longer available",
		},
		{
			name:       "正常系: ステータスのみ設定",
			handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
			expectCode: http.StatusNoContent,
		},
		{
			name:       "異常系: 未分類エラーは500",
			handler:    func(c *gin.Context) { _ = c.Error(errs.New("db exploded")) },
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
		{
			name:       "異常系: 何も書かれない場合は500",
			handler:    func(*gin.Context) {},
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
		{
			name:       "異常系: panicは回復して500",
			handler:    func(*gin.Context) { panic("boom") },
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
			r.GET("/x", tc.handler)

			w := httptest.Do(t, r, httptest.Request{Method: http.MethodGet, Path: "/x"})
			assert.Equal(t, tc.expectCode, w.Code)
			if tc.expectMsg != "" {
				httptest.AssertErrorResponse(t, w, tc.expectCode, tc.expectMsg)
			}
		})
	}
}
